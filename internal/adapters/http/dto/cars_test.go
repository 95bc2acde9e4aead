package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

func bindBody(t *testing.T, body string, v any) error {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	return BindAndValidate(c, v)
}

func TestCreateCarRequest_Bind(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantField string
	}{
		{
			name: "valid with make and model",
			body: `{"vin":"VIN12345678901234","make":"Dacia","model":"Logan","yearOfManufacture":2018,"ownerId":1}`,
		},
		{
			name: "valid without optional fields",
			body: `{"vin":"VIN12345678901234","yearOfManufacture":1700,"ownerId":1}`,
		},
		{
			name:      "vin too short",
			body:      `{"vin":"VIN1","yearOfManufacture":2018,"ownerId":1}`,
			wantErr:   ErrValidation,
			wantField: "vin",
		},
		{
			name:      "vin with punctuation",
			body:      `{"vin":"VIN-2345678901234","yearOfManufacture":2018,"ownerId":1}`,
			wantErr:   ErrValidation,
			wantField: "vin",
		},
		{
			name:      "year before range",
			body:      `{"vin":"VIN12345678901234","yearOfManufacture":1699,"ownerId":1}`,
			wantErr:   ErrValidation,
			wantField: "yearOfManufacture",
		},
		{
			name:      "year after range",
			body:      `{"vin":"VIN12345678901234","yearOfManufacture":100000,"ownerId":1}`,
			wantErr:   ErrValidation,
			wantField: "yearOfManufacture",
		},
		{
			name:      "negative owner",
			body:      `{"vin":"VIN12345678901234","yearOfManufacture":2018,"ownerId":-4}`,
			wantErr:   ErrValidation,
			wantField: "ownerId",
		},
		{
			name:      "year is not a number",
			body:      `{"vin":"VIN12345678901234","yearOfManufacture":"old","ownerId":1}`,
			wantErr:   ErrBinding,
			wantField: "yearOfManufacture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateCarRequest
			err := bindBody(t, tt.body, &req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "VIN12345678901234", req.ToDomain().VIN)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantField != "" {
				assert.Contains(t, ValidationErrors(err), tt.wantField)
			}
		})
	}
}

func TestCreateCarRequest_ToDomainKeepsOptionalFields(t *testing.T) {
	var req CreateCarRequest
	require.NoError(t, bindBody(t, `{"vin":"VIN12345678901234","model":"Golf","yearOfManufacture":2021,"ownerId":2}`, &req))

	car := req.ToDomain()
	assert.Nil(t, car.Make)
	require.NotNil(t, car.Model)
	assert.Equal(t, "Golf", *car.Model)
	assert.Equal(t, 2021, car.Year)
	assert.Equal(t, int64(2), car.OwnerID)
}

func TestCreateClaimRequest_Bind(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    error
		wantAmount string
	}{
		{
			name:       "number amount",
			body:       `{"claimDate":"2024-06-15","description":"Accident","amount":1250.50}`,
			wantAmount: "1250.5",
		},
		{
			name:       "string amount keeps digits",
			body:       `{"claimDate":"2024-06-15","description":"Accident","amount":"0.01"}`,
			wantAmount: "0.01",
		},
		{
			name:    "amount below minimum",
			body:    `{"claimDate":"2024-06-15","description":"Accident","amount":0.009}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "amount with three decimals",
			body:    `{"claimDate":"2024-06-15","description":"Accident","amount":1.005}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "string amount with three decimals",
			body:    `{"claimDate":"2024-06-15","description":"Accident","amount":"10.125"}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:       "trailing zeros are not extra precision",
			body:       `{"claimDate":"2024-06-15","description":"Accident","amount":"10.500"}`,
			wantAmount: "10.5",
		},
		{
			name:    "missing amount",
			body:    `{"claimDate":"2024-06-15","description":"Accident"}`,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "blank description",
			body:    `{"claimDate":"2024-06-15","description":"   ","amount":10}`,
			wantErr: ErrValidation,
		},
		{
			name:    "date with time",
			body:    `{"claimDate":"2024-06-15T10:00:00Z","description":"Accident","amount":10}`,
			wantErr: ErrValidation,
		},
		{
			name:    "impossible date",
			body:    `{"claimDate":"2024-02-30","description":"Accident","amount":10}`,
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateClaimRequest
			err := bindBody(t, tt.body, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			claim, err := req.ToDomain()
			require.NoError(t, err)
			assert.Equal(t, domain.NewDate(2024, 6, 15), claim.ClaimDate)
			assert.Equal(t, tt.wantAmount, claim.Amount.String())
		})
	}
}

func TestCreateClaimRequest_ToDomainRejectsBadDate(t *testing.T) {
	_, err := CreateClaimRequest{ClaimDate: "15/06/2024"}.ToDomain()

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestNewCarResponse(t *testing.T) {
	email := "ana@example.com"
	carMake := "Dacia"

	resp := NewCarResponse(domain.Car{
		ID: 1, VIN: "VIN12345678901234", Make: &carMake, Year: 2018, OwnerID: 4,
		Owner: &domain.Owner{ID: 4, Name: "Ana", Email: &email},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "vin": "VIN12345678901234", "make": "Dacia", "model": null,
		"yearOfManufacture": 2018, "ownerId": 4, "ownerName": "Ana", "ownerEmail": "ana@example.com"
	}`, string(raw))
}

func TestNewCarListResponse_EmptyIsArray(t *testing.T) {
	raw, err := json.Marshal(NewCarListResponse(nil))

	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestNewClaimResponse_AmountIsExactNumber(t *testing.T) {
	resp := NewClaimResponse(domain.Claim{
		ID: 9, CarID: 1, ClaimDate: domain.NewDate(2024, 6, 15), Description: "Accident",
		Amount: decimal.RequireFromString("1250.55"),
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"carId":1,"claimDate":"2024-06-15","description":"Accident","amount":1250.55}`, string(raw))
}

func TestNewHistoryResponse(t *testing.T) {
	events := NewHistoryResponse([]domain.HistoryEvent{
		{Kind: domain.EventPolicyAdded, Date: domain.NewDate(2024, 1, 1), Description: "Insurance with Allianz from 2024-01-01 to 2024-12-31."},
		{Kind: domain.EventClaimRegistered, Date: domain.NewDate(2024, 6, 15), Description: "Claim for 80.00 - 'Scratch'."},
	})

	require.Len(t, events, 2)
	assert.Equal(t, "PolicyAdded", events[0].EventType)
	assert.Equal(t, "2024-01-01", events[0].EventDate)
	assert.Equal(t, "ClaimRegistered", events[1].EventType)
	assert.Equal(t, "Claim for 80.00 - 'Scratch'.", events[1].Description)
}

func TestParseCarID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "9000", want: 9000},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCarID(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
