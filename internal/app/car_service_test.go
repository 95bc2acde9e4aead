package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/mocks"
	"github.com/jsamuelsen/carinsurance-service/internal/platform/clock"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMocks struct {
	cars     *mocks.MockCarRepository
	owners   *mocks.MockOwnerRepository
	policies *mocks.MockPolicyRepository
	claims   *mocks.MockClaimRepository
	clock    *clock.Fixed
}

func newTestCarService(t *testing.T) (*CarService, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		cars:     mocks.NewMockCarRepository(t),
		owners:   mocks.NewMockOwnerRepository(t),
		policies: mocks.NewMockPolicyRepository(t),
		claims:   mocks.NewMockClaimRepository(t),
		clock:    clock.NewFixed(domain.NewDate(2024, 6, 30)),
	}

	svc := NewCarService(CarServiceConfig{
		Cars:     m.cars,
		Owners:   m.owners,
		Policies: m.policies,
		Claims:   m.claims,
		Clock:    m.clock,
		Logger:   discardLogger(),
	})

	return svc, m
}

func ptr[T any](v T) *T { return &v }

var errStore = errors.New("connection reset by peer")

func TestNewCarService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() {
		NewCarService(CarServiceConfig{Clock: clock.NewFixed(domain.NewDate(2024, 1, 1))})
	})

	assert.Panics(t, func() {
		NewCarService(CarServiceConfig{
			Cars:     mocks.NewMockCarRepository(t),
			Owners:   mocks.NewMockOwnerRepository(t),
			Policies: mocks.NewMockPolicyRepository(t),
			Claims:   mocks.NewMockClaimRepository(t),
		})
	})
}

func TestCarService_CreateCar(t *testing.T) {
	input := domain.NewCar{VIN: "1HGCM82633A004352", Make: ptr("Honda"), Model: ptr("Accord"), Year: 2003, OwnerID: 7}
	stored := &domain.Car{
		ID: 42, VIN: input.VIN, Make: input.Make, Model: input.Model, Year: 2003, OwnerID: 7,
		Owner: &domain.Owner{ID: 7, Name: "Ana"},
	}

	tests := []struct {
		name       string
		setupMocks func(*serviceMocks)
		want       *domain.Car
		errCheck   func(error) bool
	}{
		{
			name: "success returns owner-joined car",
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().ExistsByVIN(mock.Anything, input.VIN).Return(false, nil)
				m.owners.EXPECT().ExistsByID(mock.Anything, int64(7)).Return(true, nil)
				m.cars.EXPECT().Insert(mock.Anything, input).Return(&domain.Car{ID: 42, VIN: input.VIN, OwnerID: 7}, nil)
				m.cars.EXPECT().FindWithOwnerByID(mock.Anything, int64(42)).Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "duplicate vin is a conflict and owner is not checked",
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().ExistsByVIN(mock.Anything, input.VIN).Return(true, nil)
			},
			errCheck: domain.IsConflict,
		},
		{
			name: "unknown owner is not found",
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().ExistsByVIN(mock.Anything, input.VIN).Return(false, nil)
				m.owners.EXPECT().ExistsByID(mock.Anything, int64(7)).Return(false, nil)
			},
			errCheck: domain.IsNotFound,
		},
		{
			name: "unique index race surfaces as conflict",
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().ExistsByVIN(mock.Anything, input.VIN).Return(false, nil)
				m.owners.EXPECT().ExistsByID(mock.Anything, int64(7)).Return(true, nil)
				m.cars.EXPECT().Insert(mock.Anything, input).Return(nil, domain.NewDuplicateVINError(input.VIN))
			},
			errCheck: domain.IsConflict,
		},
		{
			name: "store failure on insert is wrapped with the step",
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().ExistsByVIN(mock.Anything, input.VIN).Return(false, nil)
				m.owners.EXPECT().ExistsByID(mock.Anything, int64(7)).Return(true, nil)
				m.cars.EXPECT().Insert(mock.Anything, input).Return(nil, errStore)
			},
			errCheck: func(err error) bool {
				step, ok := GetExecutionStep(err)
				return ok && step == StepPerform && errors.Is(err, errStore)
			},
		},
		{
			name: "read back failure is a verify error",
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().ExistsByVIN(mock.Anything, input.VIN).Return(false, nil)
				m.owners.EXPECT().ExistsByID(mock.Anything, int64(7)).Return(true, nil)
				m.cars.EXPECT().Insert(mock.Anything, input).Return(&domain.Car{ID: 42}, nil)
				m.cars.EXPECT().FindWithOwnerByID(mock.Anything, int64(42)).Return(nil, errStore)
			},
			errCheck: func(err error) bool {
				step, ok := GetExecutionStep(err)
				return ok && step == StepVerify
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCarService(t)
			tt.setupMocks(m)

			got, err := svc.CreateCar(context.Background(), input)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCarService_CreateCar_DuplicateMessageNamesVIN(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().ExistsByVIN(mock.Anything, "1HGCM82633A004352").Return(true, nil)

	_, err := svc.CreateCar(context.Background(), domain.NewCar{VIN: "1HGCM82633A004352", OwnerID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1HGCM82633A004352")
}

func TestCarService_ListCars(t *testing.T) {
	svc, m := newTestCarService(t)
	cars := []domain.Car{{ID: 1, VIN: "A"}, {ID: 2, VIN: "B"}}
	m.cars.EXPECT().List(mock.Anything).Return(cars, nil)

	got, err := svc.ListCars(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cars, got)
}

func TestCarService_ListCars_StoreError(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().List(mock.Anything).Return(nil, errStore)

	_, err := svc.ListCars(context.Background())

	require.ErrorIs(t, err, errStore)
}

func TestCarService_IsInsuranceValid(t *testing.T) {
	policies := []domain.Policy{
		{ID: 1, CarID: 5, StartDate: domain.NewDate(2024, 1, 1), EndDate: domain.NewDate(2024, 12, 31)},
	}

	tests := []struct {
		name string
		date domain.Date
		want bool
	}{
		{"on start date", domain.NewDate(2024, 1, 1), true},
		{"on end date", domain.NewDate(2024, 12, 31), true},
		{"day before start", domain.NewDate(2023, 12, 31), false},
		{"day after end", domain.NewDate(2025, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCarService(t)
			m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
			m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(policies, nil)

			got, err := svc.IsInsuranceValid(context.Background(), 5, tt.date)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCarService_IsInsuranceValid_NoPolicies(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
	m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(nil, nil)

	got, err := svc.IsInsuranceValid(context.Background(), 5, domain.NewDate(2024, 1, 1))

	require.NoError(t, err)
	assert.False(t, got)
}

func TestCarService_IsInsuranceValid_UnknownCar(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, domain.NewNotFoundError("car", "99"))

	_, err := svc.IsInsuranceValid(context.Background(), 99, domain.NewDate(2024, 1, 1))

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCarService_RegisterClaim(t *testing.T) {
	covering := []domain.Policy{
		{ID: 1, CarID: 5, StartDate: domain.NewDate(2024, 1, 1), EndDate: domain.NewDate(2024, 12, 31)},
	}
	claim := domain.NewClaim{
		ClaimDate:   domain.NewDate(2024, 6, 15),
		Description: "Rear-ended at a light",
		Amount:      decimal.RequireFromString("1250.50"),
	}

	tests := []struct {
		name       string
		carID      int64
		claim      domain.NewClaim
		setupMocks func(*serviceMocks)
		errCheck   func(error) bool
	}{
		{
			name:  "success",
			carID: 5,
			claim: claim,
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
				m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(covering, nil)
				m.claims.EXPECT().Insert(mock.Anything, int64(5), claim).
					Return(&domain.Claim{ID: 11, CarID: 5, ClaimDate: claim.ClaimDate, Description: claim.Description, Amount: claim.Amount}, nil)
			},
		},
		{
			name:  "claim dated today is accepted",
			carID: 5,
			claim: domain.NewClaim{ClaimDate: domain.NewDate(2024, 6, 30), Description: "x", Amount: decimal.NewFromInt(1)},
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
				m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(covering, nil)
				m.claims.EXPECT().Insert(mock.Anything, int64(5), mock.Anything).
					Return(&domain.Claim{ID: 12, CarID: 5, ClaimDate: domain.NewDate(2024, 6, 30)}, nil)
			},
		},
		{
			name:       "future date is rejected before touching the store",
			carID:      99,
			claim:      domain.NewClaim{ClaimDate: domain.NewDate(2024, 7, 1), Description: "x", Amount: decimal.NewFromInt(1)},
			setupMocks: func(*serviceMocks) {},
			errCheck:   domain.IsValidation,
		},
		{
			name:  "unknown car",
			carID: 99,
			claim: claim,
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, domain.NewNotFoundError("car", "99"))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name:  "uncovered date is no coverage, not not found",
			carID: 5,
			claim: domain.NewClaim{ClaimDate: domain.NewDate(2023, 6, 15), Description: "x", Amount: decimal.NewFromInt(1)},
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
				m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(covering, nil)
			},
			errCheck: func(err error) bool {
				return domain.IsNoCoverage(err) && !domain.IsNotFound(err)
			},
		},
		{
			name:  "store returning a foreign claim fails verification",
			carID: 5,
			claim: claim,
			setupMocks: func(m *serviceMocks) {
				m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
				m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(covering, nil)
				m.claims.EXPECT().Insert(mock.Anything, int64(5), claim).Return(&domain.Claim{ID: 11, CarID: 6}, nil)
			},
			errCheck: func(err error) bool {
				step, ok := GetExecutionStep(err)
				return ok && step == StepVerify
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCarService(t)
			tt.setupMocks(m)

			got, err := svc.RegisterClaim(context.Background(), tt.carID, tt.claim)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.carID, got.CarID)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestCarService_GetHistory(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
	m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return([]domain.Policy{
		{ID: 1, CarID: 5, Provider: "Allianz", StartDate: domain.NewDate(2024, 1, 1), EndDate: domain.NewDate(2024, 12, 31)},
	}, nil)
	m.claims.EXPECT().FindByCarID(mock.Anything, int64(5)).Return([]domain.Claim{
		{ID: 1, CarID: 5, ClaimDate: domain.NewDate(2024, 6, 15), Description: "Accident", Amount: decimal.NewFromInt(1000)},
	}, nil)

	history, err := svc.GetHistory(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.EventPolicyAdded, history[0].Kind)
	assert.Equal(t, "Insurance with Allianz from 2024-01-01 to 2024-12-31.", history[0].Description)
	assert.Equal(t, domain.EventClaimRegistered, history[1].Kind)
	assert.Equal(t, "Claim for 1000.00 - 'Accident'.", history[1].Description)
}

func TestCarService_GetHistory_EmptyCar(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
	m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(nil, nil)
	m.claims.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(nil, nil)

	history, err := svc.GetHistory(context.Background(), 5)

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestCarService_GetHistory_UnknownCar(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, domain.NewNotFoundError("car", "99"))

	_, err := svc.GetHistory(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCarService_GetHistory_StoreError(t *testing.T) {
	svc, m := newTestCarService(t)
	m.cars.EXPECT().FindByID(mock.Anything, int64(5)).Return(&domain.Car{ID: 5}, nil)
	m.policies.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(nil, errStore)
	m.claims.EXPECT().FindByCarID(mock.Anything, int64(5)).Return(nil, nil).Maybe()

	_, err := svc.GetHistory(context.Background(), 5)

	require.ErrorIs(t, err, errStore)
}
