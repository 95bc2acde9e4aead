package dto

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// MinClaimAmount is the smallest amount a claim may be registered for.
var MinClaimAmount = decimal.New(1, -2)

// CreateCarRequest is the body of POST /api/v1/cars.
type CreateCarRequest struct {
	VIN     string  `json:"vin"               validate:"required,vin"`
	Make    *string `json:"make"`
	Model   *string `json:"model"`
	Year    int     `json:"yearOfManufacture" validate:"required,gte=1700,lte=99999"`
	OwnerID int64   `json:"ownerId"           validate:"required,gte=1"`
}

// ToDomain converts the request into the service input.
func (r CreateCarRequest) ToDomain() domain.NewCar {
	return domain.NewCar{
		VIN:     r.VIN,
		Make:    r.Make,
		Model:   r.Model,
		Year:    r.Year,
		OwnerID: r.OwnerID,
	}
}

// CreateClaimRequest is the body of POST /api/v1/cars/:carId/claims.
// Amount accepts a JSON number or a decimal string.
type CreateClaimRequest struct {
	ClaimDate   string          `json:"claimDate"   validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"required,notempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// Validate implements Validatable for the rules struct tags cannot express.
func (r *CreateClaimRequest) Validate() error {
	if r.Amount.LessThan(MinClaimAmount) {
		return domain.NewValidationErrorWithValue("amount", "must be at least "+MinClaimAmount.StringFixed(2), r.Amount.String())
	}

	// Amounts are stored at two decimals; anything finer would be rounded.
	if !r.Amount.Equal(r.Amount.Round(2)) {
		return domain.NewValidationErrorWithValue("amount", "must have at most 2 decimal places", r.Amount.String())
	}

	return nil
}

// ToDomain converts the request into the service input. It must be called
// after validation, which guarantees the date parses.
func (r CreateClaimRequest) ToDomain() (domain.NewClaim, error) {
	date, err := domain.ParseDate(r.ClaimDate)
	if err != nil {
		return domain.NewClaim{}, domain.NewValidationErrorWithValue("claimDate", err.Error(), r.ClaimDate)
	}

	return domain.NewClaim{
		ClaimDate:   date,
		Description: r.Description,
		Amount:      r.Amount,
	}, nil
}

// InsuranceValidityQuery holds the query parameters of the validity check.
type InsuranceValidityQuery struct {
	Date string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
}

// CarResponse is a car together with its owner's contact data.
type CarResponse struct {
	ID         int64   `json:"id"`
	VIN        string  `json:"vin"`
	Make       *string `json:"make"`
	Model      *string `json:"model"`
	Year       int     `json:"yearOfManufacture"`
	OwnerID    int64   `json:"ownerId"`
	OwnerName  string  `json:"ownerName"`
	OwnerEmail *string `json:"ownerEmail"`
}

// NewCarResponse maps a domain car. Owner fields stay empty when the car was
// read without its owner.
func NewCarResponse(c domain.Car) CarResponse {
	resp := CarResponse{
		ID:      c.ID,
		VIN:     c.VIN,
		Make:    c.Make,
		Model:   c.Model,
		Year:    c.Year,
		OwnerID: c.OwnerID,
	}

	if c.Owner != nil {
		resp.OwnerName = c.Owner.Name
		resp.OwnerEmail = c.Owner.Email
	}

	return resp
}

// NewCarListResponse maps a list of cars, never returning nil.
func NewCarListResponse(cars []domain.Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, NewCarResponse(c))
	}

	return out
}

// InsuranceValidityResponse answers whether a car is insured on a date.
type InsuranceValidityResponse struct {
	CarID int64  `json:"carId"`
	Date  string `json:"date"`
	Valid bool   `json:"valid"`
}

// ClaimResponse is a stored claim. Amount is rendered as a JSON number with
// its exact decimal digits.
type ClaimResponse struct {
	ID          int64       `json:"id"`
	CarID       int64       `json:"carId"`
	ClaimDate   string      `json:"claimDate"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
}

// NewClaimResponse maps a domain claim.
func NewClaimResponse(c domain.Claim) ClaimResponse {
	return ClaimResponse{
		ID:          c.ID,
		CarID:       c.CarID,
		ClaimDate:   c.ClaimDate.String(),
		Description: c.Description,
		Amount:      json.Number(c.Amount.String()),
	}
}

// HistoryEventResponse is one entry of a car's history.
type HistoryEventResponse struct {
	EventType   string `json:"eventType"`
	EventDate   string `json:"eventDate"`
	Description string `json:"description"`
}

// NewHistoryResponse maps history events, never returning nil.
func NewHistoryResponse(events []domain.HistoryEvent) []HistoryEventResponse {
	out := make([]HistoryEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, HistoryEventResponse{
			EventType:   string(e.Kind),
			EventDate:   e.Date.String(),
			Description: e.Description,
		})
	}

	return out
}

// ParseCarID parses the :carId path parameter.
func ParseCarID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationErrorWithValue("carId", "must be a positive integer", raw)
	}

	return id, nil
}
