package gormstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// Records mirror the schema and stay inside this package; repositories
// convert them to domain values at the boundary.

type ownerRecord struct {
	ID    int64   `gorm:"primaryKey"`
	Name  string  `gorm:"size:200;not null"`
	Email *string `gorm:"size:320"`
}

func (ownerRecord) TableName() string { return "owners" }

type carRecord struct {
	ID      int64        `gorm:"primaryKey"`
	VIN     string       `gorm:"column:vin;size:17;not null;uniqueIndex:ux_cars_vin"`
	Make    *string      `gorm:"size:100"`
	Model   *string      `gorm:"size:100"`
	Year    int          `gorm:"not null"`
	OwnerID int64        `gorm:"not null;index:ix_cars_owner_id"`
	Owner   *ownerRecord `gorm:"foreignKey:OwnerID"`
}

func (carRecord) TableName() string { return "cars" }

type policyRecord struct {
	ID                 int64      `gorm:"primaryKey"`
	CarID              int64      `gorm:"not null;index:ix_policies_car_id"`
	Provider           string     `gorm:"size:200;not null"`
	StartDate          time.Time  `gorm:"type:date;not null"`
	EndDate            time.Time  `gorm:"type:date;not null;index:ix_policies_end_date"`
	ExpirationNotified bool       `gorm:"not null;default:false"`
	Car                *carRecord `gorm:"foreignKey:CarID"`
}

func (policyRecord) TableName() string { return "policies" }

type claimRecord struct {
	ID          int64           `gorm:"primaryKey"`
	CarID       int64           `gorm:"not null;index:ix_claims_car_id"`
	ClaimDate   time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"size:1000;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Car         *carRecord      `gorm:"foreignKey:CarID"`
}

func (claimRecord) TableName() string { return "claims" }

// models lists every record in migration order.
func models() []any {
	return []any{&ownerRecord{}, &carRecord{}, &policyRecord{}, &claimRecord{}}
}

func (r *ownerRecord) toDomain() *domain.Owner {
	if r == nil {
		return nil
	}

	return &domain.Owner{ID: r.ID, Name: r.Name, Email: r.Email}
}

func (r *carRecord) toDomain() *domain.Car {
	return &domain.Car{
		ID:      r.ID,
		VIN:     r.VIN,
		Make:    r.Make,
		Model:   r.Model,
		Year:    r.Year,
		OwnerID: r.OwnerID,
		Owner:   r.Owner.toDomain(),
	}
}

func newCarRecord(c domain.NewCar) *carRecord {
	return &carRecord{VIN: c.VIN, Make: c.Make, Model: c.Model, Year: c.Year, OwnerID: c.OwnerID}
}

func (r *policyRecord) toDomain() domain.Policy {
	return domain.Policy{
		ID:                 r.ID,
		CarID:              r.CarID,
		Provider:           r.Provider,
		StartDate:          domain.DateOf(r.StartDate),
		EndDate:            domain.DateOf(r.EndDate),
		ExpirationNotified: r.ExpirationNotified,
	}
}

func (r *claimRecord) toDomain() *domain.Claim {
	return &domain.Claim{
		ID:          r.ID,
		CarID:       r.CarID,
		ClaimDate:   domain.DateOf(r.ClaimDate),
		Description: r.Description,
		Amount:      r.Amount,
	}
}
