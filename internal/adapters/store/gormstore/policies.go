package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// PolicyRepository implements ports.PolicyRepository.
type PolicyRepository struct {
	db *gorm.DB
}

// FindByCarID implements ports.PolicyRepository.
func (r *PolicyRepository) FindByCarID(ctx context.Context, carID int64) ([]domain.Policy, error) {
	var recs []policyRecord

	if err := r.db.WithContext(ctx).Where("car_id = ?", carID).Order("id").Find(&recs).Error; err != nil {
		return nil, wrap("listing policies", err)
	}

	return toPolicies(recs), nil
}

// FindUnnotifiedExpiredBefore implements ports.PolicyRepository.
func (r *PolicyRepository) FindUnnotifiedExpiredBefore(ctx context.Context, date domain.Date) ([]domain.Policy, error) {
	var recs []policyRecord

	err := r.db.WithContext(ctx).
		Where("expiration_notified = ? AND end_date < ?", false, date.Time()).
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, wrap("finding expired policies", err)
	}

	return toPolicies(recs), nil
}

// Insert stores a policy. Policies are managed outside the HTTP API; this is
// used by seeding and tests.
func (r *PolicyRepository) Insert(ctx context.Context, p domain.Policy) (domain.Policy, error) {
	rec := policyRecord{
		CarID:              p.CarID,
		Provider:           p.Provider,
		StartDate:          p.StartDate.Time(),
		EndDate:            p.EndDate.Time(),
		ExpirationNotified: p.ExpirationNotified,
	}

	if err := r.db.WithContext(ctx).Omit("Car").Create(&rec).Error; err != nil {
		return domain.Policy{}, wrap("inserting policy", err)
	}

	return rec.toDomain(), nil
}

// UpdateBatch implements ports.PolicyRepository. The flags are written in one
// transaction; a policy that no longer exists rolls back the whole batch.
func (r *PolicyRepository) UpdateBatch(ctx context.Context, policies []domain.Policy) error {
	if len(policies) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range policies {
			res := tx.Model(&policyRecord{}).
				Where("id = ?", p.ID).
				Update("expiration_notified", p.ExpirationNotified)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				return domain.NewNotFoundError("policy", fmt.Sprint(p.ID))
			}
		}

		return nil
	})
	if err != nil {
		return wrap("updating policies", err)
	}

	return nil
}

func toPolicies(recs []policyRecord) []domain.Policy {
	policies := make([]domain.Policy, 0, len(recs))
	for i := range recs {
		policies = append(policies, recs[i].toDomain())
	}

	return policies
}
