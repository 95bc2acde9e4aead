package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// ClaimRepository implements ports.ClaimRepository.
type ClaimRepository struct {
	db *gorm.DB
}

// FindByCarID implements ports.ClaimRepository.
func (r *ClaimRepository) FindByCarID(ctx context.Context, carID int64) ([]domain.Claim, error) {
	var recs []claimRecord

	if err := r.db.WithContext(ctx).Where("car_id = ?", carID).Order("id").Find(&recs).Error; err != nil {
		return nil, wrap("listing claims", err)
	}

	claims := make([]domain.Claim, 0, len(recs))
	for i := range recs {
		claims = append(claims, *recs[i].toDomain())
	}

	return claims, nil
}

// Insert implements ports.ClaimRepository.
func (r *ClaimRepository) Insert(ctx context.Context, carID int64, claim domain.NewClaim) (*domain.Claim, error) {
	rec := claimRecord{
		CarID:       carID,
		ClaimDate:   claim.ClaimDate.Time(),
		Description: claim.Description,
		Amount:      claim.Amount,
	}

	if err := r.db.WithContext(ctx).Omit("Car").Create(&rec).Error; err != nil {
		return nil, wrap("inserting claim", err)
	}

	return rec.toDomain(), nil
}
