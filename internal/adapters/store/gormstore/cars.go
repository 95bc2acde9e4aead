package gormstore

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// CarRepository implements ports.CarRepository.
type CarRepository struct {
	db *gorm.DB
}

// FindByID implements ports.CarRepository.
func (r *CarRepository) FindByID(ctx context.Context, id int64) (*domain.Car, error) {
	var rec carRecord

	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("car", strconv.FormatInt(id, 10))
	}

	if err != nil {
		return nil, wrap("finding car", err)
	}

	return rec.toDomain(), nil
}

// FindWithOwnerByID implements ports.CarRepository.
func (r *CarRepository) FindWithOwnerByID(ctx context.Context, id int64) (*domain.Car, error) {
	var rec carRecord

	err := r.db.WithContext(ctx).Joins("Owner").Where("cars.id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("car", strconv.FormatInt(id, 10))
	}

	if err != nil {
		return nil, wrap("finding car with owner", err)
	}

	return rec.toDomain(), nil
}

// ExistsByVIN implements ports.CarRepository.
func (r *CarRepository) ExistsByVIN(ctx context.Context, vin string) (bool, error) {
	var n int64

	if err := r.db.WithContext(ctx).Model(&carRecord{}).Where("vin = ?", vin).Count(&n).Error; err != nil {
		return false, wrap("checking vin", err)
	}

	return n > 0, nil
}

// Insert implements ports.CarRepository. A VIN rejected by the unique index
// is reported as a duplicate.
func (r *CarRepository) Insert(ctx context.Context, car domain.NewCar) (*domain.Car, error) {
	rec := newCarRecord(car)

	err := r.db.WithContext(ctx).Omit("Owner").Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.NewDuplicateVINError(car.VIN)
	}

	if err != nil {
		return nil, wrap("inserting car", err)
	}

	return rec.toDomain(), nil
}

// List implements ports.CarRepository.
func (r *CarRepository) List(ctx context.Context) ([]domain.Car, error) {
	var recs []carRecord

	if err := r.db.WithContext(ctx).Joins("Owner").Order("cars.id").Find(&recs).Error; err != nil {
		return nil, wrap("listing cars", err)
	}

	cars := make([]domain.Car, 0, len(recs))
	for i := range recs {
		cars = append(cars, *recs[i].toDomain())
	}

	return cars, nil
}

// OwnerRepository implements ports.OwnerRepository.
type OwnerRepository struct {
	db *gorm.DB
}

// ExistsByID implements ports.OwnerRepository.
func (r *OwnerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64

	if err := r.db.WithContext(ctx).Model(&ownerRecord{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, wrap("checking owner", err)
	}

	return n > 0, nil
}
