package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

func strPtr(s string) *string { return &s }

// Seed loads demo owners, cars and policies into an empty database. It does
// nothing when owners already exist and reports whether it wrote anything.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	var owners int64

	if err := s.db.WithContext(ctx).Model(&ownerRecord{}).Count(&owners).Error; err != nil {
		return false, wrap("counting owners", err)
	}

	if owners > 0 {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ana := ownerRecord{Name: "Ana Pop", Email: strPtr("ana.pop@example.com")}
		bogdan := ownerRecord{Name: "Bogdan Ionescu"}

		if err := tx.Create([]*ownerRecord{&ana, &bogdan}).Error; err != nil {
			return fmt.Errorf("seeding owners: %w", err)
		}

		cars := []*carRecord{
			{VIN: "VIN12345678901234", Make: strPtr("Dacia"), Model: strPtr("Logan"), Year: 2018, OwnerID: ana.ID},
			{VIN: "VIN98765432109876", Make: strPtr("VW"), Model: strPtr("Golf"), Year: 2021, OwnerID: ana.ID},
			{VIN: "VIN55555555555555", Make: strPtr("Skoda"), Model: strPtr("Octavia"), Year: 2019, OwnerID: bogdan.ID},
		}

		if err := tx.Omit("Owner").Create(cars).Error; err != nil {
			return fmt.Errorf("seeding cars: %w", err)
		}

		policies := []*policyRecord{
			{CarID: cars[0].ID, Provider: "Allianz", StartDate: domain.NewDate(2024, 1, 1).Time(), EndDate: domain.NewDate(2024, 12, 31).Time()},
			{CarID: cars[0].ID, Provider: "Groupama", StartDate: domain.NewDate(2025, 1, 1).Time(), EndDate: domain.NewDate(2025, 12, 31).Time()},
			{CarID: cars[1].ID, Provider: "Generali", StartDate: domain.NewDate(2025, 3, 1).Time(), EndDate: domain.NewDate(2025, 9, 30).Time()},
			{CarID: cars[2].ID, Provider: "Omniasig", StartDate: domain.NewDate(2026, 1, 1).Time(), EndDate: domain.NewDate(2026, 12, 31).Time()},
		}

		if err := tx.Omit("Car").Create(policies).Error; err != nil {
			return fmt.Errorf("seeding policies: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, wrap("seeding", err)
	}

	return true, nil
}
