// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never ORM records or driver types
//   - Missing entities are reported as domain.NotFoundError
//   - Keep interfaces small and focused, one per aggregate
package ports

import (
	"context"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// CarRepository persists cars.
type CarRepository interface {
	// FindByID returns the car without its owner.
	// Returns domain.ErrNotFound if the car does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Car, error)

	// FindWithOwnerByID returns the car with Owner populated.
	// Returns domain.ErrNotFound if the car does not exist.
	FindWithOwnerByID(ctx context.Context, id int64) (*domain.Car, error)

	// ExistsByVIN reports whether any car already uses vin.
	ExistsByVIN(ctx context.Context, vin string) (bool, error)

	// Insert stores a new car and returns it with its assigned ID.
	// Returns domain.ErrConflict if the store rejects the VIN as a duplicate.
	Insert(ctx context.Context, car domain.NewCar) (*domain.Car, error)

	// List returns all cars with owners populated, in ID order.
	List(ctx context.Context) ([]domain.Car, error)
}

// OwnerRepository reads owners.
type OwnerRepository interface {
	// ExistsByID reports whether an owner with id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// PolicyRepository persists insurance policies.
type PolicyRepository interface {
	// FindByCarID returns the car's policies in ID order.
	FindByCarID(ctx context.Context, carID int64) ([]domain.Policy, error)

	// FindUnnotifiedExpiredBefore returns policies that ended strictly before
	// date and have not been reported yet.
	FindUnnotifiedExpiredBefore(ctx context.Context, date domain.Date) ([]domain.Policy, error)

	// UpdateBatch writes the expiration flag of every policy in a single
	// transaction. Either all updates are committed or none are.
	UpdateBatch(ctx context.Context, policies []domain.Policy) error
}

// ClaimRepository persists claims.
type ClaimRepository interface {
	// FindByCarID returns the car's claims in ID order.
	FindByCarID(ctx context.Context, carID int64) ([]domain.Claim, error)

	// Insert stores a new claim for carID and returns it with its assigned ID.
	Insert(ctx context.Context, carID int64, claim domain.NewClaim) (*domain.Claim, error)
}
