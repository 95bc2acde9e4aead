// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
	"github.com/jsamuelsen/carinsurance-service/internal/ports"
)

// CarService implements the car, coverage, claim and history use cases.
// It depends on port interfaces only and holds no state of its own, so it is
// safe for concurrent use.
type CarService struct {
	cars     ports.CarRepository
	owners   ports.OwnerRepository
	policies ports.PolicyRepository
	claims   ports.ClaimRepository
	clock    ports.Clock
	exec     *Executor
	logger   *slog.Logger
}

// CarServiceConfig contains the dependencies of the car service.
type CarServiceConfig struct {
	Cars     ports.CarRepository
	Owners   ports.OwnerRepository
	Policies ports.PolicyRepository
	Claims   ports.ClaimRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

// NewCarService creates a car service. It panics if a repository or the clock
// is missing, since the service cannot answer any request without them.
func NewCarService(cfg CarServiceConfig) *CarService {
	if cfg.Cars == nil || cfg.Owners == nil || cfg.Policies == nil || cfg.Claims == nil {
		panic("app: car service requires all repositories")
	}

	if cfg.Clock == nil {
		panic("app: car service requires a clock")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CarService{
		cars:     cfg.Cars,
		owners:   cfg.Owners,
		policies: cfg.Policies,
		claims:   cfg.Claims,
		clock:    cfg.Clock,
		exec:     NewExecutor(logger),
		logger:   logger,
	}
}

// ListCars returns every car with its owner, in ID order.
func (s *CarService) ListCars(ctx context.Context) ([]domain.Car, error) {
	cars, err := s.cars.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cars: %w", err)
	}

	return cars, nil
}

// CreateCar registers a car after checking that its VIN is unused and its
// owner exists. The returned car has Owner populated.
//
// The VIN pre-check produces a friendly conflict for the common case; the
// store's unique index still rejects a duplicate inserted concurrently.
func (s *CarService) CreateCar(ctx context.Context, car domain.NewCar) (*domain.Car, error) {
	op := Operation[domain.NewCar, int64, *domain.Car]{
		Name:     "create_car",
		Validate: s.validateNewCar,
		Perform: func(ctx context.Context, in domain.NewCar) (int64, error) {
			created, err := s.cars.Insert(ctx, in)
			if err != nil {
				return 0, fmt.Errorf("inserting car: %w", err)
			}

			return created.ID, nil
		},
		Verify: func(ctx context.Context, _ domain.NewCar, id int64) (*domain.Car, error) {
			created, err := s.cars.FindWithOwnerByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("reading back car %d: %w", id, err)
			}

			return created, nil
		},
	}

	created, err := Execute(ctx, s.exec, op, car)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "car registered",
		slog.Int64("car_id", created.ID),
		slog.Int64("owner_id", created.OwnerID),
	)

	return created, nil
}

func (s *CarService) validateNewCar(ctx context.Context, car domain.NewCar) error {
	taken, err := s.cars.ExistsByVIN(ctx, car.VIN)
	if err != nil {
		return fmt.Errorf("checking vin: %w", err)
	}

	if taken {
		return domain.NewDuplicateVINError(car.VIN)
	}

	exists, err := s.owners.ExistsByID(ctx, car.OwnerID)
	if err != nil {
		return fmt.Errorf("checking owner %d: %w", car.OwnerID, err)
	}

	if !exists {
		return domain.NewNotFoundError("owner", strconv.FormatInt(car.OwnerID, 10))
	}

	return nil
}

// IsInsuranceValid reports whether any of the car's policies covers date,
// bounds inclusive.
func (s *CarService) IsInsuranceValid(ctx context.Context, carID int64, date domain.Date) (bool, error) {
	if err := s.requireCar(ctx, carID); err != nil {
		return false, err
	}

	policies, err := s.policies.FindByCarID(ctx, carID)
	if err != nil {
		return false, fmt.Errorf("loading policies for car %d: %w", carID, err)
	}

	return domain.AnyPolicyCovers(policies, date), nil
}

type claimRequest struct {
	carID int64
	claim domain.NewClaim
}

// RegisterClaim stores a claim for a car that was insured on the claim date.
// A claim dated after today is rejected before the store is consulted.
func (s *CarService) RegisterClaim(ctx context.Context, carID int64, claim domain.NewClaim) (*domain.Claim, error) {
	op := Operation[claimRequest, *domain.Claim, *domain.Claim]{
		Name:     "register_claim",
		Validate: s.validateClaim,
		Perform: func(ctx context.Context, in claimRequest) (*domain.Claim, error) {
			stored, err := s.claims.Insert(ctx, in.carID, in.claim)
			if err != nil {
				return nil, fmt.Errorf("inserting claim: %w", err)
			}

			return stored, nil
		},
		Verify: func(_ context.Context, in claimRequest, stored *domain.Claim) (*domain.Claim, error) {
			if stored == nil || stored.ID == 0 {
				return nil, errors.New("store returned claim without id")
			}

			if stored.CarID != in.carID {
				return nil, fmt.Errorf("store returned claim for car %d, want %d", stored.CarID, in.carID)
			}

			return stored, nil
		},
	}

	stored, err := Execute(ctx, s.exec, op, claimRequest{carID: carID, claim: claim})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "claim registered",
		slog.Int64("car_id", carID),
		slog.Int64("claim_id", stored.ID),
		slog.String("claim_date", stored.ClaimDate.String()),
	)

	return stored, nil
}

func (s *CarService) validateClaim(ctx context.Context, in claimRequest) error {
	today := s.clock.Today()
	if in.claim.ClaimDate.After(today) {
		return domain.NewValidationErrorWithValue("claimDate", "claim date cannot be in the future", in.claim.ClaimDate.String())
	}

	if err := s.requireCar(ctx, in.carID); err != nil {
		return err
	}

	policies, err := s.policies.FindByCarID(ctx, in.carID)
	if err != nil {
		return fmt.Errorf("loading policies for car %d: %w", in.carID, err)
	}

	if !domain.AnyPolicyCovers(policies, in.claim.ClaimDate) {
		return domain.NewNoCoverageError(in.carID, in.claim.ClaimDate)
	}

	return nil
}

// GetHistory returns the car's policies and claims as one list ordered by
// date. On equal dates policies come before claims, and each kind keeps store
// order.
func (s *CarService) GetHistory(ctx context.Context, carID int64) ([]domain.HistoryEvent, error) {
	if err := s.requireCar(ctx, carID); err != nil {
		return nil, err
	}

	policies, claims, err := Parallel2(ctx,
		func(ctx context.Context) ([]domain.Policy, error) { return s.policies.FindByCarID(ctx, carID) },
		func(ctx context.Context) ([]domain.Claim, error) { return s.claims.FindByCarID(ctx, carID) },
	)
	if err != nil {
		return nil, fmt.Errorf("loading history for car %d: %w", carID, err)
	}

	return domain.BuildHistory(policies, claims), nil
}

// requireCar returns a NotFoundError unless the car exists.
func (s *CarService) requireCar(ctx context.Context, carID int64) error {
	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}

		return fmt.Errorf("loading car %d: %w", carID, err)
	}

	return nil
}
