// Package domain contains core business entities and rules.
package domain

// VINLength is the number of characters in a vehicle identification number.
const VINLength = 17

// Owner is the person a car is registered to.
// Owners are read-only in this service.
type Owner struct {
	ID    int64
	Name  string
	Email *string
}

// Car is an insured vehicle. VIN is unique across all cars.
type Car struct {
	ID      int64
	VIN     string
	Make    *string
	Model   *string
	Year    int
	OwnerID int64

	// Owner is only populated by owner-joined reads.
	Owner *Owner
}

// NewCar holds the fields needed to register a car.
type NewCar struct {
	VIN     string
	Make    *string
	Model   *string
	Year    int
	OwnerID int64
}
