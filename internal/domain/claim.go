package domain

import "github.com/shopspring/decimal"

// Claim is a damage claim registered against a car. Claims are immutable
// once stored.
type Claim struct {
	ID          int64
	CarID       int64
	ClaimDate   Date
	Description string
	Amount      decimal.Decimal
}

// NewClaim holds the fields needed to register a claim.
// Amount is expected to be positive; callers validate it before
// registration.
type NewClaim struct {
	ClaimDate   Date
	Description string
	Amount      decimal.Decimal
}
