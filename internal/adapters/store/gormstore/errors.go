package gormstore

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jsamuelsen/carinsurance-service/internal/domain"
)

// wrap annotates a store failure with op. Lost connections are reported as
// domain.ErrUnavailable so callers can tell them apart from bad queries.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w", op, domain.NewUnavailableError("database", err.Error()))
	}

	return fmt.Errorf("%s: %w", op, err)
}
