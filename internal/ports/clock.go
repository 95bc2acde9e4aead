package ports

import "github.com/jsamuelsen/carinsurance-service/internal/domain"

// Clock supplies the current calendar date. Business rules evaluate "today"
// through this port so they stay deterministic under test.
type Clock interface {
	Today() domain.Date
}
