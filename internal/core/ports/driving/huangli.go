package driving

import (
	"context"

	"github.com/custodia-labs/huangli/internal/core/domain"
)

// HuangliService answers almanac lookups for external actors.
type HuangliService interface {
	// Almanac resolves the request's date and timezone and returns the
	// assembled record. Invalid input fails with a *domain.RequestError.
	Almanac(ctx context.Context, req domain.AlmanacRequest) (*domain.AlmanacRecord, error)
}
