package ports

import (
	"context"

	"quicktrip-api/internal/domain"
)

// Contract for resolving the caller's live position when an anchor flag
// asks for it. Implementations return domain.ErrLocationUnavailable when
// no position is known; callers treat that as best-effort and skip the
// anchor rather than failing the run.
type LocationProvider interface {
	Current(ctx context.Context) (domain.Coordinates, error)
}
