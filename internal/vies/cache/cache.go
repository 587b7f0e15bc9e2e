// Package cache provides the short-lived, per-UID cache for registry
// lookups. Registry answers are idempotent for a given UID within the TTL
// window, so a racing populate is harmless (last write wins).
package cache

import (
	"context"

	"belegcheck/internal/domain"
)

// Store caches registry answers keyed by normalized UID. Get returns
// (nil, nil) on a miss; implementations must expire entries after their TTL.
type Store interface {
	Get(ctx context.Context, uid string) (*domain.ViesValidationInfo, error)
	Set(ctx context.Context, uid string, info *domain.ViesValidationInfo) error
}
