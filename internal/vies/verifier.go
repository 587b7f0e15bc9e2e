package vies

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"belegcheck/internal/domain"
	"belegcheck/internal/identifier"
	"belegcheck/internal/vies/cache"
	"belegcheck/internal/vies/metrics"
)

// Verifier wraps the registry client with a per-UID cache, request
// deduplication, and an explicit timeout. It never returns an error: a
// registry that cannot answer yields an inconclusive ViesValidationInfo, and
// the caller reports the corresponding check as PENDING.
type Verifier struct {
	client  Client
	cache   cache.Store
	group   singleflight.Group
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional verifier dependencies.
type Option func(*Verifier)

// WithMetrics attaches prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(v *Verifier) { v.metrics = m }
}

// NewVerifier builds a verifier. timeout bounds the single outbound call;
// keep it in the low single-digit seconds so verdict construction is never
// blocked on a slow registry.
func NewVerifier(client Client, cacheStore cache.Store, timeout time.Duration, logger *slog.Logger, opts ...Option) *Verifier {
	v := &Verifier{
		client:  client,
		cache:   cacheStore,
		timeout: timeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify looks up the UID in the registry and scores the on-file name
// against the extracted issuer name. The UID must already be syntactically
// valid; callers gate on identifier.CheckUIDSyntax.
func (v *Verifier) Verify(ctx context.Context, uid, extractedName string) *domain.ViesValidationInfo {
	normalized := identifier.NormalizeUID(uid)

	info := v.lookup(ctx, normalized)
	if info.Valid && info.Name != "" {
		info.NameMatch = CompareCompanyNames(info.Name, extractedName)
	}
	return info
}

func (v *Verifier) lookup(ctx context.Context, uid string) *domain.ViesValidationInfo {
	if cached, err := v.cache.Get(ctx, uid); err != nil {
		v.logger.WarnContext(ctx, "registry cache read failed", "uid", uid, "error", err)
	} else if cached != nil {
		v.metrics.IncrementCacheHit()
		copied := *cached
		return &copied
	}

	// Concurrent validations of the same UID share one outbound call; the
	// registry's answer is idempotent within the cache window.
	result, err, _ := v.group.Do(uid, func() (any, error) {
		return v.fetch(ctx, uid), nil
	})
	if err != nil {
		// Cannot happen: fetch converts every failure into an info value.
		return v.inconclusive(uid, err.Error())
	}
	copied := *result.(*domain.ViesValidationInfo)
	return &copied
}

func (v *Verifier) fetch(ctx context.Context, uid string) *domain.ViesValidationInfo {
	countryCode, vatNumber, ok := identifier.SplitUID(uid)
	if !ok {
		return v.inconclusive(uid, "uid too short to split into country code and number")
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	info, err := v.client.CheckVat(ctx, countryCode, vatNumber)
	if err != nil {
		// A third-party outage must never fail an otherwise compliant
		// invoice; degrade to the inconclusive outcome.
		v.logger.WarnContext(ctx, "registry lookup failed",
			"uid", uid,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		v.metrics.IncrementLookup("failed")
		return v.inconclusive(uid, err.Error())
	}
	v.metrics.IncrementLookup("conclusive")

	v.logger.DebugContext(ctx, "registry lookup completed",
		"uid", uid,
		"valid", info.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	// Only conclusive answers are cached; a transient outage should not
	// stick for the full TTL.
	if err := v.cache.Set(ctx, uid, info); err != nil {
		v.logger.WarnContext(ctx, "registry cache write failed", "uid", uid, "error", err)
	}
	return info
}

func (v *Verifier) inconclusive(uid, reason string) *domain.ViesValidationInfo {
	countryCode, vatNumber, _ := identifier.SplitUID(uid)
	return &domain.ViesValidationInfo{
		CountryCode: countryCode,
		VatNumber:   vatNumber,
		Valid:       false,
		CheckedAt:   time.Now(),
		Error:       reason,
	}
}
