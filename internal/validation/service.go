package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"belegcheck/internal/amountclass"
	"belegcheck/internal/domain"
	"belegcheck/internal/identifier"
	"belegcheck/internal/validation/metrics"
	"belegcheck/pkg/domerr"
)

// nameMatchFloor is the similarity score above which the registry's on-file
// name confirms the extracted issuer name. Below it the registry check stays
// WARNING, never INVALID: near-duplicate legal-entity names are common.
const nameMatchFloor = 0.6

// IdentityVerifier is the registry collaborator. Verify never errors; an
// unreachable registry yields an inconclusive info value.
type IdentityVerifier interface {
	Verify(ctx context.Context, uid, extractedName string) *domain.ViesValidationInfo
}

// Service is the validation engine facade: one Evaluate call runs the
// synchronous check suite, awaits the registry step, and aggregates the
// verdict. Stateless apart from the injected verifier's cache.
type Service struct {
	suite      *Suite
	classifier *amountclass.Classifier
	verifier   IdentityVerifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithMetrics attaches prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService builds the engine.
func NewService(suite *Suite, classifier *amountclass.Classifier, verifier IdentityVerifier, logger *slog.Logger, opts ...Option) (*Service, error) {
	if suite == nil {
		return nil, fmt.Errorf("check suite is required")
	}
	if classifier == nil {
		return nil, fmt.Errorf("amount classifier is required")
	}
	if verifier == nil {
		return nil, fmt.Errorf("identity verifier is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	svc := &Service{
		suite:      suite,
		classifier: classifier,
		verifier:   verifier,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Evaluate produces the full verdict for one invoice: exactly one check per
// defined rule plus the aggregated traffic-light status. Structural contract
// violations (missing tenant or invoice id, nil fields) error before any
// check runs; invoice content defects never error.
func (s *Service) Evaluate(ctx context.Context, fields *domain.ExtractedFields, vctx domain.ValidationContext) (*domain.ValidationOutput, error) {
	if fields == nil {
		return nil, domerr.New(domerr.CodeInvalidInput, "extracted fields are required")
	}
	if vctx.TenantID == uuid.Nil {
		return nil, domerr.New(domerr.CodeInvalidInput, "tenant id is required")
	}
	if vctx.InvoiceID == uuid.Nil {
		return nil, domerr.New(domerr.CodeInvalidInput, "invoice id is required")
	}

	start := time.Now()
	class := s.classifier.Classify(fields.GrossAmount, fields.Currency, vctx.EstimatedReferenceGross)

	// The registry lookup is the only suspension point; everything else is
	// pure. Fan it out and run the synchronous suite meanwhile.
	var viesInfo *domain.ViesValidationInfo
	g, gctx := errgroup.WithContext(ctx)
	if identifier.CheckUIDSyntax(fields.Issuer.UID) {
		g.Go(func() error {
			registryStart := time.Now()
			viesInfo = s.verifier.Verify(gctx, fields.Issuer.UID, fields.Issuer.Name)
			s.metrics.ObserveRegistryLatency(time.Since(registryStart))
			return nil
		})
	}

	checks := s.suite.Run(fields, class)

	if err := g.Wait(); err != nil {
		// Verify never errors; keep the guard so a future registry step
		// cannot silently break the completeness invariant.
		return nil, domerr.Wrap(domerr.CodeInternal, "registry step failed", err)
	}
	checks = append(checks, s.registryCheck(viesInfo, class))

	output := &domain.ValidationOutput{
		OverallStatus: Aggregate(checks),
		AmountClass:   class,
		Checks:        checks,
		ViesInfo:      viesInfo,
	}

	for _, c := range checks {
		s.metrics.IncrementCheckOutcome(string(c.Rule), string(c.Status))
	}
	s.metrics.IncrementVerdict(string(output.OverallStatus), string(class))
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	s.logger.InfoContext(ctx, "invoice validated",
		"tenant_id", vctx.TenantID,
		"invoice_id", vctx.InvoiceID,
		"direction", vctx.Direction,
		"amount_class", class,
		"overall_status", output.OverallStatus,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return output, nil
}

// registryCheck converts the registry outcome into the uid_registry check.
// The rule is never mandatory, and an unreachable registry yields PENDING:
// an invoice whose lookup is inconclusive is never reported fully compliant,
// but a third-party outage never fails it either.
func (s *Service) registryCheck(info *domain.ViesValidationInfo, class domain.AmountClass) domain.ValidationCheck {
	required := IsRequiredFor(domain.RuleUIDRegistry, class)

	switch {
	case info == nil:
		return check(domain.RuleUIDRegistry, domain.StatusWarning,
			"registry lookup skipped: no syntactically valid issuer UID", required)
	case !info.Conclusive():
		return check(domain.RuleUIDRegistry, domain.StatusPending,
			"registry lookup could not be completed: "+info.Error, required)
	case !info.Valid:
		return check(domain.RuleUIDRegistry, domain.StatusWarning,
			"issuer UID is not currently registered", required)
	case info.Name == "":
		return check(domain.RuleUIDRegistry, domain.StatusWarning,
			"registry confirms the UID but holds no name to compare", required)
	case info.NameMatch < nameMatchFloor:
		return check(domain.RuleUIDRegistry, domain.StatusWarning,
			fmt.Sprintf("registry name %q barely resembles extracted issuer name (similarity %.2f)",
				info.Name, info.NameMatch), required)
	default:
		return check(domain.RuleUIDRegistry, domain.StatusValid, "", required)
	}
}
