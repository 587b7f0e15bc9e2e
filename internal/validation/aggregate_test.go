package validation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"belegcheck/internal/domain"
)

func TestContribution(t *testing.T) {
	t.Run("required invalid stays invalid", func(t *testing.T) {
		c := domain.ValidationCheck{Status: domain.StatusInvalid, Required: true}
		assert.Equal(t, domain.StatusInvalid, Contribution(c))
	})

	t.Run("optional invalid is capped at warning", func(t *testing.T) {
		c := domain.ValidationCheck{Status: domain.StatusInvalid, Required: false}
		assert.Equal(t, domain.StatusWarning, Contribution(c))
	})

	t.Run("pending and warning pass through unchanged", func(t *testing.T) {
		for _, status := range []domain.TrafficLightStatus{domain.StatusPending, domain.StatusWarning, domain.StatusValid} {
			c := domain.ValidationCheck{Status: status, Required: false}
			assert.Equal(t, status, Contribution(c))
		}
	})
}

func TestAggregate(t *testing.T) {
	mk := func(status domain.TrafficLightStatus, required bool) domain.ValidationCheck {
		return domain.ValidationCheck{Status: status, Required: required}
	}

	t.Run("all valid aggregates to valid", func(t *testing.T) {
		checks := []domain.ValidationCheck{mk(domain.StatusValid, true), mk(domain.StatusValid, false)}
		assert.Equal(t, domain.StatusValid, Aggregate(checks))
	})

	t.Run("pending outranks valid", func(t *testing.T) {
		checks := []domain.ValidationCheck{mk(domain.StatusValid, true), mk(domain.StatusPending, false)}
		assert.Equal(t, domain.StatusPending, Aggregate(checks))
	})

	t.Run("warning outranks pending", func(t *testing.T) {
		checks := []domain.ValidationCheck{mk(domain.StatusPending, false), mk(domain.StatusWarning, true)}
		assert.Equal(t, domain.StatusWarning, Aggregate(checks))
	})

	t.Run("required invalid dominates everything", func(t *testing.T) {
		checks := []domain.ValidationCheck{
			mk(domain.StatusValid, true),
			mk(domain.StatusWarning, true),
			mk(domain.StatusPending, false),
			mk(domain.StatusInvalid, true),
		}
		assert.Equal(t, domain.StatusInvalid, Aggregate(checks))
	})

	t.Run("optional invalid only reaches warning", func(t *testing.T) {
		checks := []domain.ValidationCheck{mk(domain.StatusValid, true), mk(domain.StatusInvalid, false)}
		assert.Equal(t, domain.StatusWarning, Aggregate(checks))
	})

	t.Run("empty check list is valid", func(t *testing.T) {
		assert.Equal(t, domain.StatusValid, Aggregate(nil))
	})

	t.Run("order independent and idempotent", func(t *testing.T) {
		checks := []domain.ValidationCheck{
			mk(domain.StatusValid, true),
			mk(domain.StatusPending, false),
			mk(domain.StatusInvalid, false),
			mk(domain.StatusWarning, true),
			mk(domain.StatusInvalid, true),
		}
		want := Aggregate(checks)

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 20; i++ {
			rng.Shuffle(len(checks), func(a, b int) { checks[a], checks[b] = checks[b], checks[a] })
			assert.Equal(t, want, Aggregate(checks))
		}
	})
}
