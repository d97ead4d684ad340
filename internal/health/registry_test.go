package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name     string
	severity Severity
	result   CheckResult
}

func (s *stubChecker) Name() string                          { return s.name }
func (s *stubChecker) Severity() Severity                    { return s.severity }
func (s *stubChecker) Check(ctx context.Context) CheckResult { return s.result }

func TestRegistry_Liveness(t *testing.T) {
	r := NewRegistry("1.0.0")
	r.Register(&stubChecker{
		name:     "broken",
		severity: SeverityCritical,
		result:   CheckResult{Status: StatusUnhealthy},
	})

	// Liveness never runs checkers.
	resp := r.Liveness(context.Background())
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
}

func TestRegistry_Readiness(t *testing.T) {
	t.Run("healthy critical check passes", func(t *testing.T) {
		r := NewRegistry("test")
		r.Register(&stubChecker{
			name:     "db",
			severity: SeverityCritical,
			result:   CheckResult{Status: StatusHealthy},
		})

		resp := r.Readiness(context.Background())
		assert.Equal(t, StatusHealthy, resp.Status)
		assert.Contains(t, resp.Checks, "db")
	})

	t.Run("unhealthy critical check fails readiness", func(t *testing.T) {
		r := NewRegistry("test")
		r.Register(&stubChecker{
			name:     "db",
			severity: SeverityCritical,
			result:   CheckResult{Status: StatusUnhealthy, Message: "connection refused"},
		})

		resp := r.Readiness(context.Background())
		assert.Equal(t, StatusUnhealthy, resp.Status)
	})

	t.Run("warning checks are skipped", func(t *testing.T) {
		r := NewRegistry("test")
		r.Register(&stubChecker{
			name:     "cache",
			severity: SeverityWarning,
			result:   CheckResult{Status: StatusUnhealthy},
		})

		resp := r.Readiness(context.Background())
		assert.Equal(t, StatusHealthy, resp.Status)
		assert.NotContains(t, resp.Checks, "cache")
	})
}

func TestRegistry_Health(t *testing.T) {
	t.Run("unhealthy warning check degrades overall status", func(t *testing.T) {
		r := NewRegistry("test")
		r.Register(&stubChecker{
			name:     "db",
			severity: SeverityCritical,
			result:   CheckResult{Status: StatusHealthy},
		})
		r.Register(&stubChecker{
			name:     "cache",
			severity: SeverityWarning,
			result:   CheckResult{Status: StatusUnhealthy},
		})

		resp := r.Health(context.Background())
		assert.Equal(t, StatusDegraded, resp.Status)
		assert.Len(t, resp.Checks, 2)
	})

	t.Run("unhealthy critical check dominates", func(t *testing.T) {
		r := NewRegistry("test")
		r.Register(&stubChecker{
			name:     "db",
			severity: SeverityCritical,
			result:   CheckResult{Status: StatusUnhealthy},
		})
		r.Register(&stubChecker{
			name:     "cache",
			severity: SeverityWarning,
			result:   CheckResult{Status: StatusHealthy},
		})

		resp := r.Health(context.Background())
		assert.Equal(t, StatusUnhealthy, resp.Status)
	})
}
