package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Registration happens in promauto at init; this guards against name or
// label drift breaking the runner's increments.
func TestCounters(t *testing.T) {
	c := Invocations.WithLabelValues("PAYMENT", "ok")
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("Invocations = %v, want %v", got, before+1)
	}

	f := SuiteCaseFailures.WithLabelValues("payment_valid")
	before = testutil.ToFloat64(f)
	f.Inc()
	if got := testutil.ToFloat64(f); got != before+1 {
		t.Errorf("SuiteCaseFailures = %v, want %v", got, before+1)
	}

	before = testutil.ToFloat64(FixtureLoadErrors)
	FixtureLoadErrors.Inc()
	if got := testutil.ToFloat64(FixtureLoadErrors); got != before+1 {
		t.Errorf("FixtureLoadErrors = %v, want %v", got, before+1)
	}
}
