package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Invocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_validator_invocations_total",
		Help: "Total handler invocations, labelled by event type and envelope status.",
	}, []string{"event_type", "status"})

	FixtureLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_validator_fixture_load_errors_total",
		Help: "Total fixture files that could not be read or parsed.",
	})

	SuiteCaseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "event_validator_suite_case_failures_total",
		Help: "Total suite cases whose envelope did not match the expectation, labelled by case name.",
	}, []string{"case"})
)
