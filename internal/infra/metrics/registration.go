package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		registrationStepsTotal,
		registrationCancellationsTotal,
		registrationCommitsTotal,
		interestLinkFailuresTotal,
	)
}

var (
	registrationStepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_steps_total",
			Help: "Step validation outcomes by step and result (accepted/rejected).",
		},
		[]string{"step", "result"},
	)

	registrationCancellationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_cancellations_total",
			Help: "Registrations abandoned via the cancel keyword, by the step they were at.",
		},
		[]string{"step"},
	)

	registrationCommitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_commits_total",
			Help: "Commit attempts by outcome (ok/duplicate/error).",
		},
		[]string{"outcome"},
	)

	interestLinkFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "interest_link_failures_total",
			Help: "Interest associations that failed during a best-effort commit.",
		},
	)
)

func IncStepOutcome(step string, accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	registrationStepsTotal.WithLabelValues(norm(step), result).Inc()
}

func IncCancellation(step string) {
	registrationCancellationsTotal.WithLabelValues(norm(step)).Inc()
}

func IncCommit(outcome string) {
	registrationCommitsTotal.WithLabelValues(norm(outcome)).Inc()
}

func IncInterestLinkFailure() {
	interestLinkFailuresTotal.Inc()
}
