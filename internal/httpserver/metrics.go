package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordlebot_sessions_started_total",
		Help: "Sessions created through the API.",
	})

	sessionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordlebot_session_outcomes_total",
		Help: "Terminal outcomes by source (session, simulate).",
	}, []string{"source", "outcome"})

	candidatesLeft = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordlebot_candidates_remaining",
		Help:    "Candidates left after each submitted round.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
