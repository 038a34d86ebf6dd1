package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/binary-swipes/internal/engine"
	"github.com/vovakirdan/binary-swipes/internal/level"
)

const namespace = "swipes"

// Metrics counts game events into a private Prometheus registry.
// One Metrics can observe many games at once; the collectors are safe for
// concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	levelsStarted   prometheus.Counter
	levelsCompleted *prometheus.CounterVec
	swipes          prometheus.Counter
	gameOvers       *prometheus.CounterVec
	phases          *prometheus.CounterVec
	sessions        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry,
// so repeated calls never collide.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		levelsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_started_total",
			Help:      "Levels that entered the countdown.",
		}),
		levelsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_completed_total",
			Help:      "Levels whose target was reached.",
		}, []string{"level"}),
		swipes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "correct_swipes_total",
			Help:      "Swipes in the right direction.",
		}),
		gameOvers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_overs_total",
			Help:      "Runs that ended, by cause.",
		}, []string{"cause"}),
		phases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phase_transitions_total",
			Help:      "Transitions into each phase.",
		}, []string{"phase"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Connected SSH sessions.",
		}),
	}

	m.registry.MustRegister(
		m.levelsStarted,
		m.levelsCompleted,
		m.swipes,
		m.gameOvers,
		m.phases,
		m.sessions,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SessionStarted and SessionEnded track connected players.
func (m *Metrics) SessionStarted() { m.sessions.Inc() }

// SessionEnded decrements the active session gauge.
func (m *Metrics) SessionEnded() { m.sessions.Dec() }

// OnPhase implements swipes.Observer.
func (m *Metrics) OnPhase(prev, next *engine.State, _ *level.Level) {
	if next == nil {
		return
	}

	if prev == nil || prev.Phase != next.Phase {
		m.phases.WithLabelValues(next.Phase.String()).Inc()
	}

	switch next.Phase {
	case engine.PhaseCountdown:
		if prev == nil || prev.Phase != engine.PhaseCountdown {
			m.levelsStarted.Inc()
		}
	case engine.PhaseTransitioning:
		m.swipes.Inc()
	case engine.PhaseLevelComplete:
		m.swipes.Inc()
		m.levelsCompleted.WithLabelValues(levelLabel(next.Level)).Inc()
	case engine.PhaseGameOver:
		cause := "wrong_swipe"
		if next.WasTimeout {
			cause = "timeout"
		}
		m.gameOvers.WithLabelValues(cause).Inc()
	}
}

// levelLabel caps the label set so endless campaigns stay bounded.
func levelLabel(n int) string {
	if n > 10 {
		return "expert"
	}
	return strconv.Itoa(n)
}
