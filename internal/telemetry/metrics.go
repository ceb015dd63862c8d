package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	DirChanges      prometheus.Counter
}

// NewMetrics registers the shell collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "termshell",
			Name:      "commands_total",
			Help:      "Submitted command lines, labeled by result kind.",
		}, []string{"result"}),

		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "termshell",
			Name:      "command_duration_seconds",
			Help:      "Time spent blocked in a submission.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),

		DirChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "termshell",
			Name:      "dir_changes_total",
			Help:      "Successful working directory changes.",
		}),
	}

	reg.MustRegister(m.CommandsTotal, m.CommandDuration, m.DirChanges)
	return m
}
