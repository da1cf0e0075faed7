package lzw

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "lzw"
	encoderSubsystem = "encoder"
)

// Metrics holds the encoder's Prometheus metrics. A nil *Metrics records
// nothing.
type Metrics struct {
	// CodesEmitted counts codes written to the output, control codes included.
	CodesEmitted prometheus.Counter

	// EntriesAdded counts dictionary entries created by Extend.
	EntriesAdded prometheus.Counter

	// Resets counts dictionary rebuilds triggered by a full code space.
	Resets prometheus.Counter

	// Freezes counts dictionaries that stopped growing.
	Freezes prometheus.Counter

	// CodeWidth is the width of the last emitted code.
	CodeWidth prometheus.Gauge
}

// NewMetrics creates the encoder metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CodesEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: encoderSubsystem,
			Name:      "codes_emitted_total",
			Help:      "Total number of codes emitted by the encoder.",
		}),
		EntriesAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: encoderSubsystem,
			Name:      "entries_added_total",
			Help:      "Total number of dictionary entries created.",
		}),
		Resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: encoderSubsystem,
			Name:      "dictionary_resets_total",
			Help:      "Total number of dictionary rebuilds after the code space filled up.",
		}),
		Freezes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: encoderSubsystem,
			Name:      "dictionary_freezes_total",
			Help:      "Total number of dictionaries frozen after the code space filled up.",
		}),
		CodeWidth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: encoderSubsystem,
			Name:      "code_width_bits",
			Help:      "Width in bits of the last emitted code.",
		}),
	}
}

func (m *Metrics) recordCode(c Code) {
	if m == nil {
		return
	}
	m.CodesEmitted.Inc()
	m.CodeWidth.Set(float64(c.Width))
}

func (m *Metrics) recordEntry() {
	if m == nil {
		return
	}
	m.EntriesAdded.Inc()
}

func (m *Metrics) recordReset() {
	if m == nil {
		return
	}
	m.Resets.Inc()
}

func (m *Metrics) recordFreeze() {
	if m == nil {
		return
	}
	m.Freezes.Inc()
}
