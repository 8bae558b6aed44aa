package hyperml

import (
	"errors"

	"github.com/itsatony/go-cuserr"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts builder activity. A nil *Metrics records nothing, so
// builders without WithMetrics pay no cost.
type Metrics struct {
	started *prometheus.CounterVec
	closed  *prometheus.CounterVec
	bytes   *prometheus.CounterVec
	errors  *prometheus.CounterVec
}

// NewMetrics creates the builder collectors and registers them with reg.
// Collectors already registered by an earlier call are reused, so several
// builders can share one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricElementsStarted,
			Help:      MetricHelpStarted,
		}, []string{MetricLabelFlavor}),
		closed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricElementsClosed,
			Help:      MetricHelpClosed,
		}, []string{MetricLabelFlavor}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricBytesWritten,
			Help:      MetricHelpBytesWritten,
		}, []string{MetricLabelFlavor}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Name:      MetricErrors,
			Help:      MetricHelpErrors,
		}, []string{MetricLabelFlavor, MetricLabelCode}),
	}

	var err error
	if m.started, err = register(reg, m.started); err != nil {
		return nil, err
	}
	if m.closed, err = register(reg, m.closed); err != nil {
		return nil, err
	}
	if m.bytes, err = register(reg, m.bytes); err != nil {
		return nil, err
	}
	if m.errors, err = register(reg, m.errors); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, cuserr.WrapStdError(err, ErrCodeMetrics, ErrMsgMetricsRegister)
	}
	return c, nil
}

func (m *Metrics) elementStarted(f Flavor) {
	if m == nil {
		return
	}
	m.started.WithLabelValues(f.Name()).Inc()
}

func (m *Metrics) elementClosed(f Flavor) {
	if m == nil {
		return
	}
	m.closed.WithLabelValues(f.Name()).Inc()
}

func (m *Metrics) bytesWritten(f Flavor, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.bytes.WithLabelValues(f.Name()).Add(float64(n))
}

func (m *Metrics) errorRecorded(f Flavor, err error) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(f.Name(), errorCode(err)).Inc()
}
