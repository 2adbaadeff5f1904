package observability

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DashboardCollector bundles the Prometheus metrics of the dashboard API.
type DashboardCollector struct {
	gatherer prometheus.Gatherer

	Requests        *prometheus.CounterVec
	EmptySelections prometheus.Counter
	SelectedUnits   prometheus.Histogram
	CatalogUnits    prometheus.Gauge
}

// NewDashboardCollector registers the metrics against reg, or the global registry when nil.
func NewDashboardCollector(reg prometheus.Registerer) (*DashboardCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stratdash_requests_total",
		Help: "Total number of handled dashboard requests, labeled by endpoint and HTTP status.",
	}, []string{"endpoint", "status"})
	requests, err := registerCounterVec(reg, requests, "stratdash_requests_total")
	if err != nil {
		return nil, err
	}

	empty, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stratdash_empty_selections_total",
		Help: "Number of computations whose criteria matched no business unit.",
	}), "stratdash_empty_selections_total")
	if err != nil {
		return nil, err
	}

	selected, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "stratdash_selected_units",
		Help:    "Number of business units matched by each computation.",
		Buckets: prometheus.LinearBuckets(0, 1, 11),
	}), "stratdash_selected_units")
	if err != nil {
		return nil, err
	}

	catalogUnits, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "stratdash_catalog_units",
		Help: "Number of business units in the loaded catalog.",
	}), "stratdash_catalog_units")
	if err != nil {
		return nil, err
	}

	return &DashboardCollector{
		gatherer:        gatherer,
		Requests:        requests,
		EmptySelections: empty,
		SelectedUnits:   selected,
		CatalogUnits:    catalogUnits,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *DashboardCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (c *DashboardCollector) ObserveRequest(endpoint string, status int) {
	if c == nil || c.Requests == nil {
		return
	}
	c.Requests.WithLabelValues(endpoint, fmt.Sprint(status)).Inc()
}

// ObserveSelection records how many units a computation matched.
func (c *DashboardCollector) ObserveSelection(count int) {
	if c == nil {
		return
	}
	if c.SelectedUnits != nil {
		c.SelectedUnits.Observe(float64(count))
	}
	if count == 0 && c.EmptySelections != nil {
		c.EmptySelections.Inc()
	}
}

func (c *DashboardCollector) SetCatalogUnits(count int) {
	if c == nil || c.CatalogUnits == nil {
		return
	}
	c.CatalogUnits.Set(float64(count))
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %v already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %v already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %v already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, errors.Errorf("collector %v already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
