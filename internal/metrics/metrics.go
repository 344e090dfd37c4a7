// Package metrics records service use-case telemetry in a private Prometheus
// registry and writes it out in the node_exporter textfile format.
package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexanderramin/wildercal/internal/service"
)

const namespace = "wildercal"

// Metrics holds the wildercal collectors.
type Metrics struct {
	registry *prometheus.Registry

	UseCases        *prometheus.CounterVec
	UseCaseDuration *prometheus.HistogramVec

	PlacesCurated  prometheus.Counter
	PlacesRejected prometheus.Counter
	PlansBySource  *prometheus.CounterVec
	OpenWeeks      prometheus.Gauge
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		UseCases: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_cases_total",
			Help:      "Service use cases run, by name and result.",
		}, []string{"use_case", "result"}),
		UseCaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "use_case_duration_seconds",
			Help:      "Service use case latency.",
			Buckets:   []float64{.05, .25, 1, 5, 15, 30, 60, 120},
		}, []string{"use_case"}),
		PlacesCurated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "places_curated_total",
			Help:      "Places stored in curated editions.",
		}),
		PlacesRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "places_rejected_total",
			Help:      "Curated places that ended with REJECT status.",
		}),
		PlansBySource: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plans_total",
			Help:      "Weekly plans produced, by winning strategy and degraded flag.",
		}, []string{"source", "degraded"}),
		OpenWeeks: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "plan_open_weeks",
			Help:      "Weeks left without a place in the most recent plan.",
		}),
	}
}

// Registry exposes the private registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveUseCase implements service.UseCaseObserver.
func (m *Metrics) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	result := "success"
	if !event.Success {
		result = "error"
	}
	m.UseCases.WithLabelValues(event.Name, result).Inc()
	m.UseCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
	if !event.Success {
		return
	}

	switch event.Name {
	case "curate":
		m.PlacesCurated.Add(float64(intField(event.Fields, "places")))
		m.PlacesRejected.Add(float64(intField(event.Fields, "rejected")))
	case "plan":
		source, _ := event.Fields["source"].(string)
		degraded, _ := event.Fields["degraded"].(bool)
		m.PlansBySource.WithLabelValues(source, strconv.FormatBool(degraded)).Inc()
		m.OpenWeeks.Set(float64(intField(event.Fields, "empty_slots")))
	}
}

// WriteTextfile writes the current values to path, replacing it atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

func intField(fields map[string]any, key string) int {
	n, _ := fields[key].(int)
	if n < 0 {
		return 0
	}
	return n
}
