package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "life"

// Stats for performance monitoring. Every update is mirrored into Prometheus collectors.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	generations  prometheus.Counter
	population   prometheus.Gauge
	stepDuration prometheus.Histogram
}

// NewStats creates stats whose collectors are registered with reg. A nil reg skips registration.
func NewStats(reg prometheus.Registerer) *Stats {
	s := &Stats{
		StartTime: time.Now(),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Number of generations computed.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "population",
			Help:      "Living cells in the current generation.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "step_duration_seconds",
			Help:      "Time spent computing one generation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(s.generations, s.population, s.stepDuration)
	}
	return s
}

// Update records a computed generation
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	if generation > s.TotalGenerations {
		s.generations.Add(float64(generation - s.TotalGenerations))
	}
	s.TotalGenerations = generation
	s.population.Set(float64(population))
	s.stepDuration.Observe(duration.Seconds())

	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
