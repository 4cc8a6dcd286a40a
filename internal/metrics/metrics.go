// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the quiz API. Each
// [Metrics] owns its registry, so several application instances (tests, a
// warm serverless container) never collide on registration.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quiz_api"

// Metrics groups the application collectors and their registry.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	dbConnectAttempts *prometheus.CounterVec
	dbUp              prometheus.Gauge
	corsRejected      prometheus.Counter
	panicsRecovered   prometheus.Counter
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		dbConnectAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_connect_attempts_total",
				Help:      "Database connect attempts by result",
			},
			[]string{"driver", "result"},
		),
		dbUp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "db_up",
				Help:      "1 when the last database check succeeded",
			},
		),
		corsRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cors_rejected_total",
				Help:      "Requests rejected by the CORS allow-list",
			},
		),
		panicsRecovered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panics_recovered_total",
				Help:      "Handler panics turned into 500 responses",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.dbConnectAttempts,
		m.dbUp,
		m.corsRejected,
		m.panicsRecovered,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest counts one finished HTTP request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveConnectAttempt counts a database dial.
func (m *Metrics) ObserveConnectAttempt(driver string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.dbConnectAttempts.WithLabelValues(driver, result).Inc()
}

// SetDatabaseUp records the outcome of the last database check.
func (m *Metrics) SetDatabaseUp(up bool) {
	if up {
		m.dbUp.Set(1)
		return
	}
	m.dbUp.Set(0)
}

// CORSRejected counts a request refused by the origin allow-list.
func (m *Metrics) CORSRejected() {
	m.corsRejected.Inc()
}

// PanicRecovered counts a recovered handler panic.
func (m *Metrics) PanicRecovered() {
	m.panicsRecovered.Inc()
}
