package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	ResourceWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resource_writes_total",
			Help: "Total successful resource mutations",
		},
		[]string{"action"}, // create|update|delete
	)

	UploadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Total stored upload files",
		},
	)

	OCRRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ocr_proxy_requests_total",
			Help: "Total OCR proxy requests by outcome",
		},
		[]string{"outcome"}, // ok|unavailable|error
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ResourceWritesTotal)
	prometheus.MustRegister(UploadsTotal)
	prometheus.MustRegister(OCRRequestsTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
