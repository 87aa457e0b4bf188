package metrics

import (
	"log"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GalleryTotalRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gallery_service_requests_total",
	Help: "Total number of requests to Gallery-Service",
})
var GalleryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "gallery_service_duration_seconds",
	Help:    "Histogram for the request duration in seconds in Gallery-Service",
	Buckets: []float64{0.1, 0.5, 1, 2, 5},
}, []string{"handler"})
var GalleryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gallery_service_errors_total",
	Help: "Total number of errors encountered by Gallery-Service",
}, []string{"error_type"})
var GalleryTotalSuccessfulRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "gallery_service_successful_requests_total",
	Help: "Total number of successful requests to Gallery-Service",
})
var GalleryTierFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gallery_service_tier_fallbacks_total",
	Help: "Total number of blob reads that fell back to the canonical tier",
}, []string{"tier"})
var GalleryRateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gallery_service_rate_limit_exceeded_total",
	Help: "Total number of requests that exceeded the rate limit",
}, []string{"path"})
var GalleryMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "gallery_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})
var stop = make(chan struct{})

func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				GalleryMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}

func Stop() {
	close(stop)
	log.Println("[INFO] [Gallery-Service] Successful close Metrics-Goroutine")
}
