package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CheckInCreated     = "created"
	CheckInTooFar      = "too_far"
	CheckInDuplicate   = "duplicate"
	CheckInGymNotFound = "gym_not_found"
	CheckInFailed      = "failed"

	ValidationAccepted = "validated"
	ValidationLate     = "late"
	ValidationNotFound = "not_found"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_checkin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_checkin_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_checkin_check_ins_total",
			Help: "Total number of check-in attempts by result",
		},
		[]string{"result"},
	)

	CheckInDistance = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gym_checkin_check_in_distance_km",
			Help:    "Distance between user and gym on check-in attempts",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 1, 5, 25},
		},
	)

	CheckInValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_checkin_validations_total",
			Help: "Total number of check-in validations by result",
		},
		[]string{"result"},
	)

	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_checkin_users_registered_total",
			Help: "Total number of registered users",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordCheckIn(result string) {
	CheckInsTotal.WithLabelValues(result).Inc()
}

func ObserveCheckInDistance(km float64) {
	CheckInDistance.Observe(km)
}

func RecordValidation(result string) {
	CheckInValidationsTotal.WithLabelValues(result).Inc()
}

func RecordRegistration() {
	UsersRegisteredTotal.Inc()
}

// Middleware собирает метрики HTTP запросов
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
