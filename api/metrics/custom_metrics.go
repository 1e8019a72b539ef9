package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	deploymentsCreatedMetric    = "designer_deployments_created_total"
	buildRefreshesMetric        = "designer_build_refreshes_total"
	requestDurationMetric       = "designer_request_duration_seconds"
	requestDurationBucketMetric = "designer_request_duration_seconds_hist"

	orgLabel         = "org"
	environmentLabel = "environment"
	resultLabel      = "result"
	pathLabel        = "path"
	methodLabel      = "method"
)

// Outcomes of a build refresh
const (
	RefreshUpdated   = "updated"
	RefreshUnchanged = "unchanged"
	RefreshSkipped   = "skipped"
	RefreshDropped   = "dropped"
	RefreshFailed    = "failed"
)

var (
	nrDeploymentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: deploymentsCreatedMetric,
			Help: "The total number of deployments created",
		}, []string{orgLabel, environmentLabel})
	nrBuildRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: buildRefreshesMetric,
			Help: "The total number of lagging build refreshes by outcome",
		}, []string{resultLabel})
	resTime = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       requestDurationMetric,
			Help:       "Request duration seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{pathLabel, methodLabel},
	)
	resTimeBucket = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    requestDurationBucketMetric,
			Help:    "Request duration seconds bucket",
			Buckets: DefaultBuckets(),
		},
		[]string{pathLabel, methodLabel},
	)
)

func init() {
	prometheus.MustRegister(resTime)
	prometheus.MustRegister(resTimeBucket)
}

func DefaultBuckets() []float64 {
	return []float64{0.03, 0.1, 0.3, 1, 2, 3, 5, 10}
}

// AddDeploymentCreated New deployment queued for an environment
func AddDeploymentCreated(org, envName string) {
	nrDeploymentsCreated.With(prometheus.Labels{orgLabel: org, environmentLabel: envName}).Inc()
}

// AddBuildRefresh counts the outcome of a lagging build refresh
func AddBuildRefresh(result string) {
	nrBuildRefreshes.With(prometheus.Labels{resultLabel: result}).Inc()
}

// AddRequestDuration Add request duration for given endpoint
func AddRequestDuration(path, method string, duration time.Duration) {
	resTime.WithLabelValues(path, method).Observe(duration.Seconds())
	resTimeBucket.WithLabelValues(path, method).Observe(duration.Seconds())
}
