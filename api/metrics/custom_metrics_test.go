package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAddDeploymentCreated(t *testing.T) {
	before := testutil.ToFloat64(nrDeploymentsCreated.WithLabelValues("ttd", "tt02"))
	AddDeploymentCreated("ttd", "tt02")
	assert.Equal(t, before+1, testutil.ToFloat64(nrDeploymentsCreated.WithLabelValues("ttd", "tt02")))
}

func TestAddBuildRefresh(t *testing.T) {
	before := testutil.ToFloat64(nrBuildRefreshes.WithLabelValues(RefreshUpdated))
	AddBuildRefresh(RefreshUpdated)
	AddBuildRefresh(RefreshUpdated)
	assert.Equal(t, before+2, testutil.ToFloat64(nrBuildRefreshes.WithLabelValues(RefreshUpdated)))
}

func TestAddRequestDuration(t *testing.T) {
	AddRequestDuration("/designer/api/{org}/{app}/deployments", "GET", 120*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(resTimeBucket, requestDurationBucketMetric))
}
