package kuberneteswrapper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	environmentModels "github.com/altinn/designer-api/api/environments/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_GetDeploymentsInEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, deploymentsPath, r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"release":"ttd-app1","version":"1.0.0","status":"completed","statusDate":"2024-05-01T12:00:00Z"},
			{"release":"ttd-app2","version":"2.0.0"}
		]`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	deployments, err := client.GetDeploymentsInEnv(context.Background(), "ttd", environmentModels.EnvironmentModel{Name: "tt02", Hostname: "tt02.altinn.no"})
	require.NoError(t, err)
	require.Len(t, deployments, 2)

	assert.Equal(t, "ttd-app1", deployments[0].Release)
	assert.Equal(t, "1.0.0", deployments[0].Version)
	assert.Equal(t, deploymentModels.KubernetesDeploymentStatusCompleted, deployments[0].Status)
	assert.Equal(t, "tt02", deployments[0].EnvName)
	assert.Equal(t, "tt02", deployments[1].EnvName)
}

func TestHTTPClient_GetDeploymentsInEnv_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	_, err := client.GetDeploymentsInEnv(context.Background(), "ttd", environmentModels.EnvironmentModel{Name: "tt02"})
	assert.ErrorContains(t, err, "unexpected status 503")
}

func TestHTTPClient_baseURL(t *testing.T) {
	env := environmentModels.EnvironmentModel{Name: "tt02", Hostname: "tt02.altinn.no", AppPrefix: "apps"}

	assert.Equal(t, "https://ttd.apps.tt02.altinn.no", (&httpClient{}).baseURL("ttd", env))
	assert.Equal(t, "https://ttd.apps.tt02.altinn.no", (&httpClient{}).baseURL("ttd", environmentModels.EnvironmentModel{Hostname: "tt02.altinn.no"}))
	assert.Equal(t, "http://localhost:8020", (&httpClient{baseURLOverride: "http://localhost:8020"}).baseURL("ttd", env))
}
