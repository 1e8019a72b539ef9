package azuredevops

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deploymentModels "github.com/altinn/designer-api/api/deployments/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) BuildClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", "pat", server.Client(), server.Client())
}

func TestQueueBuild(t *testing.T) {
	var received queueBuildRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/_apis/build/builds", r.URL.Path)
		assert.Equal(t, apiVersion, r.URL.Query().Get("api-version"))
		_, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "pat", password)

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"status":"notStarted","queueTime":"2024-05-01T12:00:00.123Z"}`))
	})

	build, err := client.QueueBuild(context.Background(), QueueBuildParameters{
		AppOwner:       "ttd",
		AppRepo:        "app1",
		AppEnvironment: "tt02",
		AppCommitID:    "abc123",
		Hostname:       "tt02.altinn.no",
		TagName:        "1.0.0",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, 42, build.ID)
	assert.Equal(t, deploymentModels.BuildStatusNotStarted, build.Status)
	assert.Equal(t, 7, received.Definition.ID)

	var parameters map[string]string
	require.NoError(t, json.Unmarshal([]byte(received.Parameters), &parameters))
	assert.Equal(t, "ttd", parameters["APP_OWNER"])
	assert.Equal(t, "app1", parameters["APP_REPO"])
	assert.Equal(t, "tt02", parameters["APP_ENVIRONMENT"])
	assert.Equal(t, "abc123", parameters["APP_COMMIT_ID"])
	assert.Equal(t, "tt02.altinn.no", parameters["HOSTNAME"])
	assert.Equal(t, "1.0.0", parameters["TAGNAME"])
	assert.NotContains(t, parameters, "APP_DEPLOY_TOKEN")
}

func TestGetBuild(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/_apis/build/builds/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"status":"completed","result":"succeeded","startTime":"2024-05-01T12:00:00Z","finishTime":"2024-05-01T12:04:00Z"}`))
	})

	build, err := client.GetBuild(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "42", build.ID)
	assert.Equal(t, deploymentModels.BuildStatusCompleted, build.Status)
	assert.Equal(t, deploymentModels.BuildResultSucceeded, build.Result)
	require.NotNil(t, build.Started)
	require.NotNil(t, build.Finished)
	assert.Equal(t, 4*time.Minute, build.Finished.Sub(*build.Started))
}

func TestGetBuild_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetBuild(context.Background(), "1")
		assert.ErrorIs(t, err, ErrBuildNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("bad token"))
		})
		_, err := client.GetBuild(context.Background(), "1")
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Equal(t, "bad token", statusErr.Body)
	})
}
