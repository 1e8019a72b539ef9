package httpclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Logger_LogsByStatus(t *testing.T) {
	scenarios := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "success at trace", status: http.StatusOK, expectedLevel: `"level":"trace"`},
		{name: "client error as warning", status: http.StatusNotFound, expectedLevel: `"level":"warn"`},
		{name: "server error as error", status: http.StatusServiceUnavailable, expectedLevel: `"level":"error"`},
	}

	for _, ts := range scenarios {
		t.Run(ts.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(ts.status)
			}))
			defer server.Close()

			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
			req, err := http.NewRequestWithContext(logger.WithContext(context.Background()), http.MethodGet, server.URL+"/api/v1/user/teams", nil)
			require.NoError(t, err)

			resp, err := Logger(WithTarget("gitea"))(http.DefaultTransport).RoundTrip(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Contains(t, buf.String(), ts.expectedLevel)
			assert.Contains(t, buf.String(), `"target":"gitea"`)
			assert.Contains(t, buf.String(), `"path":"/api/v1/user/teams"`)
		})
	}
}

func Test_Logger_LogsTransportErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	req, err := http.NewRequestWithContext(logger.WithContext(context.Background()), http.MethodGet, "http://unreachable.invalid/", nil)
	require.NoError(t, err)

	failing := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	_, err = Logger()(failing).RoundTrip(req)

	assert.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "connection refused")
}
