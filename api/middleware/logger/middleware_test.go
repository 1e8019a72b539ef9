package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/negroni/v3"
)

func TestRequestLoggingMiddlewares(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	n := negroni.New(
		negroni.HandlerFunc(func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
			next(w, r.WithContext(base.WithContext(r.Context())))
		}),
		NewZerologRequestIdMiddleware(),
		NewZerologRequestDetailsMiddleware(),
		NewZerologResponseLoggerMiddleware(),
	)
	n.UseHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/designer/api/ttd/app1/deployments?top=2", nil)
	req.Header.Set("X-Request-Id", "req-1")
	rr := httptest.NewRecorder()
	n.ServeHTTP(rr, req)

	assert.Equal(t, "req-1", rr.Header().Get("X-Request-Id"))
	logged := buf.String()
	assert.Contains(t, logged, `"level":"warn"`)
	assert.Contains(t, logged, `"request_id":"req-1"`)
	assert.Contains(t, logged, `"path":"/designer/api/ttd/app1/deployments"`)
	assert.Contains(t, logged, `"query":"top=2"`)
	assert.Contains(t, logged, `"status":404`)
}
