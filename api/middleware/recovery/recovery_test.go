package recovery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/altinn/designer-api/api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/negroni/v3"
)

func TestRecovery_WritesJSONError(t *testing.T) {
	n := negroni.New(NewMiddleware())
	n.UseHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		panic("boom")
	})

	rr := httptest.NewRecorder()
	n.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var apiErr utils.Error
	require.NoError(t, apiErr.UnmarshalJSON(rr.Body.Bytes()))
	assert.Equal(t, utils.Server, apiErr.Type)
	assert.Equal(t, "Internal server error", apiErr.Message)
}

func TestRecovery_PassesThrough(t *testing.T) {
	n := negroni.New(NewMiddleware())
	n.UseHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	n.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Type"))
}
