package httpclient

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RoundTripperFunc implements http.RoundTripper for convenient usage.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip satisfies http.RoundTripper and calls fn.
func (fn RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return fn(req)
}

// WithFunc adds fields to the outbound request log event
type WithFunc func(e *zerolog.Event)

// WithTarget names the remote service in the log event
func WithTarget(target string) WithFunc {
	return func(e *zerolog.Event) { e.Str("target", target) }
}

// Logger logs each outbound request with the logger of the request context.
// Failures and 5xx responses log as errors, 4xx as warnings, the rest at trace.
func Logger(fns ...WithFunc) func(t http.RoundTripper) http.RoundTripper {
	return func(t http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			logger := log.Ctx(r.Context())

			resp, err := t.RoundTrip(r)

			var ev *zerolog.Event
			var msg string
			switch {
			case err != nil:
				ev, msg = logger.Error().Err(err), "request failed"
			case resp.StatusCode >= 500:
				ev, msg = logger.Error(), http.StatusText(resp.StatusCode)
			case resp.StatusCode >= 400:
				ev, msg = logger.Warn(), http.StatusText(resp.StatusCode)
			default:
				ev, msg = logger.Trace(), http.StatusText(resp.StatusCode)
			}

			for _, fn := range fns {
				ev.Func(fn)
			}
			ev.
				Str("method", r.Method).
				Str("host", r.URL.Host).
				Str("path", r.URL.Path).
				Int64("elapsed_ms", time.Since(start).Milliseconds()).
				Msg(msg)
			return resp, err
		})
	}
}
