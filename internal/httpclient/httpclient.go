package httpclient

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// NewRetrying returns an *http.Client that retries connection errors and 5xx responses.
// Only use it for idempotent requests.
func NewRetrying(retryMax int, timeout time.Duration, logger zerolog.Logger, fns ...WithFunc) *http.Client {
	client := retryablehttp.NewClient()
	client.HTTPClient.Transport = Logger(fns...)(client.HTTPClient.Transport)
	client.RetryMax = retryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.Logger = &leveledLogger{logger: logger.With().Str("pkg", "httpclient").Logger()}

	standard := client.StandardClient()
	standard.Timeout = timeout
	return standard
}

// New returns a plain client with a timeout, for requests that must not be repeated.
func New(timeout time.Duration, fns ...WithFunc) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: Logger(fns...)(http.DefaultTransport),
	}
}

type leveledLogger struct {
	logger zerolog.Logger
}

var _ retryablehttp.LeveledLogger = (*leveledLogger)(nil)

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Trace().Fields(keysAndValues).Msg(msg)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}
