package environments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	environmentModels "github.com/altinn/designer-api/api/environments/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// EnvironmentHandler gives access to the configured hosting environments
type EnvironmentHandler interface {
	GetEnvironments(ctx context.Context) ([]environmentModels.EnvironmentModel, error)
	GetEnvironment(ctx context.Context, envName string) (*environmentModels.EnvironmentModel, error)
	GetHostNameByEnvName(ctx context.Context, envName string) (string, error)
}

type environmentHandler struct {
	location   string
	httpClient *http.Client
	ttl        time.Duration
	now        func() time.Time

	reloads   singleflight.Group
	mu        sync.Mutex
	cached    []environmentModels.EnvironmentModel
	fetchedAt time.Time
}

// HandlerOption configures the environment handler
type HandlerOption func(*environmentHandler)

// WithHTTPClient sets the client used when the location is an URL
func WithHTTPClient(client *http.Client) HandlerOption {
	return func(h *environmentHandler) { h.httpClient = client }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) HandlerOption {
	return func(h *environmentHandler) { h.now = now }
}

// Init Constructor. location is either an http(s) URL or a path to a JSON file.
func Init(location string, ttl time.Duration, opts ...HandlerOption) EnvironmentHandler {
	h := &environmentHandler{
		location:   location,
		httpClient: http.DefaultClient,
		ttl:        ttl,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetEnvironments returns all environments, reloading them when the cache has expired.
// Concurrent reloads share one load. A failed reload falls back to the last known list.
func (h *environmentHandler) GetEnvironments(ctx context.Context) ([]environmentModels.EnvironmentModel, error) {
	h.mu.Lock()
	cached, fresh := h.cached, h.cached != nil && h.now().Sub(h.fetchedAt) < h.ttl
	h.mu.Unlock()
	if fresh {
		return cached, nil
	}

	loaded, err, _ := h.reloads.Do(h.location, func() (interface{}, error) {
		environments, err := h.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		h.cached = environments
		h.fetchedAt = h.now()
		h.mu.Unlock()
		return environments, nil
	})
	if err != nil {
		if cached != nil {
			log.Ctx(ctx).Warn().Err(err).Str("location", h.location).Msg("failed to reload environments, using cached list")
			return cached, nil
		}
		return nil, environmentModels.EnvironmentsUnavailable(err)
	}
	return loaded.([]environmentModels.EnvironmentModel), nil
}

// GetEnvironment returns the environment with the given name
func (h *environmentHandler) GetEnvironment(ctx context.Context, envName string) (*environmentModels.EnvironmentModel, error) {
	environments, err := h.GetEnvironments(ctx)
	if err != nil {
		return nil, err
	}

	for _, env := range environments {
		if strings.EqualFold(env.Name, envName) {
			return &env, nil
		}
	}
	return nil, environmentModels.NonExistingEnvironment(envName)
}

// GetHostNameByEnvName returns the hostname of the environment with the given name
func (h *environmentHandler) GetHostNameByEnvName(ctx context.Context, envName string) (string, error) {
	env, err := h.GetEnvironment(ctx, envName)
	if err != nil {
		return "", err
	}
	return env.Hostname, nil
}

func (h *environmentHandler) load(ctx context.Context) ([]environmentModels.EnvironmentModel, error) {
	var reader io.ReadCloser
	if strings.HasPrefix(h.location, "http://") || strings.HasPrefix(h.location, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.location, nil)
		if err != nil {
			return nil, err
		}
		resp, err := h.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("GET %s: unexpected status %d", h.location, resp.StatusCode)
		}
		reader = resp.Body
	} else {
		file, err := os.Open(h.location)
		if err != nil {
			return nil, err
		}
		reader = file
	}
	defer func() { _ = reader.Close() }()

	var document environmentModels.EnvironmentsDocument
	if err := json.NewDecoder(reader).Decode(&document); err != nil {
		return nil, fmt.Errorf("decode environments from %s: %w", h.location, err)
	}
	return document.Environments, nil
}
