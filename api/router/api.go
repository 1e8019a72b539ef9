package router

import (
	"context"
	"net/http"
	"time"

	"github.com/altinn/designer-api/api/metrics"
	"github.com/altinn/designer-api/api/middleware/auth"
	"github.com/altinn/designer-api/api/middleware/cors"
	"github.com/altinn/designer-api/api/middleware/logger"
	"github.com/altinn/designer-api/api/middleware/recovery"
	"github.com/altinn/designer-api/api/utils/token"
	"github.com/altinn/designer-api/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/urfave/negroni/v3"
)

const (
	apiRoute    = "/designer/api"
	healthRoute = "/health/"
)

// HealthCheckFunc reports whether the service can serve requests
type HealthCheckFunc func(ctx context.Context) error

// NewAPIHandler Constructor function
func NewAPIHandler(validator token.ValidatorInterface, allowedOrigins []string, healthCheck HealthCheckFunc, controllers ...models.Controller) http.Handler {
	serveMux := http.NewServeMux()
	serveMux.Handle(healthRoute, createHealthHandler(healthCheck))
	serveMux.Handle(apiRoute+"/", createApiRouter(controllers))

	n := negroni.New(
		recovery.NewMiddleware(),
		cors.NewMiddleware(allowedOrigins),
		logger.NewZerologRequestIdMiddleware(),
		logger.NewZerologRequestDetailsMiddleware(),
		auth.NewAuthenticationMiddleware(validator),
		auth.NewZerologAuthenticationDetailsMiddleware(),
		logger.NewZerologResponseLoggerMiddleware(),
	)
	n.UseHandler(serveMux)

	return n
}

func createApiRouter(controllers []models.Controller) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	for _, controller := range controllers {
		for _, route := range controller.GetRoutes() {
			path := apiRoute + route.Path

			n := negroni.New(newRequestDurationMiddleware(path, route.Method))
			if !route.AllowUnauthenticatedUsers {
				n.Use(auth.NewAuthorizeRequiredMiddleware())
			}
			n.UseHandlerFunc(route.HandlerFunc)
			router.Handle(path, n).Methods(route.Method)
		}
	}
	return router
}

// newRequestDurationMiddleware observes the duration of a route by its path template
func newRequestDurationMiddleware(path, method string) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := time.Now()
		defer func() {
			metrics.AddRequestDuration(path, method, time.Since(start))
		}()

		next(w, r)
	}
}

func createHealthHandler(healthCheck HealthCheckFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if healthCheck != nil {
			if err := healthCheck(r.Context()); err != nil {
				log.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}
