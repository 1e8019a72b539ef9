package cors

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewMiddleware allows the designer frontends to call the API from the browser
func NewMiddleware(allowedOrigins []string) *cors.Cors {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		MaxAge:           600,
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization", "X-Request-Id"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		ExposedHeaders:   []string{"X-Request-Id"},
	}

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		corsOptions.Debug = true
		corsLogger := log.Logger.With().Str("pkg", "cors-middleware").Logger()
		corsOptions.Logger = &corsLogger
	}

	return cors.New(corsOptions)
}
