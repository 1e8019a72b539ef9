package auth

import (
	"context"
	"net/http"

	"github.com/altinn/designer-api/api/utils"
	token "github.com/altinn/designer-api/api/utils/token"
	"github.com/rs/zerolog/log"
	"github.com/urfave/negroni/v3"
)

type ctxUserKey struct{}

func NewAuthenticationMiddleware(validator token.ValidatorInterface) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		ctx := r.Context()
		logger := log.Ctx(ctx)
		if r.Header.Get("authorization") == "" {
			next(w, r)
			return
		}

		bearerToken, err := utils.GetBearerTokenFromHeader(r)
		if err != nil {
			logger.Warn().Err(err).Msg("authentication error")
			utils.ErrorResponse(w, r, err)
			return
		}
		principal, err := validator.ValidateToken(ctx, bearerToken)
		if err != nil {
			logger.Warn().Err(err).Msg("authentication error")
			utils.ErrorResponse(w, r, err)
			return
		}

		ctx = WithTokenPrincipal(ctx, principal)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

// WithTokenPrincipal attaches the principal of the caller to the context
func WithTokenPrincipal(ctx context.Context, principal token.TokenPrincipal) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, principal)
}

func CtxTokenPrincipal(ctx context.Context) token.TokenPrincipal {
	val, ok := ctx.Value(ctxUserKey{}).(token.TokenPrincipal)

	if !ok {
		return token.NewAnonymousPrincipal()
	}

	return val
}

func NewZerologAuthenticationDetailsMiddleware() negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		ctx := r.Context()
		user := CtxTokenPrincipal(ctx)

		logContext := log.Ctx(ctx).With()
		if user.IsAuthenticated() {
			logContext = logContext.Str("user", user.Name())
		} else {
			logContext = logContext.Bool("anonymous", true)
		}
		ctx = logContext.Logger().WithContext(ctx)

		r = r.WithContext(ctx)
		next(w, r)
	}
}

func NewAuthorizeRequiredMiddleware() negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		logger := log.Ctx(r.Context())
		user := CtxTokenPrincipal(r.Context())

		if !user.IsAuthenticated() {
			logger.Warn().Msg("authorization error")
			utils.ErrorResponse(w, r, utils.ForbiddenError("Authorization is required"))
			return
		}

		next(w, r)
	}
}
