package token

import (
	"context"
	"net/url"
	"time"

	"github.com/altinn/designer-api/api/utils"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type TokenPrincipal interface {
	IsAuthenticated() bool
	Token() string
	Id() string
	Name() string
}

type ValidatorInterface interface {
	// ValidateToken will return a TokenPrincipal object if token payload and signature is validated agains issuer. It will return nil principal and a error if it fails.
	ValidateToken(context.Context, string) (TokenPrincipal, error)
}

type Validator struct {
	validator *validator.Validator
}

var _ ValidatorInterface = &Validator{}

func NewValidator(issuerUrl url.URL, audience string) (*Validator, error) {
	provider := jwks.NewCachingProvider(&issuerUrl, 5*time.Hour)

	validator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerUrl.String(),
		[]string{audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &oidcClaims{}
		}),
	)
	if err != nil {
		return nil, err
	}

	return &Validator{validator: validator}, nil
}

func (v *Validator) ValidateToken(ctx context.Context, token string) (TokenPrincipal, error) {
	validateToken, err := v.validator.ValidateToken(ctx, token)
	if err != nil {
		return nil, utils.ForbiddenError("invalid token")
	}

	claims, ok := validateToken.(*validator.ValidatedClaims)
	if !ok {
		return nil, utils.ForbiddenError("invalid token")
	}

	customClaims, ok := claims.CustomClaims.(*oidcClaims)
	if !ok || customClaims == nil {
		return nil, utils.ForbiddenError("invalid token claims")
	}

	principal := &oidcPrincipal{token: token, claims: claims.RegisteredClaims, oidcClaims: *customClaims}
	return principal, nil
}
