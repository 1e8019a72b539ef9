package token

import (
	"context"

	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type oidcClaims struct {
	PreferredUsername string `json:"preferred_username,omitempty"`
	Name              string `json:"name,omitempty"`
	Email             string `json:"email,omitempty"`
}

func (c *oidcClaims) Validate(_ context.Context) error {
	return nil
}

type oidcPrincipal struct {
	token      string
	claims     validator.RegisteredClaims
	oidcClaims oidcClaims
}

func (p *oidcPrincipal) Token() string {
	return p.token
}
func (p *oidcPrincipal) IsAuthenticated() bool {
	return true
}
func (p *oidcPrincipal) Id() string { return p.claims.Subject }

func (p *oidcPrincipal) Name() string {
	if p.oidcClaims.PreferredUsername != "" {
		return p.oidcClaims.PreferredUsername
	}

	if p.oidcClaims.Name != "" {
		return p.oidcClaims.Name
	}

	if p.oidcClaims.Email != "" {
		return p.oidcClaims.Email
	}

	return p.claims.Subject
}

type anonymousPrincipal struct{}

// NewAnonymousPrincipal a principal for requests without a token
func NewAnonymousPrincipal() TokenPrincipal {
	return &anonymousPrincipal{}
}

func (p *anonymousPrincipal) Token() string         { return "" }
func (p *anonymousPrincipal) Id() string            { return "anonymous" }
func (p *anonymousPrincipal) Name() string          { return "anonymous" }
func (p *anonymousPrincipal) IsAuthenticated() bool { return false }
