// Package auth verifies bearer tokens issued by a Keycloak realm.
package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string
}

// jwksURL falls back to the realm's standard OpenID Connect certs endpoint.
func (c Config) jwksURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return c.Issuer + "/protocol/openid-connect/certs"
}

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}
