package auth

import "context"

// Principal is the verified identity behind a bearer token.
type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}
