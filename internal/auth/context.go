package auth

import (
	"context"
	"strings"
)

// Identity is the authenticated subject bound to a request.
type Identity struct {
	Subject string // account e-mail
	Role    string
}

type identityContextKey struct{}
type tokenContextKey struct{}

// ContextWithIdentity attaches the authenticated identity to the context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	id.Subject = strings.TrimSpace(id.Subject)
	id.Role = strings.ToLower(strings.TrimSpace(id.Role))
	return context.WithValue(ctx, identityContextKey{}, &id)
}

// IdentityFromContext extracts the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	v, ok := ctx.Value(identityContextKey{}).(*Identity)
	if !ok || v == nil || v.Subject == "" {
		return Identity{}, false
	}
	return *v, true
}

// HasRole reports whether the context carries an identity with the role.
func HasRole(ctx context.Context, role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return false
	}
	id, ok := IdentityFromContext(ctx)
	return ok && id.Role == role
}

// ContextWithToken stores the raw bearer token inside the context.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token if previously attached.
func TokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(tokenContextKey{}).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
