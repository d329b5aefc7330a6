package httpapi

import (
	"net/http"
	"strings"

	"biccshop.org/internal/auth"
	"biccshop.org/internal/obs"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

// Paths reachable without a token even though they sit under a gated role
// prefix, plus the unauthenticated entry points.
var publicPaths = []string{
	"/admin/login",
	"/seller/login",
	"/customer/login",
	"/admin/signup",
	"/seller/signup",
	"/customer/signup",
	"/customer/contact",
	"/seller/check-email",
	"/api/complaints/admin/notify",
	"/check-email",
	"/healthz",
	"/readyz",
	"/metrics",
}

var publicPrefixes = []string{
	"/reports/",
}

// Role prefixes and the role each requires. Anything outside these prefixes
// is open to any caller, authenticated or not.
var gatedPrefixes = map[string]string{
	"/admin/":    "admin",
	"/seller/":   "seller",
	"/customer/": "customer",
}

// withAuth binds a bearer identity to the request when a valid token is
// present, then enforces the role-prefix policy. A malformed or expired
// token does not fail the request by itself; the caller simply stays
// anonymous and is turned away at the first gated prefix.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		if token := extractBearerToken(r.Header.Get(authHeader)); token != "" {
			claims, err := a.tokens.Validate(token)
			if err != nil {
				obs.Log(map[string]any{
					"level":      "warn",
					"msg":        "token rejected",
					"request_id": RequestIDFromContext(ctx),
					"error":      err.Error(),
				})
			} else {
				ctx = auth.ContextWithIdentity(ctx, auth.Identity{
					Subject: claims.Subject,
					Role:    claims.Role,
				})
				ctx = auth.ContextWithToken(ctx, token)
			}
		}
		r = r.WithContext(ctx)

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		for prefix, role := range gatedPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				if !auth.HasRole(ctx, role) {
					writeError(w, r, http.StatusForbidden, "access denied")
					return
				}
				break
			}
		}

		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return ""
	}
	return strings.TrimSpace(header[len(bearer):])
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
