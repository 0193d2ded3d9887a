// internal/auth/middleware.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey struct{}

var claimsKey contextKey

// ClaimsFromContext returns the verified identity for the request, or
// nil when the route was not behind Middleware.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// Middleware rejects requests without a valid bearer token and puts the
// verified claims on the request context. Verified tokens are cached
// until their expiry.
func Middleware(verifier Verifier, tokens *TokenCache, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := tokens.Get(token)
			if claims == nil {
				var err error
				claims, err = verifier.Verify(r.Context(), token)
				if err != nil {
					if logger != nil {
						logger.Warn("token verification failed", zap.Error(err))
					}
					http.Error(w, "invalid token", http.StatusUnauthorized)
					return
				}
				tokens.Put(token, claims)
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
