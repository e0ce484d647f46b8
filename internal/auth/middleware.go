package auth

import (
	"context"
	"net/http"
	"strings"

	"portfolio/internal/apperr"
	"portfolio/internal/respond"
)

type ctxKey string

const claimsKey ctxKey = "admin_claims"

func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}

// RequireAuth admits requests carrying a valid bearer token and stores the
// claims in the request context.
func RequireAuth(jwtSvc *JWT) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				respond.Err(w, r, apperr.New(apperr.CodeUnauthorized, "missing bearer token"))
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")

			claims, err := jwtSvc.Verify(token)
			if err != nil {
				respond.Err(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on an exact role. Must run after RequireAuth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				respond.Err(w, r, apperr.New(apperr.CodeUnauthorized, "missing bearer token"))
				return
			}
			if claims.Role != role {
				respond.Err(w, r, apperr.New(apperr.CodeForbidden, "insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
