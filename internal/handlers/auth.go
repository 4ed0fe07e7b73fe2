package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

type ctxKey int

const userIDKey ctxKey = iota

// RequireUser resolves the caller identity. Token verification is an
// upstream concern (gateway / auth service); this service trusts the
// forwarded X-User-ID header.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get("X-User-ID"))
		id, err := strconv.ParseUint(raw, 10, 64)
		if raw == "" || err != nil || id == 0 {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid user identity")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, uint(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func currentUserID(r *http.Request) uint {
	id, _ := r.Context().Value(userIDKey).(uint)
	return id
}

// RequireAdmin guards admin routes with a static bearer token. An empty
// configured token locks the admin surface entirely.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			presented := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" || presented != token {
				writeError(w, http.StatusForbidden, "forbidden", "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
