package middleware

import (
	"net/http"
	"strings"

	"cinix-booking/pkg/utils"
)

const UserIDHeader = "X-User-ID"

// Identity copies the caller's identity and credentials into the request
// context. Nothing is verified here; the front-end's auth layer owns that.
// The bearer token and cookies are forwarded on backend calls.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := strings.TrimSpace(r.Header.Get(UserIDHeader)); userID != "" {
				ctx = utils.SetUserContext(ctx, userID)
			}

			if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && token != "" {
				ctx = utils.SetTokenContext(ctx, strings.TrimSpace(token))
			}

			if cookie := r.Header.Get("Cookie"); cookie != "" {
				ctx = utils.SetCookieContext(ctx, cookie)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests without an X-User-ID.
func RequireUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
