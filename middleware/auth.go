package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/token"
)

// ContextKey is a custom type to avoid context key collisions.
type ContextKey string

// ClaimsKey is the key under which the decoded claims mapping is stored in
// the request context.
const ClaimsKey ContextKey = "claims"

// Auth returns a middleware that checks for a valid Bearer token in the
// request header and adds the decoded claims to the request context.
func Auth(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Println("Authorization header missing")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			// The header is in the format "Bearer <token>".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Println("Invalid Authorization header format")
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				log.Printf("Token verification failed: %v", err)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
