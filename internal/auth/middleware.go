package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/osse101/StrideShop_Go/internal/logger"
)

type contextKey string

const (
	userIDKey   contextKey = "auth_user_id"
	usernameKey contextKey = "auth_username"
)

// WithUserID returns a context carrying the authenticated user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, or "" when unauthenticated
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}

// UsernameFromContext returns the username claim, if the token carried one
func UsernameFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(usernameKey).(string); ok {
		return name
	}
	return ""
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject as the user id.
func Middleware(v *TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tokenStr, err := bearerToken(r)
			if err != nil {
				log.Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				writeUnauthorized(w)
				return
			}

			claims, err := v.Validate(tokenStr)
			if err != nil {
				log.Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				writeUnauthorized(w)
				return
			}

			ctx := WithUserID(r.Context(), claims.Subject)
			if claims.Username != "" {
				ctx = context.WithValue(ctx, usernameKey, claims.Username)
			}
			log.Debug(LogMsgAuthenticated, "user_id", claims.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(HeaderAuthorization)
	if header == "" {
		return "", errors.New(ErrMsgMissingHeader)
	}
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", errors.New(ErrMsgMalformedHeader)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	if token == "" {
		return "", errors.New(ErrMsgMissingHeader)
	}
	return token, nil
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="strideshop"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
}
