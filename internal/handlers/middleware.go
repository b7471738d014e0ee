package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ayanroy004/Leet-lab/internal/config"
)

type contextKey string

const userIDKey contextKey = "userId"

// MiddlewareProvider holds the verification material for inbound bearer
// tokens. Authentication itself (registration, login, sessions) lives
// outside this service; the middleware only extracts the authenticated
// user id the handlers need.
type MiddlewareProvider struct {
	cfg *config.JwtConfig
}

func NewMiddlewareProvider(cfg *config.JwtConfig) *MiddlewareProvider {
	return &MiddlewareProvider{
		cfg: cfg,
	}
}

func (m *MiddlewareProvider) secret() []byte {
	return []byte(m.cfg.Secret)
}

// JWTMiddleware verifies the bearer token and stores the subject claim in
// the request context as the user id.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return m.secret(), nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		userID, err := claims.GetSubject()
		if err != nil || userID == "" {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id placed by
// JWTMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
