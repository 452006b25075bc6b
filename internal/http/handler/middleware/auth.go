package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// AuthTokenHeader carries the bearer token issued to the account holder.
const AuthTokenHeader = "AUTH_TOKEN"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate rejects requests without a valid token and stores the token subject in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestID(r.Context())

		token := r.Header.Get(AuthTokenHeader)
		if token == "" {
			unauthorized(w, "AUTH_TOKEN header is required")
			m.logs.Errorw("missing AUTH_TOKEN header", "path", r.URL.Path, "request_id", requestId)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			unauthorized(w, "token is not valid")
			m.logs.Errorw("token validation failed", "error", err, "path", r.URL.Path, "request_id", requestId)
			return
		}

		subject, _ := claims["sub"].(string)
		if subject == "" {
			unauthorized(w, "token has no subject")
			m.logs.Errorw("token without subject", "path", r.URL.Path, "request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, reason string) {
	writeError(w, http.StatusUnauthorized, "Authentication failed", reason)
}

func writeError(w http.ResponseWriter, code int, message, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": message,
		"error":   reason,
	})
}
