package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"stations-server/internal/auth"
	"stations-server/internal/domain"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
)

type contextKey string

const UserContextKey contextKey = "user"

func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "jwt",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		logger.Debug("Processing JWT authentication")

		cookie, err := r.Cookie("auth_token")
		if err != nil {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		claims, err := auth.ValidateJWT(cookie.Value)
		if err != nil {
			response.Error(w, r, logger, errors.Unauthorized("invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		logger.Debug("JWT authentication successful",
			"user_id", claims.UserID,
			"username", claims.Username,
			"staff", claims.Staff)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to get user from context
func GetUserFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(UserContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

// ActorFromContext converts the authenticated claims into the actor
// the services check permissions against.
func ActorFromContext(r *http.Request) domain.Actor {
	claims := GetUserFromContext(r)
	if claims == nil {
		return domain.Actor{}
	}
	return domain.Actor{UserID: claims.UserID, Staff: claims.Staff}
}
