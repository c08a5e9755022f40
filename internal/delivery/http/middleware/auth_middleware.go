package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pharma-info-service/internal/domain/entity"
	"pharma-info-service/internal/domain/repository"
	"pharma-info-service/pkg/jwt"
	"pharma-info-service/pkg/response"
)

type contextKey string

const userKey contextKey = "auth_user"

var (
	errMissingHeader   = errors.New("authorization header is missing")
	errMalformedHeader = errors.New("invalid authorization header format")
	errUnknownUser     = errors.New("token user no longer exists")
)

// AuthMiddleware resolves bearer tokens to users. Require and Optional share
// one resolution routine and differ only in failure policy.
type AuthMiddleware struct {
	jwtService *jwt.JWTService
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// Require rejects the request with 401 unless a valid bearer token resolves
// to an existing user.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolve(r)
		if err != nil {
			response.Unauthorized(w, "Authorization failed")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// Optional attaches the resolved user when the token is present and valid,
// and continues without identity on any failure. It never rejects.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolve(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (*entity.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errMalformedHeader
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.FindByID(r.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUnknownUser
	}
	return user, nil
}

func withUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext extracts the resolved user from the request context.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey).(*entity.User)
	return user, ok
}
