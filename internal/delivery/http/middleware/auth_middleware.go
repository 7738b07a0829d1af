package middleware

import (
	"strings"

	domainerrors "liftlog/internal/domain/errors"
	"liftlog/internal/domain/repository"
	"liftlog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeyUserID is the echo.Context key carrying the authenticated user's id.
	KeyUserID = "userID"

	// KeyCurrentUser is the echo.Context key carrying the authenticated user.
	KeyCurrentUser = "currentUser"
)

// AuthMiddleware validates bearer tokens and resolves the requesting user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and loads the current user. Any
// failure, including a token whose user no longer exists, is a 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("token validation failed")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated.WrapMessage("token subject no longer exists")
			}

			return errors.Wrap(err, "failed to load token subject")
		}

		c.Set(KeyUserID, user.ID)
		c.Set(KeyCurrentUser, user)

		return next(c)
	}
}
