package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"liftlog/internal/domain/entity"
	domainerrors "liftlog/internal/domain/errors"
	"liftlog/internal/domain/repository"
	"liftlog/internal/domain/service"
	"liftlog/internal/errors"
	mockrepo "liftlog/internal/mocks/repository"
	mocksvc "liftlog/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeAuth(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }

	return c, m.Authenticate(next)(c)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("loads the user for a valid token", func(t *testing.T) {
		tokenSvc := mocksvc.NewMockTokenService(t)
		userRepo := mockrepo.NewMockUserRepository(t)

		tokenSvc.On("ValidateToken", "good-token").Return(&service.Claims{UserID: 7}, nil)
		userRepo.On("FindByID", mock.Anything, int64(7)).
			Return(&entity.User{ID: 7, Username: "anna"}, nil)

		m := NewAuthMiddleware(tokenSvc, userRepo)
		c, err := invokeAuth(t, m, "Bearer good-token")
		require.NoError(t, err)

		assert.Equal(t, int64(7), c.Get(KeyUserID))
		user, ok := c.Get(KeyCurrentUser).(*entity.User)
		require.True(t, ok)
		assert.Equal(t, "anna", user.Username)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		m := NewAuthMiddleware(mocksvc.NewMockTokenService(t), mockrepo.NewMockUserRepository(t))

		_, err := invokeAuth(t, m, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		m := NewAuthMiddleware(mocksvc.NewMockTokenService(t), mockrepo.NewMockUserRepository(t))

		_, err := invokeAuth(t, m, "Basic dXNlcjpwYXNz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("rejects an invalid or expired token", func(t *testing.T) {
		tokenSvc := mocksvc.NewMockTokenService(t)
		tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("token is expired"))

		m := NewAuthMiddleware(tokenSvc, mockrepo.NewMockUserRepository(t))

		_, err := invokeAuth(t, m, "Bearer bad-token")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("rejects a token whose user no longer exists", func(t *testing.T) {
		tokenSvc := mocksvc.NewMockTokenService(t)
		userRepo := mockrepo.NewMockUserRepository(t)

		tokenSvc.On("ValidateToken", "orphan-token").Return(&service.Claims{UserID: 404}, nil)
		userRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, repository.ErrUserNotFound)

		m := NewAuthMiddleware(tokenSvc, userRepo)

		_, err := invokeAuth(t, m, "Bearer orphan-token")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
