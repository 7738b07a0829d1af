package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"liftlog/internal/delivery/http/middleware"
	"liftlog/internal/delivery/http/validator"
	"liftlog/internal/domain/entity"
	domainerrors "liftlog/internal/domain/errors"
	"liftlog/internal/errors"
	mockusecase "liftlog/internal/mocks/usecase"
	"liftlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns the created user without the password hash", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.On("Register", mock.Anything, &usecase.RegisterInput{
			Email:    "anna@example.com",
			Username: "anna",
			Password: "secret",
		}).Return(&usecase.RegisterOutput{
			User: &entity.User{
				ID:             7,
				Username:       "anna",
				Email:          "anna@example.com",
				HashedPassword: "$2a$12$hashed",
				CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
		}, nil)

		e := newTestEcho()
		body := `{"email":"anna@example.com","username":"anna","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(uc, newTestLogger())
		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"anna"`)
		assert.Contains(t, rec.Body.String(), `"id":7`)
		assert.NotContains(t, rec.Body.String(), "$2a$12$hashed")
	})

	t.Run("rejects a payload without an email", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)

		e := newTestEcho()
		body := `{"username":"anna","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(uc, newTestLogger())
		err := h.Register(c)
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("propagates a registration conflict", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered"))

		e := newTestEcho()
		body := `{"email":"anna@example.com","username":"anna","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(uc, newTestLogger())
		err := h.Register(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("accepts form credentials and returns the token", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.On("Login", mock.Anything, &usecase.LoginInput{
			Username: "anna@example.com",
			Password: "secret",
		}).Return(&usecase.LoginOutput{
			AccessToken: "signed-token",
			TokenType:   "bearer",
		}, nil)

		form := url.Values{}
		form.Set("username", "anna@example.com")
		form.Set("password", "secret")

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(uc, newTestLogger())
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("propagates invalid credentials", func(t *testing.T) {
		uc := mockusecase.NewMockUserUsecase(t)
		uc.On("Login", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

		e := newTestEcho()
		body := `{"username":"anna@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(uc, newTestLogger())
		err := h.Login(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the user placed by the auth middleware", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(middleware.KeyCurrentUser, &entity.User{
			ID:       7,
			Username: "anna",
			Email:    "anna@example.com",
		})

		h := NewAuthHandler(mockusecase.NewMockUserUsecase(t), newTestLogger())
		require.NoError(t, h.Me(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"anna@example.com"`)
	})

	t.Run("rejects a request with no authenticated user", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(mockusecase.NewMockUserUsecase(t), newTestLogger())
		require.NoError(t, h.Me(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
