// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"liftlog/internal/delivery/http/middleware"
	"liftlog/internal/delivery/http/response"
	domainerrors "liftlog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c echo.Context) (int64, error) {
	userID, ok := c.Get(middleware.KeyUserID).(int64)
	if !ok {
		return 0, domainerrors.ErrUnauthenticated.WrapMessage("request context has no authenticated user")
	}

	return userID, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" path parameter")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
