package handler

import (
	"log/slog"
	"net/http"
	"time"

	"liftlog/internal/delivery/http/response"
	"liftlog/internal/domain/entity"
	"liftlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SplitResponse is the public view of a split.
type SplitResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func newSplitResponse(split *entity.Split) *SplitResponse {
	return &SplitResponse{
		ID:          split.ID,
		Name:        split.Name,
		Description: split.Description,
		OwnerID:     split.OwnerID,
		CreatedAt:   split.CreatedAt,
	}
}

func newSplitListResponse(splits []*entity.Split) []*SplitResponse {
	out := make([]*SplitResponse, 0, len(splits))
	for _, split := range splits {
		out = append(out, newSplitResponse(split))
	}

	return out
}

// SplitHandler holds dependencies for split-related handlers.
type SplitHandler struct {
	uc     usecase.SplitUsecase
	logger *slog.Logger
}

// NewSplitHandler is the constructor for SplitHandler, injected by Fx.
func NewSplitHandler(uc usecase.SplitUsecase, logger *slog.Logger) *SplitHandler {
	return &SplitHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the public split listing request.
func (h *SplitHandler) List(c echo.Context) error {
	var input usecase.ListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list parameters")
	}

	splits, err := h.uc.List(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSplitListResponse(splits), "Splits retrieved successfully")
}

// Get handles the public single split request.
func (h *SplitHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	split, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSplitResponse(split), "Split retrieved successfully")
}

// Create handles the authenticated split creation request.
func (h *SplitHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateSplitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid split input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	split, err := h.uc.Create(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSplitResponse(split), "Split created successfully")
}

// Update handles the authenticated partial split update request.
func (h *SplitHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateSplitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid split input")
	}

	split, err := h.uc.Update(c.Request().Context(), userID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSplitResponse(split), "Split updated successfully")
}

// Delete handles the authenticated split deletion request.
func (h *SplitHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
