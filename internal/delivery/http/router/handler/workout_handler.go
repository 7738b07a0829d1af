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

// WorkoutResponse is the public view of a workout.
type WorkoutResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	Weight    int       `json:"weight"`
	OwnerID   int64     `json:"owner_id"`
	SplitID   int64     `json:"split_id"`
	CreatedAt time.Time `json:"created_at"`
}

func newWorkoutResponse(workout *entity.Workout) *WorkoutResponse {
	return &WorkoutResponse{
		ID:        workout.ID,
		Name:      workout.Name,
		Sets:      workout.Sets,
		Reps:      workout.Reps,
		Weight:    workout.Weight,
		OwnerID:   workout.OwnerID,
		SplitID:   workout.SplitID,
		CreatedAt: workout.CreatedAt,
	}
}

func newWorkoutListResponse(workouts []*entity.Workout) []*WorkoutResponse {
	out := make([]*WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		out = append(out, newWorkoutResponse(workout))
	}

	return out
}

// WorkoutHandler holds dependencies for workout-related handlers. Every
// route is nested under a split; the split id always comes from the path.
type WorkoutHandler struct {
	uc     usecase.WorkoutUsecase
	logger *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler, injected by Fx.
func NewWorkoutHandler(uc usecase.WorkoutUsecase, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the public workout listing request for a split.
func (h *WorkoutHandler) List(c echo.Context) error {
	splitID, err := pathID(c, "split_id")
	if err != nil {
		return err
	}

	var input usecase.ListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list parameters")
	}

	workouts, err := h.uc.List(c.Request().Context(), splitID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWorkoutListResponse(workouts), "Workouts retrieved successfully")
}

// Get handles the public single workout request.
func (h *WorkoutHandler) Get(c echo.Context) error {
	splitID, err := pathID(c, "split_id")
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	workout, err := h.uc.Get(c.Request().Context(), splitID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWorkoutResponse(workout), "Workout retrieved successfully")
}

// Create handles the authenticated workout creation request.
func (h *WorkoutHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	splitID, err := pathID(c, "split_id")
	if err != nil {
		return err
	}

	var input usecase.CreateWorkoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.Create(c.Request().Context(), userID, splitID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newWorkoutResponse(workout), "Workout created successfully")
}

// Update handles the authenticated partial workout update request.
func (h *WorkoutHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	splitID, err := pathID(c, "split_id")
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateWorkoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}

	workout, err := h.uc.Update(c.Request().Context(), userID, splitID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newWorkoutResponse(workout), "Workout updated successfully")
}

// Delete handles the authenticated workout deletion request.
func (h *WorkoutHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	splitID, err := pathID(c, "split_id")
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, splitID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
