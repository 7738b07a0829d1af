package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"liftlog/internal/delivery/http/middleware"
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

func TestWorkoutHandler_List(t *testing.T) {
	uc := mockusecase.NewMockWorkoutUsecase(t)
	uc.On("List", mock.Anything, int64(3), &usecase.ListInput{}).
		Return([]*entity.Workout{
			{ID: 1, Name: "Bench Press", SplitID: 3, OwnerID: 7},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/splits/3/workouts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("split_id")
	c.SetParamValues("3")

	h := NewWorkoutHandler(uc, newTestLogger())
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Bench Press"`)
}

func TestWorkoutHandler_Get(t *testing.T) {
	t.Run("returns the workout", func(t *testing.T) {
		uc := mockusecase.NewMockWorkoutUsecase(t)
		uc.On("Get", mock.Anything, int64(3), int64(1)).
			Return(&entity.Workout{ID: 1, Name: "Bench Press", SplitID: 3, OwnerID: 7}, nil)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/splits/3/workouts/1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("split_id", "id")
		c.SetParamValues("3", "1")

		h := NewWorkoutHandler(uc, newTestLogger())
		require.NoError(t, h.Get(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"split_id":3`)
	})

	t.Run("propagates not found for a mismatched split", func(t *testing.T) {
		uc := mockusecase.NewMockWorkoutUsecase(t)
		uc.On("Get", mock.Anything, int64(99), int64(1)).
			Return(nil, domainerrors.ErrWorkoutNotFound.WrapMessage("workout lookup failed"))

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/splits/99/workouts/1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("split_id", "id")
		c.SetParamValues("99", "1")

		h := NewWorkoutHandler(uc, newTestLogger())
		err := h.Get(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrWorkoutNotFound))
	})
}

func TestWorkoutHandler_Create(t *testing.T) {
	t.Run("creates the workout under the path's split", func(t *testing.T) {
		uc := mockusecase.NewMockWorkoutUsecase(t)
		uc.On("Create", mock.Anything, int64(7), int64(3), &usecase.CreateWorkoutInput{
			Name:   "Bench Press",
			Sets:   5,
			Reps:   5,
			Weight: 80,
		}).Return(&entity.Workout{ID: 21, Name: "Bench Press", Sets: 5, Reps: 5, Weight: 80, OwnerID: 7, SplitID: 3}, nil)

		e := newTestEcho()
		body := `{"name":"Bench Press","sets":5,"reps":5,"weight":80}`
		req := httptest.NewRequest(http.MethodPost, "/splits/3/workouts", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("split_id")
		c.SetParamValues("3")
		c.Set(middleware.KeyUserID, int64(7))

		h := NewWorkoutHandler(uc, newTestLogger())
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"split_id":3`)
		assert.Contains(t, rec.Body.String(), `"owner_id":7`)
	})

	t.Run("rejects a payload without a name", func(t *testing.T) {
		uc := mockusecase.NewMockWorkoutUsecase(t)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodPost, "/splits/3/workouts", strings.NewReader(`{"sets":5}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("split_id")
		c.SetParamValues("3")
		c.Set(middleware.KeyUserID, int64(7))

		h := NewWorkoutHandler(uc, newTestLogger())
		err := h.Create(c)
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWorkoutHandler_Update(t *testing.T) {
	sets := 3

	uc := mockusecase.NewMockWorkoutUsecase(t)
	uc.On("Update", mock.Anything, int64(7), int64(3), int64(1), &usecase.UpdateWorkoutInput{Sets: &sets}).
		Return(&entity.Workout{ID: 1, Name: "Bench Press", Sets: 3, OwnerID: 7, SplitID: 3}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/splits/3/workouts/1", strings.NewReader(`{"sets":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("split_id", "id")
	c.SetParamValues("3", "1")
	c.Set(middleware.KeyUserID, int64(7))

	h := NewWorkoutHandler(uc, newTestLogger())
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sets":3`)
}

func TestWorkoutHandler_Delete(t *testing.T) {
	uc := mockusecase.NewMockWorkoutUsecase(t)
	uc.On("Delete", mock.Anything, int64(7), int64(3), int64(1)).Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/splits/3/workouts/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("split_id", "id")
	c.SetParamValues("3", "1")
	c.Set(middleware.KeyUserID, int64(7))

	h := NewWorkoutHandler(uc, newTestLogger())
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
