package api

import (
	"askadam/fitness-assistant/internal/domain"
	"askadam/fitness-assistant/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler backs the workout-plan CRUD screens.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type WorkoutDayRequest struct {
	Name      string            `json:"name" binding:"required"`
	Exercises []domain.Exercise `json:"exercises"`
}

// GetSplit returns the caller's workout day collection.
func (h *WorkoutHandler) GetSplit(c *gin.Context) {
	days, err := h.workoutService.GetSplit(c.Request.Context(), userIDOrEmpty(c))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load workouts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workoutSplit": days})
}

// CreateDay appends a new workout day.
func (h *WorkoutHandler) CreateDay(c *gin.Context) {
	var req WorkoutDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	day, err := h.workoutService.CreateDay(c.Request.Context(), userIDOrEmpty(c), req.Name, req.Exercises)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not create workout day")
		}
		return
	}
	c.JSON(http.StatusCreated, day)
}

// UpdateDay replaces a day's name and exercises in place.
func (h *WorkoutHandler) UpdateDay(c *gin.Context) {
	var req WorkoutDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	day := domain.WorkoutDay{
		ID:        c.Param("dayId"),
		Name:      req.Name,
		Exercises: req.Exercises,
	}
	updated, err := h.workoutService.UpdateDay(c.Request.Context(), userIDOrEmpty(c), day)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutDayNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrWorkoutValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not update workout day")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDay removes a day from the collection.
func (h *WorkoutHandler) DeleteDay(c *gin.Context) {
	err := h.workoutService.DeleteDay(c.Request.Context(), userIDOrEmpty(c), c.Param("dayId"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutDayNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not delete workout day")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
