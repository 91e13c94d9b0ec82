package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"
	"github.com/gin-gonic/gin"
)

// pathID parses the numeric :id style path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// pageParams reads ?page and ?per_page; bounds are applied by utils.Paginate.
func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	return page, perPage
}

// respondServiceError maps service errors onto HTTP statuses: not-found to
// 404, precondition failures to 400 with the specific message, anything else
// to an opaque 500 (details stay in the server log).
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrCycleNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrExerciseNotFound),
		errors.Is(err, services.ErrWorkoutNotFound),
		errors.Is(err, services.ErrMetricNotFound),
		errors.Is(err, services.ErrShareNotFound),
		errors.Is(err, services.ErrProgramNotFound),
		errors.Is(err, services.ErrInstallNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSelfImport),
		errors.Is(err, services.ErrEmptyTemplate),
		errors.Is(err, services.ErrTooManyPlans),
		errors.Is(err, services.ErrTooManyExercises),
		errors.Is(err, services.ErrUnknownGoalType),
		errors.Is(err, services.ErrExerciseRequired),
		errors.Is(err, services.ErrGoalNotActive),
		errors.Is(err, services.ErrTargetNotPositive),
		errors.Is(err, services.ErrWorkoutFinished),
		errors.Is(err, services.ErrCycleHasWorkouts),
		errors.Is(err, services.ErrAlreadyInstalled):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
