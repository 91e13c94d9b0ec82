package controllers

import (
	"net/http"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

type startWorkoutReq struct {
	PlanID *uint `json:"plan_id"`
}

func (wc *WorkoutController) Start(c *gin.Context) {
	uid := c.GetUint("userID")

	var req startWorkoutReq
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := wc.Workouts.Start(uid, req.PlanID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (wc *WorkoutController) AddSet(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.SetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := wc.Workouts.AddSet(uid, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

func (wc *WorkoutController) Finish(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	workout, err := wc.Workouts.Finish(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (wc *WorkoutController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	workout, err := wc.Workouts.Get(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (wc *WorkoutController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, perPage := pageParams(c)

	workouts, total, err := wc.Workouts.List(uid, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": workouts, "total": total})
}

func (wc *WorkoutController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := wc.Workouts.Delete(uid, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
