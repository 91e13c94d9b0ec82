package controllers

import (
	"net/http"
	"strconv"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

func (pc *PlanController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := pc.Plans.Create(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (pc *PlanController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, perPage := pageParams(c)

	var cycleID *uint
	if raw := c.Query("cycle_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cycle_id"})
			return
		}
		v := uint(id)
		cycleID = &v
	}

	plans, total, err := pc.Plans.List(uid, cycleID, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "total": total})
}

func (pc *PlanController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := pc.Plans.Get(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

type setExercisesReq struct {
	ExerciseIDs []uint `json:"exercise_ids" binding:"required"`
}

func (pc *PlanController) SetExercises(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req setExercisesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := pc.Plans.SetExercises(uid, id, req.ExerciseIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (pc *PlanController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := pc.Plans.Delete(uid, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
