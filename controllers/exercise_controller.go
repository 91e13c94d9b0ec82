package controllers

import (
	"net/http"
	"strconv"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: exercises}
}

func (ec *ExerciseController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := ec.Exercises.Create(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

func (ec *ExerciseController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, perPage := pageParams(c)

	var groupID *uint
	if raw := c.Query("muscle_group_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid muscle_group_id"})
			return
		}
		v := uint(id)
		groupID = &v
	}

	exercises, total, err := ec.Exercises.List(uid, groupID, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "total": total})
}

func (ec *ExerciseController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	exercise, err := ec.Exercises.Get(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (ec *ExerciseController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := ec.Exercises.Update(uid, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (ec *ExerciseController) Deactivate(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ec.Exercises.Deactivate(uid, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ec *ExerciseController) MuscleGroups(c *gin.Context) {
	groups, err := ec.Exercises.MuscleGroups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"muscle_groups": groups})
}
