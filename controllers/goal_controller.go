package controllers

import (
	"net/http"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

func (gc *GoalController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.Create(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (gc *GoalController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, perPage := pageParams(c)

	goals, total, err := gc.Goals.List(uid, c.Query("status"), page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals, "total": total})
}

func (gc *GoalController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := gc.Goals.Get(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.GoalUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.Update(uid, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Cancel(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := gc.Goals.Cancel(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Refresh recomputes one goal's progress on demand.
func (gc *GoalController) Refresh(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	goal, err := gc.Goals.Refresh(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// RefreshAll recomputes every active goal of the caller.
func (gc *GoalController) RefreshAll(c *gin.Context) {
	uid := c.GetUint("userID")
	gc.Goals.UpdateAllForUser(uid)
	c.Status(http.StatusNoContent)
}

// Types lists the supported goal types for client pickers.
func (gc *GoalController) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": models.GoalTypes})
}
