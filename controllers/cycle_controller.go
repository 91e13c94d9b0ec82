package controllers

import (
	"net/http"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type CycleController struct {
	Cycles *services.CycleService
}

func NewCycleController(cycles *services.CycleService) *CycleController {
	return &CycleController{Cycles: cycles}
}

func (cc *CycleController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cycle, err := cc.Cycles.Create(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cycle)
}

func (cc *CycleController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, perPage := pageParams(c)

	cycles, total, err := cc.Cycles.List(uid, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cycles": cycles, "total": total})
}

func (cc *CycleController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cycle, err := cc.Cycles.Get(uid, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cycle)
}

func (cc *CycleController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.CycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cycle, err := cc.Cycles.Update(uid, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cycle)
}

func (cc *CycleController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := cc.Cycles.Delete(uid, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
