package controllers

import (
	"net/http"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type ProgramController struct {
	Programs *services.ProgramService
}

func NewProgramController(programs *services.ProgramService) *ProgramController {
	return &ProgramController{Programs: programs}
}

func (pc *ProgramController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"programs": services.Programs()})
}

func (pc *ProgramController) Install(c *gin.Context) {
	uid := c.GetUint("userID")

	install, result, err := pc.Programs.Install(c.Param("key"), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"install": install, "created": result})
}

func (pc *ProgramController) ListInstalls(c *gin.Context) {
	uid := c.GetUint("userID")

	installs, err := pc.Programs.ListInstalls(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"installs": installs})
}

func (pc *ProgramController) Uninstall(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := pc.Programs.Uninstall(id, uid); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
