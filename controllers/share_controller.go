package controllers

import (
	"net/http"
	"os"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type ShareController struct {
	Shares  *services.ShareService
	Imports *services.ImportService
}

func NewShareController(shares *services.ShareService, imports *services.ImportService) *ShareController {
	return &ShareController{Shares: shares, Imports: imports}
}

// CreateLink returns the cycle's share link, creating it on first call.
// Repeated calls return the same token.
func (sc *ShareController) CreateLink(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	share, err := sc.Shares.GetOrCreateLink(id, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": share.Token,
		"url":   os.Getenv("APP_URL") + "/shared/" + share.Token,
	})
}

func (sc *ShareController) RevokeLink(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := sc.Shares.Revoke(id, uid); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Resolve is the public preview of a shared cycle.
func (sc *ShareController) Resolve(c *gin.Context) {
	snap, err := sc.Shares.Resolve(c.Param("token"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Import copies the shared cycle into the caller's account.
func (sc *ShareController) Import(c *gin.Context) {
	uid := c.GetUint("userID")

	result, err := sc.Imports.ImportFromShare(c.Param("token"), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
