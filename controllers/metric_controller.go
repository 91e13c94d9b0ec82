package controllers

import (
	"net/http"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type MetricController struct {
	Metrics *services.MetricService
}

func NewMetricController(metrics *services.MetricService) *MetricController {
	return &MetricController{Metrics: metrics}
}

func (mc *MetricController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := mc.Metrics.Upsert(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}

func (mc *MetricController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	page, perPage := pageParams(c)

	metrics, total, err := mc.Metrics.List(uid, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": metrics, "total": total})
}

func (mc *MetricController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.Metrics.Delete(uid, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
