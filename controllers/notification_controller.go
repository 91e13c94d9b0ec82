package controllers

import (
	"net/http"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/config"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/models"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

func (nc *NotificationController) GetPreferences(c *gin.Context) {
	uid := c.GetUint("userID")
	pref := nc.Notifications.Preferences(uid)
	c.JSON(http.StatusOK, gin.H{
		"goal_achieved_enabled":          pref.GoalAchievedEnabled,
		"goal_progress_enabled":          pref.GoalProgressEnabled,
		"goal_deadline_reminder_enabled": pref.GoalDeadlineReminderEnabled,
		"goal_failed_enabled":            pref.GoalFailedEnabled,
		"milestones":                     pref.MilestoneList(),
		"reminder_days":                  pref.ReminderDayList(),
	})
}

type preferencesReq struct {
	GoalAchievedEnabled         bool   `json:"goal_achieved_enabled"`
	GoalProgressEnabled         bool   `json:"goal_progress_enabled"`
	GoalDeadlineReminderEnabled bool   `json:"goal_deadline_reminder_enabled"`
	GoalFailedEnabled           bool   `json:"goal_failed_enabled"`
	Milestones                  string `json:"milestones"`
	ReminderDays                string `json:"reminder_days"`
}

func (nc *NotificationController) UpdatePreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var req preferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	pref, err := nc.Notifications.UpdatePreferences(uid, models.NotificationPreference{
		GoalAchievedEnabled:         req.GoalAchievedEnabled,
		GoalProgressEnabled:         req.GoalProgressEnabled,
		GoalDeadlineReminderEnabled: req.GoalDeadlineReminderEnabled,
		GoalFailedEnabled:           req.GoalFailedEnabled,
		Milestones:                  req.Milestones,
		ReminderDays:                req.ReminderDays,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, pref)
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// ToggleDevices flips push delivery for every registered device of the user.
func ToggleDevices(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.UserDevice{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "devices updated",
		"enabled": req.Enabled,
	})
}
