package routes

import (
	"github.com/9xxdpxx6/ZenythiumApi-sub002/controllers"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything SetupRouter wires into the route table.
type Controllers struct {
	Goals         *controllers.GoalController
	Cycles        *controllers.CycleController
	Plans         *controllers.PlanController
	Exercises     *controllers.ExerciseController
	Workouts      *controllers.WorkoutController
	Metrics       *controllers.MetricController
	Shares        *controllers.ShareController
	Programs      *controllers.ProgramController
	Notifications *controllers.NotificationController
	Devices       *controllers.DeviceController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public share preview: anyone with the token can view the snapshot.
	r.GET("/shared/:token", ctl.Shares.Resolve)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		goals := api.Group("/goals")
		{
			goals.POST("", ctl.Goals.Create)
			goals.GET("", ctl.Goals.List)
			goals.GET("/types", ctl.Goals.Types)
			goals.POST("/refresh", ctl.Goals.RefreshAll)
			goals.GET("/:id", ctl.Goals.Get)
			goals.PUT("/:id", ctl.Goals.Update)
			goals.POST("/:id/cancel", ctl.Goals.Cancel)
			goals.POST("/:id/refresh", ctl.Goals.Refresh)
		}

		cycles := api.Group("/cycles")
		{
			cycles.POST("", ctl.Cycles.Create)
			cycles.GET("", ctl.Cycles.List)
			cycles.GET("/:id", ctl.Cycles.Get)
			cycles.PUT("/:id", ctl.Cycles.Update)
			cycles.DELETE("/:id", ctl.Cycles.Delete)
			cycles.POST("/:id/share", ctl.Shares.CreateLink)
			cycles.DELETE("/:id/share", ctl.Shares.RevokeLink)
		}

		plans := api.Group("/plans")
		{
			plans.POST("", ctl.Plans.Create)
			plans.GET("", ctl.Plans.List)
			plans.GET("/:id", ctl.Plans.Get)
			plans.PUT("/:id/exercises", ctl.Plans.SetExercises)
			plans.DELETE("/:id", ctl.Plans.Delete)
		}

		exercises := api.Group("/exercises")
		{
			exercises.POST("", ctl.Exercises.Create)
			exercises.GET("", ctl.Exercises.List)
			exercises.GET("/:id", ctl.Exercises.Get)
			exercises.PUT("/:id", ctl.Exercises.Update)
			exercises.DELETE("/:id", ctl.Exercises.Deactivate)
		}
		api.GET("/muscle-groups", ctl.Exercises.MuscleGroups)

		workouts := api.Group("/workouts")
		{
			workouts.POST("", ctl.Workouts.Start)
			workouts.GET("", ctl.Workouts.List)
			workouts.GET("/:id", ctl.Workouts.Get)
			workouts.POST("/:id/sets", ctl.Workouts.AddSet)
			workouts.POST("/:id/finish", ctl.Workouts.Finish)
			workouts.DELETE("/:id", ctl.Workouts.Delete)
		}

		metrics := api.Group("/metrics")
		{
			metrics.PUT("", ctl.Metrics.Upsert)
			metrics.GET("", ctl.Metrics.List)
			metrics.DELETE("/:id", ctl.Metrics.Delete)
		}

		api.POST("/shared/:token/import", ctl.Shares.Import)

		programs := api.Group("/programs")
		{
			programs.GET("", ctl.Programs.List)
			programs.GET("/installs", ctl.Programs.ListInstalls)
			programs.POST("/:key/install", ctl.Programs.Install)
			programs.DELETE("/installs/:id", ctl.Programs.Uninstall)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/preferences", ctl.Notifications.GetPreferences)
			notifications.PUT("/preferences", ctl.Notifications.UpdatePreferences)
			notifications.PUT("/devices", controllers.ToggleDevices)
		}

		api.POST("/devices", ctl.Devices.Register)
		api.GET("/ws/events", ctl.Realtime.EventsWS)
	}

	return r
}
