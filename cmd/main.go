package main

import (
	"log"

	"github.com/9xxdpxx6/ZenythiumApi-sub002/config"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/controllers"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/routes"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/services"
	"github.com/9xxdpxx6/ZenythiumApi-sub002/utils"

	"github.com/robfig/cron/v3"
)

func main() {
	config.InitDB()
	utils.InitS3()
	db := config.DB

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(db)
	if err != nil {
		log.Printf("push disabled: %v", err)
	}

	notifications := services.NewNotificationService(db, &utils.Mailer{}, push, hub)
	goals := services.NewGoalService(db, notifications)
	shares := services.NewShareService(db)
	imports := services.NewImportService(db, shares)

	ctl := routes.Controllers{
		Goals:         controllers.NewGoalController(goals),
		Cycles:        controllers.NewCycleController(services.NewCycleService(db)),
		Plans:         controllers.NewPlanController(services.NewPlanService(db)),
		Exercises:     controllers.NewExerciseController(services.NewExerciseService(db)),
		Workouts:      controllers.NewWorkoutController(services.NewWorkoutService(db, goals)),
		Metrics:       controllers.NewMetricController(services.NewMetricService(db, goals)),
		Shares:        controllers.NewShareController(shares, imports),
		Programs:      controllers.NewProgramController(services.NewProgramService(db)),
		Notifications: controllers.NewNotificationController(notifications),
		Devices:       controllers.NewDeviceController(push),
		Realtime:      controllers.NewRealtimeController(hub),
	}

	// Deadline reminders and overdue-goal failure run once a day.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 6 * * *", goals.RunDeadlineSweep); err != nil {
		log.Fatalf("scheduling deadline sweep: %v", err)
	}
	scheduler.Start()

	r := routes.SetupRouter(ctl)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server: %v", err)
	}
}
