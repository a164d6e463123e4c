package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"DailyTodo/Clock"
	"DailyTodo/CronJobs"
	"DailyTodo/FiberConfig"
	"DailyTodo/Models"
	"DailyTodo/Services"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using defaults")
	}

	Clock.Configure()
	Models.Connect()

	// Materialize today's tasks before serving anything
	if err := Services.EnsureDayExists(Models.DB, nil); err != nil {
		log.Fatal("Failed to prepare today's tasks:", err)
	}

	if os.Getenv("ENABLE_CRON") != "false" {
		reconciler := CronJobs.NewDailyReconciler(Models.DB, false)
		if err := reconciler.Start(); err != nil {
			log.Printf("Failed to start reconcile scheduler: %v", err)
		}
	}

	FiberConfig.FiberConfig()
}
