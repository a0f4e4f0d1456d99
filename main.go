package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Nandu8821/Attendance-Project/config"
	"github.com/Nandu8821/Attendance-Project/jobs"
	"github.com/Nandu8821/Attendance-Project/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := jobs.InitCronJobs(c, nil); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.Cloudinary)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
