package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"redcar-backend/config"
	"redcar-backend/controllers"
	"redcar-backend/routes"
	"redcar-backend/services"
	"redcar-backend/store"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}
	if os.Getenv("LOG_LEVEL") != "" {
		if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			log.SetLevel(level)
		}
	}

	config.ConnectDB()
	config.DB.AutoMigrate(&store.Entry{})
}

func main() {
	ds := store.Open(store.NewGormKV(config.DB))
	defer ds.Close()
	controllers.Init(ds)

	reminders := services.NewReminderService(ds)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
