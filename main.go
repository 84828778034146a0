package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"aircond-backend/config"
	"aircond-backend/routes"
	"aircond-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := config.Seed(config.DB); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	store := utils.NewSessionStore(sessionTTL())
	store.StartSweeper()
	defer store.StopSweeper()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(store, logger)
	printRoutes(r)

	logger.Info("AirCond admin running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

// Sessions expire a fixed interval after login, 24 hours unless overridden.
func sessionTTL() time.Duration {
	hours := 24
	if env := os.Getenv("SESSION_TTL_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil && h > 0 {
			hours = h
		}
	}
	return time.Duration(hours) * time.Hour
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
