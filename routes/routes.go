package routes

import (
	"os"
	"path/filepath"

	"aircond-backend/config"
	"aircond-backend/controllers"
	"aircond-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(store *utils.SessionStore, logger *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(config.RequestLogger(logger))

	public := os.Getenv("PUBLIC_DIR")
	if public == "" {
		public = "./public"
	}

	auth := &controllers.AuthController{Store: store}

	r.GET("/", auth.Home)
	r.GET("/login", func(c *gin.Context) {
		c.File(filepath.Join(public, "login.html"))
	})
	r.POST("/login", auth.Login)
	r.GET("/logout", auth.Logout)
	r.Static("/js", filepath.Join(public, "js"))

	r.GET("/dashboard", utils.RequireSession(store), func(c *gin.Context) {
		c.File(filepath.Join(public, "dashboard.html"))
	})

	api := r.Group("/api")
	api.Use(utils.RequireSession(store))
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.GET("", controllers.GetCustomers)
			customers.POST("", controllers.CreateCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
			services.GET("/:id/history", controllers.GetServiceHistory)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.GET("", controllers.GetInventory)
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
		}

		// Dashboard counters and technician picker
		api.GET("/stats", controllers.GetStats)
		api.GET("/users", controllers.GetUsers)
	}

	return r
}
