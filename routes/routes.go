package routes

import (
	"redcar-backend/config"
	"redcar-backend/controllers"
	"redcar-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"capacitor://localhost",
			"http://localhost",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		CustomSchemas:    []string{"capacitor://"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Inventory routes
		parts := api.Group("/parts")
		{
			parts.POST("", controllers.CreatePart)
			parts.GET("", controllers.GetParts)
			parts.GET("/:id", controllers.GetPart)
			parts.PUT("/:id", controllers.UpdatePart)
			parts.DELETE("/:id", controllers.DeletePart)
		}

		// Revision routes
		revisions := api.Group("/revisions")
		{
			revisions.POST("", controllers.CreateRevision)
			revisions.GET("", controllers.GetRevisions)
			revisions.GET("/:id", controllers.GetRevision)
			revisions.PUT("/:id", controllers.UpdateRevision)
			revisions.DELETE("/:id", controllers.DeleteRevision)
		}

		// Team routes
		team := api.Group("/team")
		{
			team.POST("", controllers.CreateTeamMember)
			team.GET("", controllers.GetTeamMembers)
			team.GET("/:id", controllers.GetTeamMember)
			team.PUT("/:id", controllers.UpdateTeamMember)
			team.DELETE("/:id", controllers.DeleteTeamMember)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Supplier routes
		suppliers := api.Group("/suppliers")
		{
			suppliers.POST("", controllers.CreateSupplier)
			suppliers.GET("", controllers.GetSuppliers)
			suppliers.GET("/:id", controllers.GetSupplier)
			suppliers.PUT("/:id", controllers.UpdateSupplier)
			suppliers.DELETE("/:id", controllers.DeleteSupplier)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)

		// News screen articles
		api.GET("/articles", controllers.GetArticles)

		// Settings routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/notifications", controllers.UpdateNotificationSettings)
		}
	}

	return r
}
