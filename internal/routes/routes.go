package routes

import (
	"project-allocation-api/internal/handlers"
	"project-allocation-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Project Allocation API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Project endpoints
		protectedRoutes.GET("/projects", handlers.GetProjects)
		protectedRoutes.GET("/projects/:id", handlers.GetProjectByID)
		protectedRoutes.GET("/projects/:id/tasks", handlers.GetProjectTasks)
		protectedRoutes.POST("/projects", handlers.CreateProject)
		protectedRoutes.PUT("/projects/:id", handlers.UpdateProject)
		protectedRoutes.DELETE("/projects/:id", handlers.DeleteProject)

		// Task endpoints
		protectedRoutes.GET("/tasks", handlers.GetTasks)
		protectedRoutes.GET("/tasks/:id", handlers.GetTaskByID)
		protectedRoutes.POST("/tasks", handlers.CreateTask)
		protectedRoutes.PUT("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.PATCH("/tasks/:id/status", handlers.UpdateTaskStatus)
		protectedRoutes.DELETE("/tasks/:id", handlers.DeleteTask)
		protectedRoutes.POST("/tasks/:id/skills", handlers.AddTaskSkill)
		protectedRoutes.POST("/tasks/:id/dependencies", handlers.AddTaskDependency)
		protectedRoutes.POST("/tasks/:id/unassign", handlers.UnassignTask)

		// Member endpoints
		protectedRoutes.GET("/members", handlers.GetMembers)
		protectedRoutes.GET("/members/:id", handlers.GetMemberByID)
		protectedRoutes.GET("/members/:id/tasks", handlers.GetMemberTasks)
		protectedRoutes.POST("/members", handlers.CreateMember)
		protectedRoutes.PUT("/members/:id", handlers.UpdateMember)
		protectedRoutes.DELETE("/members/:id", handlers.DeleteMember)
		protectedRoutes.POST("/members/:id/skills", handlers.AddMemberSkill)
		protectedRoutes.DELETE("/members/:id/skills/:skillId", handlers.RemoveMemberSkill)

		// Skill catalog endpoints
		protectedRoutes.GET("/skills", handlers.GetSkills)
		protectedRoutes.POST("/skills", handlers.CreateSkill)

		// Allocation endpoint
		protectedRoutes.POST("/allocate/:projectId", handlers.AllocateTasks)

		// Alert endpoints
		protectedRoutes.GET("/alerts", handlers.GetAlerts)
		protectedRoutes.GET("/alerts/count", handlers.GetAlertCount)
		protectedRoutes.GET("/alerts/:id", handlers.GetAlertByID)
		protectedRoutes.PUT("/alerts/:id/read", handlers.MarkAlertRead)
		protectedRoutes.PUT("/alerts/read-all", handlers.MarkAllAlertsRead)
		protectedRoutes.DELETE("/alerts/:id", handlers.DeleteAlert)

		// Statistics endpoints
		protectedRoutes.GET("/statistics", handlers.GetOverallStatistics)
		protectedRoutes.GET("/statistics/workload", handlers.GetWorkloadStatistics)
		protectedRoutes.GET("/statistics/project/:id", handlers.GetProjectStatistics)

		// Realtime events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
