package handlers

import (
	"log"
	"net/http"

	"project-allocation-api/internal/allocation"
	"project-allocation-api/internal/database"
	"project-allocation-api/internal/realtime"
	"project-allocation-api/internal/store"

	"github.com/gin-gonic/gin"
)

// AllocateTasks handles POST /api/allocate/:projectId
// Runs one allocation pass over the project's unassigned tasks.
func AllocateTasks(c *gin.Context) {
	projectID := c.Param("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	db := database.GetDB()
	engine := allocation.NewEngine(
		store.NewTaskStore(db),
		store.NewMemberStore(db),
		store.NewAlertStore(db),
	)

	result, err := engine.Allocate(projectID)
	if err != nil {
		// Pass-level failure: the initial fetch failed, nothing ran.
		log.Printf("Allocation pass for project %s aborted: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	realtime.GetHub().BroadcastEvent(map[string]any{
		"type":          "allocation_completed",
		"projectId":     projectID,
		"assignedCount": result.AssignedCount,
		"failedCount":   result.FailedCount,
		"version":       1,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":       result.Success(),
		"assignedCount": result.AssignedCount,
		"failedCount":   result.FailedCount,
		"message":       result.Message,
	})
}
