package handlers

import (
	"errors"
	"net/http"

	"project-allocation-api/internal/database"
	"project-allocation-api/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAlerts handles GET /api/alerts
// Optional query param: unread=true to return only unread alerts.
func GetAlerts(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	alerts, err := store.NewAlertStore(database.GetDB()).FindAll(unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// GetAlertCount handles GET /api/alerts/count
// Returns the unread alert count.
func GetAlertCount(c *gin.Context) {
	count, err := store.NewAlertStore(database.GetDB()).UnreadCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetAlertByID handles GET /api/alerts/:id
func GetAlertByID(c *gin.Context) {
	alert, err := store.NewAlertStore(database.GetDB()).FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alert"})
		}
		return
	}

	c.JSON(http.StatusOK, alert)
}

// MarkAlertRead handles PUT /api/alerts/:id/read
func MarkAlertRead(c *gin.Context) {
	if err := store.NewAlertStore(database.GetDB()).MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark alert as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert marked as read"})
}

// MarkAllAlertsRead handles PUT /api/alerts/read-all
func MarkAllAlertsRead(c *gin.Context) {
	if err := store.NewAlertStore(database.GetDB()).MarkAllRead(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark alerts as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All alerts marked as read"})
}

// DeleteAlert handles DELETE /api/alerts/:id
func DeleteAlert(c *gin.Context) {
	if err := store.NewAlertStore(database.GetDB()).Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alert deleted successfully"})
}
