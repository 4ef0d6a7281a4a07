package handlers

import (
	"net/http"
	"time"

	"project-allocation-api/internal/cache"
	"project-allocation-api/internal/database"
	"project-allocation-api/internal/models"
	"project-allocation-api/internal/store"

	"github.com/gin-gonic/gin"
)

// Statistics are aggregate queries over the whole database; they are cached
// briefly so dashboard polling does not hammer SQLite.
var statsCache = cache.New[string, gin.H]()

const statsTTL = 30 * time.Second

// InvalidateStatsCache drops all cached statistics. Tests use it to avoid
// cross-test bleed.
func InvalidateStatsCache() {
	statsCache.Clear()
}

func statusCounts(rows []statusRow) gin.H {
	counts := gin.H{
		string(models.StatusTodo):       int64(0),
		string(models.StatusInProgress): int64(0),
		string(models.StatusCompleted):  int64(0),
		string(models.StatusBlocked):    int64(0),
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts
}

type statusRow struct {
	Status string
	Count  int64
}

// GetOverallStatistics handles GET /api/statistics
func GetOverallStatistics(c *gin.Context) {
	if cached, ok := statsCache.Get("overall"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	db := database.GetDB()

	var projectCount, taskCount, memberCount, unreadAlerts int64
	if err := db.Model(&models.Project{}).Count(&projectCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	if err := db.Model(&models.Task{}).Count(&taskCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	if err := db.Model(&models.Member{}).Count(&memberCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	if err := db.Model(&models.Alert{}).Where("is_read = ?", false).Count(&unreadAlerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	var rows []statusRow
	if err := db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	stats := gin.H{
		"projects":      projectCount,
		"tasks":         taskCount,
		"members":       memberCount,
		"unreadAlerts":  unreadAlerts,
		"tasksByStatus": statusCounts(rows),
	}
	statsCache.Set("overall", stats, statsTTL)
	c.JSON(http.StatusOK, stats)
}

// GetWorkloadStatistics handles GET /api/statistics/workload
func GetWorkloadStatistics(c *gin.Context) {
	if cached, ok := statsCache.Get("workload"); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	members, err := store.NewMemberStore(database.GetDB()).FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute workload statistics"})
		return
	}

	entries := make([]gin.H, 0, len(members))
	overloadedCount := 0
	totalPct := 0.0
	for _, m := range members {
		if m.IsOverloaded() {
			overloadedCount++
		}
		totalPct += m.WorkloadPercentage()
		entries = append(entries, gin.H{
			"id":                 m.ID,
			"name":               m.Name,
			"currentWorkload":    m.CurrentWorkload,
			"weeklyAvailability": m.WeeklyAvailability,
			"availableHours":     m.AvailableHours(),
			"workloadPercentage": m.WorkloadPercentage(),
			"overloaded":         m.IsOverloaded(),
		})
	}

	averagePct := 0.0
	if len(members) > 0 {
		averagePct = totalPct / float64(len(members))
	}

	stats := gin.H{
		"members":                   entries,
		"overloadedCount":           overloadedCount,
		"averageWorkloadPercentage": averagePct,
	}
	statsCache.Set("workload", stats, statsTTL)
	c.JSON(http.StatusOK, stats)
}

// GetProjectStatistics handles GET /api/statistics/project/:id
func GetProjectStatistics(c *gin.Context) {
	projectID := c.Param("id")
	cacheKey := "project:" + projectID
	if cached, ok := statsCache.Get(cacheKey); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	db := database.GetDB()

	var rows []statusRow
	if err := db.Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute project statistics"})
		return
	}

	var totalHours float64
	if err := db.Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(estimated_hours), 0)").
		Scan(&totalHours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute project statistics"})
		return
	}

	var unassigned int64
	if err := db.Model(&models.Task{}).
		Where("project_id = ? AND assigned_member_id IS NULL", projectID).
		Count(&unassigned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute project statistics"})
		return
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}

	stats := gin.H{
		"projectId":           projectID,
		"totalTasks":          total,
		"tasksByStatus":       statusCounts(rows),
		"totalEstimatedHours": totalHours,
		"unassignedTasks":     unassigned,
	}
	statsCache.Set(cacheKey, stats, statsTTL)
	c.JSON(http.StatusOK, stats)
}
