package handlers

import (
	"errors"
	"net/http"
	"time"

	"project-allocation-api/internal/database"
	"project-allocation-api/internal/models"
	"project-allocation-api/internal/realtime"
	"project-allocation-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	ProjectID      string              `json:"projectId" binding:"required"`
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	EstimatedHours float64             `json:"estimatedHours" binding:"min=0"`
	Priority       models.TaskPriority `json:"priority"`
	Status         models.TaskStatus   `json:"status"`
	StartDate      *time.Time          `json:"startDate"`
	Deadline       *time.Time          `json:"deadline"`
	RequiredSkills []SkillRequirement  `json:"requiredSkills"`
}

// SkillRequirement is one (skill, minimum level) pair on a task
type SkillRequirement struct {
	SkillID       string `json:"skillId" binding:"required"`
	RequiredLevel int    `json:"requiredLevel" binding:"required,min=1,max=5"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	EstimatedHours *float64             `json:"estimatedHours"`
	Priority       *models.TaskPriority `json:"priority"`
	Status         *models.TaskStatus   `json:"status"`
	StartDate      *time.Time           `json:"startDate"`
	Deadline       *time.Time           `json:"deadline"`
}

// UpdateTaskStatusRequest is a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// DependencyRequest links a task to a task it depends on
type DependencyRequest struct {
	DependsOnTaskID string `json:"dependsOnTaskId" binding:"required"`
}

func validPriority(p models.TaskPriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
		return true
	}
	return false
}

func validStatus(s models.TaskStatus) bool {
	switch s {
	case models.StatusTodo, models.StatusInProgress, models.StatusCompleted, models.StatusBlocked:
		return true
	}
	return false
}

// enrichAssigneeNames fills AssignedMemberName on each task from the
// members table.
func enrichAssigneeNames(db *gorm.DB, tasks []models.Task) {
	var members []models.Member
	if err := db.Find(&members).Error; err != nil {
		return
	}
	nameByID := make(map[string]string, len(members))
	for _, m := range members {
		nameByID[m.ID] = m.Name
	}
	for i := range tasks {
		if tasks[i].AssignedMemberID != nil {
			tasks[i].AssignedMemberName = nameByID[*tasks[i].AssignedMemberID]
		}
	}
}

// GetTasks handles GET /api/tasks
// Optional query params: projectId, memberId
func GetTasks(c *gin.Context) {
	db := database.GetDB()
	tasks := store.NewTaskStore(db)

	var (
		result []models.Task
		err    error
	)
	switch {
	case c.Query("projectId") != "":
		result, err = tasks.FindByProject(c.Query("projectId"))
	case c.Query("memberId") != "":
		result, err = tasks.FindByMember(c.Query("memberId"))
	default:
		err = db.Preload("RequiredSkills").Order("deadline asc").Find(&result).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	enrichAssigneeNames(db, result)
	c.JSON(http.StatusOK, gin.H{
		"tasks": result,
		"count": len(result),
	})
}

// GetTaskByID handles GET /api/tasks/:id
func GetTaskByID(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /api/tasks
func CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !validPriority(priority) || !validStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority or status"})
		return
	}

	db := database.GetDB()
	var project models.Project
	if err := db.Where("id = ?", req.ProjectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid projectId: project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate projectId"})
		}
		return
	}

	task := models.Task{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		Priority:       priority,
		Status:         status,
		StartDate:      req.StartDate,
		Deadline:       req.Deadline,
	}
	for _, r := range req.RequiredSkills {
		task.RequiredSkills = append(task.RequiredSkills, models.TaskSkill{
			TaskID:        task.ID,
			SkillID:       r.SkillID,
			RequiredLevel: r.RequiredLevel,
		})
	}

	if err := db.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	realtime.GetHub().BroadcastEvent(map[string]any{
		"type":    "task_created",
		"taskId":  task.ID,
		"version": 1,
	})

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
func UpdateTask(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.EstimatedHours != nil {
		if *req.EstimatedHours < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "estimatedHours must be non-negative"})
			return
		}
		task.EstimatedHours = *req.EstimatedHours
	}
	if req.Priority != nil {
		if !validPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		task.Priority = *req.Priority
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		task.Status = *req.Status
	}
	if req.StartDate != nil {
		task.StartDate = req.StartDate
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}

	if err := database.GetDB().Save(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	realtime.GetHub().BroadcastEvent(map[string]any{
		"type":    "task_updated",
		"taskId":  task.ID,
		"version": 1,
	})

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
func UpdateTaskStatus(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	task.Status = req.Status
	if err := database.GetDB().Model(task).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	realtime.GetHub().BroadcastEvent(map[string]any{
		"type":    "task_status_changed",
		"taskId":  task.ID,
		"version": 1,
	})

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func DeleteTask(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}

	if err := database.GetDB().Delete(task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	realtime.GetHub().BroadcastEvent(map[string]any{
		"type":    "task_deleted",
		"taskId":  task.ID,
		"version": 1,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      task.ID,
	})
}

// AddTaskSkill handles POST /api/tasks/:id/skills
// Adds or updates a skill requirement on the task
func AddTaskSkill(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}

	var req SkillRequirement
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.NewTaskStore(database.GetDB()).AddSkillRequirement(task.ID, req.SkillID, req.RequiredLevel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill requirement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill requirement added successfully"})
}

// AddTaskDependency handles POST /api/tasks/:id/dependencies
func AddTaskDependency(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}

	var req DependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DependsOnTaskID == task.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A task cannot depend on itself"})
		return
	}

	db := database.GetDB()
	var dep models.Task
	if err := db.Where("id = ?", req.DependsOnTaskID).First(&dep).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dependency task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate dependency"})
		}
		return
	}

	if err := store.NewTaskStore(db).AddDependency(task.ID, req.DependsOnTaskID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add dependency"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Dependency added successfully"})
}

// UnassignTask handles POST /api/tasks/:id/unassign
// Clears the member link; the member's workload is reduced by the task's
// estimated hours, floored at zero.
func UnassignTask(c *gin.Context) {
	task, ok := fetchTask(c)
	if !ok {
		return
	}
	if task.AssignedMemberID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task is not assigned"})
		return
	}

	db := database.GetDB()
	members := store.NewMemberStore(db)
	member, err := members.FindByID(*task.AssignedMemberID)
	if err == nil {
		newWorkload := member.CurrentWorkload - task.EstimatedHours
		if newWorkload < 0 {
			newWorkload = 0
		}
		if err := members.UpdateWorkload(member.ID, newWorkload); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to release workload"})
			return
		}
	}

	if err := store.NewTaskStore(db).Unassign(task.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Task unassigned successfully"})
}

// fetchTask loads the task from the :id path param, writing the error
// response itself when the lookup fails.
func fetchTask(c *gin.Context) (*models.Task, bool) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return nil, false
	}

	task, err := store.NewTaskStore(database.GetDB()).FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return nil, false
	}
	return task, true
}
