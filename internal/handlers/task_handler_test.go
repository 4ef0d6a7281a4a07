package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-allocation-api/internal/database"
	"project-allocation-api/internal/models"
	"project-allocation-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupTaskRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	database.DB = db

	r := gin.New()
	r.GET("/api/tasks", GetTasks)
	r.GET("/api/tasks/:id", GetTaskByID)
	r.POST("/api/tasks", CreateTask)
	r.PATCH("/api/tasks/:id/status", UpdateTaskStatus)
	r.POST("/api/tasks/:id/dependencies", AddTaskDependency)
	r.POST("/api/tasks/:id/unassign", UnassignTask)
	return r
}

func TestCreateTask_ValidatesProject(t *testing.T) {
	r := setupTaskRouter(t)

	w := postJSON(t, r, "/api/tasks", map[string]any{
		"projectId": "nope",
		"title":     "Orphan",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTask_DefaultsAndSkills(t *testing.T) {
	r := setupTaskRouter(t)
	require.NoError(t, database.GetDB().Create(&models.Project{ID: "p-1", Name: "Relaunch"}).Error)

	w := postJSON(t, r, "/api/tasks", map[string]any{
		"projectId":      "p-1",
		"title":          "API endpoints",
		"estimatedHours": 8,
		"requiredSkills": []map[string]any{
			{"skillId": "go", "requiredLevel": 3},
		},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.Equal(t, models.StatusTodo, task.Status)
	require.Len(t, task.RequiredSkills, 1)
	require.Nil(t, task.AssignedMemberID)
}

func TestUpdateTaskStatus_RejectsUnknownStatus(t *testing.T) {
	r := setupTaskRouter(t)
	require.NoError(t, database.GetDB().Create(&models.Task{
		ID: "t-1", ProjectID: "p-1", Title: "A", Status: models.StatusTodo,
	}).Error)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t-1/status",
		jsonBody(t, map[string]any{"status": "DONE"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddTaskDependency_RejectsSelfReference(t *testing.T) {
	r := setupTaskRouter(t)
	require.NoError(t, database.GetDB().Create(&models.Task{
		ID: "t-1", ProjectID: "p-1", Title: "A", Status: models.StatusTodo,
	}).Error)

	w := postJSON(t, r, "/api/tasks/t-1/dependencies",
		map[string]any{"dependsOnTaskId": "t-1"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/tasks/t-1/dependencies",
		map[string]any{"dependsOnTaskId": "missing"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnassignTask_ReleasesWorkload(t *testing.T) {
	r := setupTaskRouter(t)
	db := database.GetDB()

	require.NoError(t, db.Create(&models.Member{
		ID: "m-1", Name: "Asha", Email: "asha@example.com",
		WeeklyAvailability: 40, CurrentWorkload: 18,
	}).Error)
	memberID := "m-1"
	require.NoError(t, db.Create(&models.Task{
		ID: "t-1", ProjectID: "p-1", Title: "A", Status: models.StatusTodo,
		EstimatedHours: 8, AssignedMemberID: &memberID,
	}).Error)

	w := postJSON(t, r, "/api/tasks/t-1/unassign", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var task models.Task
	require.NoError(t, db.First(&task, "id = ?", "t-1").Error)
	require.Nil(t, task.AssignedMemberID)

	var member models.Member
	require.NoError(t, db.First(&member, "id = ?", "m-1").Error)
	require.InDelta(t, 10.0, member.CurrentWorkload, 1e-9)

	w = postJSON(t, r, "/api/tasks/t-1/unassign", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
