package handlers

import (
	"errors"
	"net/http"

	"project-allocation-api/internal/database"
	"project-allocation-api/internal/models"
	"project-allocation-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMemberRequest represents the request payload for creating a member
type CreateMemberRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	WeeklyAvailability int    `json:"weeklyAvailability" binding:"min=0"`
}

// UpdateMemberRequest represents the request payload for updating a member
type UpdateMemberRequest struct {
	Name               *string `json:"name"`
	Email              *string `json:"email"`
	WeeklyAvailability *int    `json:"weeklyAvailability"`
}

// MemberSkillRequest adds or updates a proficiency on a member
type MemberSkillRequest struct {
	SkillID          string `json:"skillId" binding:"required"`
	ProficiencyLevel int    `json:"proficiencyLevel" binding:"required,min=1,max=5"`
}

// MemberResponse is a member plus derived workload figures
type MemberResponse struct {
	models.Member
	AvailableHours     float64 `json:"availableHours"`
	WorkloadPercentage float64 `json:"workloadPercentage"`
	Overloaded         bool    `json:"overloaded"`
}

func toMemberResponse(m models.Member) MemberResponse {
	return MemberResponse{
		Member:             m,
		AvailableHours:     m.AvailableHours(),
		WorkloadPercentage: m.WorkloadPercentage(),
		Overloaded:         m.IsOverloaded(),
	}
}

// GetMembers handles GET /api/members
func GetMembers(c *gin.Context) {
	members, err := store.NewMemberStore(database.GetDB()).FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, toMemberResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"members": resp,
		"count":   len(resp),
	})
}

// GetMemberByID handles GET /api/members/:id
func GetMemberByID(c *gin.Context) {
	member, ok := fetchMember(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// CreateMember handles POST /api/members
func CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := models.Member{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Email:              req.Email,
		WeeklyAvailability: req.WeeklyAvailability,
	}
	if err := database.GetDB().Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, toMemberResponse(member))
}

// UpdateMember handles PUT /api/members/:id
func UpdateMember(c *gin.Context) {
	member, ok := fetchMember(c)
	if !ok {
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.WeeklyAvailability != nil {
		if *req.WeeklyAvailability < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weeklyAvailability must be non-negative"})
			return
		}
		member.WeeklyAvailability = *req.WeeklyAvailability
	}

	if err := database.GetDB().Save(member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(*member))
}

// DeleteMember handles DELETE /api/members/:id
func DeleteMember(c *gin.Context) {
	member, ok := fetchMember(c)
	if !ok {
		return
	}

	if err := database.GetDB().Delete(member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member deleted successfully"})
}

// AddMemberSkill handles POST /api/members/:id/skills
func AddMemberSkill(c *gin.Context) {
	member, ok := fetchMember(c)
	if !ok {
		return
	}

	var req MemberSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.NewMemberStore(database.GetDB()).AddSkill(member.ID, req.SkillID, req.ProficiencyLevel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill added successfully"})
}

// RemoveMemberSkill handles DELETE /api/members/:id/skills/:skillId
func RemoveMemberSkill(c *gin.Context) {
	member, ok := fetchMember(c)
	if !ok {
		return
	}

	skillID := c.Param("skillId")
	if skillID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Skill ID is required"})
		return
	}

	if err := store.NewMemberStore(database.GetDB()).RemoveSkill(member.ID, skillID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Skill removed successfully"})
}

// GetMemberTasks handles GET /api/members/:id/tasks
func GetMemberTasks(c *gin.Context) {
	member, ok := fetchMember(c)
	if !ok {
		return
	}

	tasks, err := store.NewTaskStore(database.GetDB()).FindByMember(member.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	for i := range tasks {
		tasks[i].AssignedMemberName = member.Name
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

func fetchMember(c *gin.Context) (*models.Member, bool) {
	memberID := c.Param("id")
	if memberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member ID is required"})
		return nil, false
	}

	member, err := store.NewMemberStore(database.GetDB()).FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member"})
		}
		return nil, false
	}
	return member, true
}
