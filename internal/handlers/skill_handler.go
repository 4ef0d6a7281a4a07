package handlers

import (
	"net/http"

	"project-allocation-api/internal/database"
	"project-allocation-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSkillRequest represents the request payload for creating a skill
type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// GetSkills handles GET /api/skills
func GetSkills(c *gin.Context) {
	var skills []models.Skill
	if err := database.GetDB().Order("name").Find(&skills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skills": skills,
		"count":  len(skills),
	})
}

// CreateSkill handles POST /api/skills
func CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skill := models.Skill{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: req.Category,
	}
	if err := database.GetDB().Create(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}

	c.JSON(http.StatusCreated, skill)
}
