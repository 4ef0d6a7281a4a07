package main

import (
	"fmt"
	"log"
	"time"

	"project-allocation-api/internal/config"
	"project-allocation-api/internal/database"
	"project-allocation-api/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// newSeedCmd creates the "server seed" subcommand. It loads a small demo
// dataset: a skill catalog, members with proficiencies, one project with
// unassigned tasks, and an admin account.
func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a demo dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			database.InitDB(cfg.DatabasePath)
			return seed()
		},
	}
}

func seed() error {
	db := database.GetDB()

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{ID: uuid.NewString(), Username: "admin", Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	skills := map[string]models.Skill{
		"backend":  {ID: uuid.NewString(), Name: "Backend Development", Category: "Engineering"},
		"frontend": {ID: uuid.NewString(), Name: "Frontend Development", Category: "Engineering"},
		"database": {ID: uuid.NewString(), Name: "Database Design", Category: "Engineering"},
		"design":   {ID: uuid.NewString(), Name: "UI Design", Category: "Design"},
	}
	for _, s := range skills {
		if err := db.Create(&s).Error; err != nil {
			return fmt.Errorf("seed skill %s: %w", s.Name, err)
		}
	}

	members := []struct {
		name   string
		email  string
		weekly int
		skills map[string]int
	}{
		{"Alice Martin", "alice@example.com", 40, map[string]int{"backend": 5, "database": 4}},
		{"Bruno Keller", "bruno@example.com", 40, map[string]int{"frontend": 4, "design": 3}},
		{"Chloe Durand", "chloe@example.com", 20, map[string]int{"backend": 3, "frontend": 3}},
	}
	for _, m := range members {
		member := models.Member{
			ID:                 uuid.NewString(),
			Name:               m.name,
			Email:              m.email,
			WeeklyAvailability: m.weekly,
		}
		for key, level := range m.skills {
			member.Skills = append(member.Skills, models.MemberSkill{
				MemberID:         member.ID,
				SkillID:          skills[key].ID,
				ProficiencyLevel: level,
			})
		}
		if err := db.Create(&member).Error; err != nil {
			return fmt.Errorf("seed member %s: %w", m.name, err)
		}
	}

	project := models.Project{
		ID:          uuid.NewString(),
		Name:        "Website Relaunch",
		Description: "Rebuild of the public website and its API",
	}
	if err := db.Create(&project).Error; err != nil {
		return fmt.Errorf("seed project: %w", err)
	}

	deadline := func(days int) *time.Time {
		d := time.Now().AddDate(0, 0, days)
		return &d
	}
	tasks := []struct {
		title    string
		hours    float64
		priority models.TaskPriority
		deadline *time.Time
		skills   map[string]int
	}{
		{"Design API schema", 16, models.PriorityUrgent, deadline(7), map[string]int{"backend": 3, "database": 3}},
		{"Build landing page", 20, models.PriorityHigh, deadline(14), map[string]int{"frontend": 3}},
		{"Set up database migrations", 8, models.PriorityMedium, deadline(10), map[string]int{"database": 2}},
		{"Style guide", 12, models.PriorityLow, nil, map[string]int{"design": 2}},
	}
	for _, t := range tasks {
		task := models.Task{
			ID:             uuid.NewString(),
			ProjectID:      project.ID,
			Title:          t.title,
			EstimatedHours: t.hours,
			Priority:       t.priority,
			Deadline:       t.deadline,
		}
		for key, level := range t.skills {
			task.RequiredSkills = append(task.RequiredSkills, models.TaskSkill{
				TaskID:        task.ID,
				SkillID:       skills[key].ID,
				RequiredLevel: level,
			})
		}
		if err := db.Create(&task).Error; err != nil {
			return fmt.Errorf("seed task %s: %w", t.title, err)
		}
	}

	log.Printf("Seeded %d skills, %d members, 1 project, %d tasks", len(skills), len(members), len(tasks))
	return nil
}
