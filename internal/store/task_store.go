package store

import (
	"gorm.io/gorm"

	"project-allocation-api/internal/models"
)

// GormTaskStore persists tasks through GORM.
type GormTaskStore struct {
	db *gorm.DB
}

// NewTaskStore returns a task store bound to db.
func NewTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db}
}

// FindUnassignedByProject returns the project's unassigned tasks ordered by
// deadline, with required skills and dependency ids populated.
func (s *GormTaskStore) FindUnassignedByProject(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Preload("RequiredSkills").
		Where("project_id = ? AND assigned_member_id IS NULL", projectID).
		Order("deadline asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	if err := s.loadDependencies(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByProject returns all tasks of a project.
func (s *GormTaskStore) FindByProject(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Preload("RequiredSkills").
		Where("project_id = ?", projectID).
		Order("deadline asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	if err := s.loadDependencies(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByMember returns all tasks assigned to a member.
func (s *GormTaskStore) FindByMember(memberID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Preload("RequiredSkills").
		Where("assigned_member_id = ?", memberID).
		Order("deadline asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	if err := s.loadDependencies(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID returns one task with skills and dependencies populated.
func (s *GormTaskStore) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Preload("RequiredSkills").Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	tasks := []models.Task{task}
	if err := s.loadDependencies(tasks); err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

// Assign persists the task-to-member link. Assignment resets the status to
// TODO regardless of the previous status; callers rely on this.
func (s *GormTaskStore) Assign(taskID, memberID string) error {
	return s.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]any{
			"assigned_member_id": memberID,
			"status":             models.StatusTodo,
		}).Error
}

// Unassign clears the member link of a task.
func (s *GormTaskStore) Unassign(taskID string) error {
	return s.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("assigned_member_id", nil).Error
}

// AddSkillRequirement upserts a skill requirement on a task.
func (s *GormTaskStore) AddSkillRequirement(taskID, skillID string, requiredLevel int) error {
	req := models.TaskSkill{TaskID: taskID, SkillID: skillID, RequiredLevel: requiredLevel}
	return s.db.Save(&req).Error
}

// AddDependency records that taskID depends on dependsOnTaskID.
func (s *GormTaskStore) AddDependency(taskID, dependsOnTaskID string) error {
	dep := models.TaskDependency{TaskID: taskID, DependsOnTaskID: dependsOnTaskID}
	return s.db.Save(&dep).Error
}

func (s *GormTaskStore) loadDependencies(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]string, len(tasks))
	for i := range tasks {
		ids[i] = tasks[i].ID
	}

	var deps []models.TaskDependency
	if err := s.db.Where("task_id IN ?", ids).Find(&deps).Error; err != nil {
		return err
	}

	byTask := make(map[string][]string, len(deps))
	for _, d := range deps {
		byTask[d.TaskID] = append(byTask[d.TaskID], d.DependsOnTaskID)
	}
	for i := range tasks {
		tasks[i].Dependencies = byTask[tasks[i].ID]
	}
	return nil
}
