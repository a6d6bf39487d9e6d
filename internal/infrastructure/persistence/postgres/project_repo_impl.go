package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type projectRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewProjectRepository creates the gorm-backed project repository.
func NewProjectRepository(db *gorm.DB, log logger.Logger) repository.ProjectRepository {
	return &projectRepo{db: db, log: log.WithComponent("project_repo")}
}

func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		r.log.Error(ctx, "Failed to create project", err, logger.String("name", project.Name))
		return errors.Database(err)
	}
	r.log.Info(ctx, "Project created", logger.Int("id", project.ID), logger.String("name", project.Name))
	return nil
}

func (r *projectRepo) FindByID(ctx context.Context, id int) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("project")
		}
		return nil, errors.Database(err)
	}
	return &project, nil
}

func (r *projectRepo) FindByName(ctx context.Context, name string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("project")
		}
		return nil, errors.Database(err)
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, errors.Database(err)
	}
	return projects, nil
}

func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(project)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("project")
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("project")
	}
	r.log.Info(ctx, "Project deleted", logger.Int("id", id))
	return nil
}

// ReplaceObjectives swaps the project's objective set as one transaction.
// If any insert fails the delete is rolled back and the previous set stands.
func (r *projectRepo) ReplaceObjectives(ctx context.Context, projectID int, objectiveIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Project{}).Where("id = ?", projectID).Count(&count).Error; err != nil {
			return errors.Database(err)
		}
		if count == 0 {
			return errors.NotFound("project")
		}

		err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectObjectiveLink{}).Error
		if err != nil {
			return errors.Database(err)
		}

		for _, objectiveID := range objectiveIDs {
			link := models.ProjectObjectiveLink{ProjectID: projectID, ObjectiveID: objectiveID}
			if err := tx.Create(&link).Error; err != nil {
				return errors.Database(err)
			}
		}
		return nil
	})
}

func (r *projectRepo) ListObjectiveIDs(ctx context.Context, projectID int) ([]int, error) {
	var ids []int
	err := r.db.WithContext(ctx).
		Model(&models.ProjectObjectiveLink{}).
		Where("project_id = ?", projectID).
		Order("objective_id").
		Pluck("objective_id", &ids).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return ids, nil
}
