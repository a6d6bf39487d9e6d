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

type activityRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewActivityRepository creates the gorm-backed activity repository.
func NewActivityRepository(db *gorm.DB, log logger.Logger) repository.ActivityRepository {
	return &activityRepo{db: db, log: log.WithComponent("activity_repo")}
}

func (r *activityRepo) Create(ctx context.Context, activity *models.Activity) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", activity.ProjectID).Count(&count).Error; err != nil {
		return errors.Database(err)
	}
	if count == 0 {
		return errors.Validation("project_id does not reference an existing project")
	}

	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		r.log.Error(ctx, "Failed to create activity", err, logger.Int("project_id", activity.ProjectID))
		return errors.Database(err)
	}
	return nil
}

func (r *activityRepo) FindByID(ctx context.Context, id int) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("activity")
		}
		return nil, errors.Database(err)
	}
	return &activity, nil
}

func (r *activityRepo) ListByProject(ctx context.Context, projectID int) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("activity_date").
		Find(&activities).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return activities, nil
}

func (r *activityRepo) List(ctx context.Context) ([]*models.Activity, error) {
	var activities []*models.Activity
	if err := r.db.WithContext(ctx).Order("id").Find(&activities).Error; err != nil {
		return nil, errors.Database(err)
	}
	return activities, nil
}

func (r *activityRepo) Update(ctx context.Context, activity *models.Activity) error {
	activity.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("id = ?", activity.ID).
		Updates(activity)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("activity")
	}
	return nil
}

func (r *activityRepo) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Activity{}, id)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("activity")
	}
	return nil
}
