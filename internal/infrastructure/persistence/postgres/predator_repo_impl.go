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

type predatorRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewPredatorRepository creates the gorm-backed predator-control repository.
func NewPredatorRepository(db *gorm.DB, log logger.Logger) repository.PredatorRepository {
	return &predatorRepo{db: db, log: log.WithComponent("predator_repo")}
}

func (r *predatorRepo) Create(ctx context.Context, record *models.PredatorRecord) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", record.ProjectID).Count(&count).Error; err != nil {
		return errors.Database(err)
	}
	if count == 0 {
		return errors.Validation("project_id does not reference an existing project")
	}

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		r.log.Error(ctx, "Failed to create predator record", err, logger.Int("project_id", record.ProjectID))
		return errors.Database(err)
	}
	return nil
}

func (r *predatorRepo) FindByID(ctx context.Context, id int) (*models.PredatorRecord, error) {
	var record models.PredatorRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("predator record")
		}
		return nil, errors.Database(err)
	}
	return &record, nil
}

func (r *predatorRepo) ListByProject(ctx context.Context, projectID int) ([]*models.PredatorRecord, error) {
	var records []*models.PredatorRecord
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("record_date").
		Find(&records).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return records, nil
}

func (r *predatorRepo) Update(ctx context.Context, record *models.PredatorRecord) error {
	record.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PredatorRecord{}).
		Where("id = ?", record.ID).
		Updates(record)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("predator record")
	}
	return nil
}

func (r *predatorRepo) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.PredatorRecord{}, id)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("predator record")
	}
	return nil
}
