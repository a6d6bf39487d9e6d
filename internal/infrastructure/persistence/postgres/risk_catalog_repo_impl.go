package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type riskCatalogRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewRiskCatalogRepository creates the gorm-backed risk catalog repository.
func NewRiskCatalogRepository(db *gorm.DB, log logger.Logger) repository.RiskCatalogRepository {
	return &riskCatalogRepo{db: db, log: log.WithComponent("risk_catalog_repo")}
}

func (r *riskCatalogRepo) CreateTitle(ctx context.Context, title *models.RiskTitle) error {
	if err := r.db.WithContext(ctx).Create(title).Error; err != nil {
		r.log.Error(ctx, "Failed to create risk title", err, logger.String("title", title.Title))
		return errors.Database(err)
	}
	return nil
}

func (r *riskCatalogRepo) FindTitle(ctx context.Context, id int) (*models.RiskTitle, error) {
	var title models.RiskTitle
	if err := r.db.WithContext(ctx).First(&title, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("risk title")
		}
		return nil, errors.Database(err)
	}
	return &title, nil
}

func (r *riskCatalogRepo) ListTitles(ctx context.Context) ([]*models.RiskTitle, error) {
	var titles []*models.RiskTitle
	if err := r.db.WithContext(ctx).Order("title").Find(&titles).Error; err != nil {
		return nil, errors.Database(err)
	}
	return titles, nil
}

// DeleteTitle removes a risk title. Read-only titles are protected.
func (r *riskCatalogRepo) DeleteTitle(ctx context.Context, id int) error {
	title, err := r.FindTitle(ctx, id)
	if err != nil {
		return err
	}
	if title.IsReadOnly {
		return errors.Forbidden("risk title is read-only")
	}
	if err := r.db.WithContext(ctx).Delete(&models.RiskTitle{}, id).Error; err != nil {
		return errors.Database(err)
	}
	return nil
}

func (r *riskCatalogRepo) CreateControl(ctx context.Context, control *models.RiskControl) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RiskTitle{}).
		Where("id = ?", control.RiskTitleID).Count(&count).Error; err != nil {
		return errors.Database(err)
	}
	if count == 0 {
		return errors.Validation("risk_title_id does not reference an existing risk title")
	}
	if err := r.db.WithContext(ctx).Create(control).Error; err != nil {
		r.log.Error(ctx, "Failed to create risk control", err, logger.Int("risk_title_id", control.RiskTitleID))
		return errors.Database(err)
	}
	return nil
}

func (r *riskCatalogRepo) FindControl(ctx context.Context, id int) (*models.RiskControl, error) {
	var control models.RiskControl
	if err := r.db.WithContext(ctx).First(&control, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("risk control")
		}
		return nil, errors.Database(err)
	}
	return &control, nil
}

func (r *riskCatalogRepo) ListControlsForTitle(ctx context.Context, riskTitleID int) ([]*models.RiskControl, error) {
	var controls []*models.RiskControl
	err := r.db.WithContext(ctx).
		Where("risk_title_id = ?", riskTitleID).
		Order("id").
		Find(&controls).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return controls, nil
}

// DeleteControl removes a risk control. Read-only controls are protected.
func (r *riskCatalogRepo) DeleteControl(ctx context.Context, id int) error {
	control, err := r.FindControl(ctx, id)
	if err != nil {
		return err
	}
	if control.IsReadOnly {
		return errors.Forbidden("risk control is read-only")
	}
	if err := r.db.WithContext(ctx).Delete(&models.RiskControl{}, id).Error; err != nil {
		return errors.Database(err)
	}
	return nil
}
