package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type catalogRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewCatalogRepository creates the gorm-backed reference catalog repository.
func NewCatalogRepository(db *gorm.DB, log logger.Logger) repository.CatalogRepository {
	return &catalogRepo{db: db, log: log.WithComponent("catalog_repo")}
}

func (r *catalogRepo) create(ctx context.Context, value interface{}) error {
	if err := r.db.WithContext(ctx).Create(value).Error; err != nil {
		return errors.Database(err)
	}
	return nil
}

func (r *catalogRepo) deleteByID(ctx context.Context, model interface{}, id int, resource string) error {
	result := r.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound(resource)
	}
	return nil
}

func (r *catalogRepo) CreateObjective(ctx context.Context, o *models.Objective) error {
	return r.create(ctx, o)
}

func (r *catalogRepo) ListObjectives(ctx context.Context) ([]*models.Objective, error) {
	var objectives []*models.Objective
	if err := r.db.WithContext(ctx).Order("id").Find(&objectives).Error; err != nil {
		return nil, errors.Database(err)
	}
	return objectives, nil
}

func (r *catalogRepo) DeleteObjective(ctx context.Context, id int) error {
	return r.deleteByID(ctx, &models.Objective{}, id, "objective")
}

func (r *catalogRepo) CreateChecklistItem(ctx context.Context, c *models.ChecklistItem) error {
	return r.create(ctx, c)
}

func (r *catalogRepo) ListChecklistItems(ctx context.Context) ([]*models.ChecklistItem, error) {
	var items []*models.ChecklistItem
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, errors.Database(err)
	}
	return items, nil
}

func (r *catalogRepo) DeleteChecklistItem(ctx context.Context, id int) error {
	return r.deleteByID(ctx, &models.ChecklistItem{}, id, "checklist item")
}

func (r *catalogRepo) CreateSiteHazard(ctx context.Context, h *models.SiteHazard) error {
	return r.create(ctx, h)
}

func (r *catalogRepo) ListSiteHazards(ctx context.Context) ([]*models.SiteHazard, error) {
	var hazards []*models.SiteHazard
	if err := r.db.WithContext(ctx).Order("id").Find(&hazards).Error; err != nil {
		return nil, errors.Database(err)
	}
	return hazards, nil
}

func (r *catalogRepo) DeleteSiteHazard(ctx context.Context, id int) error {
	return r.deleteByID(ctx, &models.SiteHazard{}, id, "site hazard")
}

func (r *catalogRepo) CreatePeopleHazard(ctx context.Context, h *models.PeopleHazard) error {
	return r.create(ctx, h)
}

func (r *catalogRepo) ListPeopleHazards(ctx context.Context) ([]*models.PeopleHazard, error) {
	var hazards []*models.PeopleHazard
	if err := r.db.WithContext(ctx).Order("id").Find(&hazards).Error; err != nil {
		return nil, errors.Database(err)
	}
	return hazards, nil
}

func (r *catalogRepo) DeletePeopleHazard(ctx context.Context, id int) error {
	return r.deleteByID(ctx, &models.PeopleHazard{}, id, "people hazard")
}
