package repository

import (
	"context"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
)

// CatalogRepository manages the flat reference catalogs: objectives,
// checklist items and the two hazard lists.
type CatalogRepository interface {
	CreateObjective(ctx context.Context, o *models.Objective) error
	ListObjectives(ctx context.Context) ([]*models.Objective, error)
	DeleteObjective(ctx context.Context, id int) error

	CreateChecklistItem(ctx context.Context, c *models.ChecklistItem) error
	ListChecklistItems(ctx context.Context) ([]*models.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, id int) error

	CreateSiteHazard(ctx context.Context, h *models.SiteHazard) error
	ListSiteHazards(ctx context.Context) ([]*models.SiteHazard, error)
	DeleteSiteHazard(ctx context.Context, id int) error

	CreatePeopleHazard(ctx context.Context, h *models.PeopleHazard) error
	ListPeopleHazards(ctx context.Context) ([]*models.PeopleHazard, error)
	DeletePeopleHazard(ctx context.Context, id int) error
}

// PredatorRepository manages predator-control outcome records.
type PredatorRepository interface {
	Create(ctx context.Context, record *models.PredatorRecord) error
	FindByID(ctx context.Context, id int) (*models.PredatorRecord, error)
	ListByProject(ctx context.Context, projectID int) ([]*models.PredatorRecord, error)
	Update(ctx context.Context, record *models.PredatorRecord) error
	Delete(ctx context.Context, id int) error
}
