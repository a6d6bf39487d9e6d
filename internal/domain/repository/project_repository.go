package repository

import (
	"context"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
)

// ProjectRepository manages project rows and their objective links.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id int) (*models.Project, error)
	FindByName(ctx context.Context, name string) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int) error

	// ReplaceObjectives swaps the project's objective link set for
	// objectiveIDs as a single transaction: on any insert failure the
	// previous set is restored.
	ReplaceObjectives(ctx context.Context, projectID int, objectiveIDs []int) error

	ListObjectiveIDs(ctx context.Context, projectID int) ([]int, error)
}

// ActivityRepository manages activity rows.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	FindByID(ctx context.Context, id int) (*models.Activity, error)
	ListByProject(ctx context.Context, projectID int) ([]*models.Activity, error)
	List(ctx context.Context) ([]*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id int) error
}
