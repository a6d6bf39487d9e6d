package repository

import (
	"context"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
)

// UserRepository manages staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
	Delete(ctx context.Context, id int) error
}

// VolunteerRepository manages the volunteer catalog.
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	FindByID(ctx context.Context, id int) (*models.Volunteer, error)
	List(ctx context.Context) ([]*models.Volunteer, error)
	Update(ctx context.Context, volunteer *models.Volunteer) error
	Delete(ctx context.Context, id int) error
}
