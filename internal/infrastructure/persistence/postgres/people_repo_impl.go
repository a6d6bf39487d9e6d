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

type userRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewUserRepository creates the gorm-backed staff account repository.
func NewUserRepository(db *gorm.DB, log logger.Logger) repository.UserRepository {
	return &userRepo{db: db, log: log.WithComponent("user_repo")}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.log.Error(ctx, "Failed to create user", err, logger.String("email", user.Email))
		return errors.Database(err)
	}
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user")
		}
		return nil, errors.Database(err)
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user")
		}
		return nil, errors.Database(err)
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, errors.Database(err)
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(user)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("user")
	}
	return nil
}

func (r *userRepo) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"password_hash": hash, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("user")
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("user")
	}
	return nil
}

type volunteerRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewVolunteerRepository creates the gorm-backed volunteer repository.
func NewVolunteerRepository(db *gorm.DB, log logger.Logger) repository.VolunteerRepository {
	return &volunteerRepo{db: db, log: log.WithComponent("volunteer_repo")}
}

func (r *volunteerRepo) Create(ctx context.Context, volunteer *models.Volunteer) error {
	now := time.Now()
	volunteer.CreatedAt = now
	volunteer.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(volunteer).Error; err != nil {
		r.log.Error(ctx, "Failed to create volunteer", err, logger.String("email", volunteer.Email))
		return errors.Database(err)
	}
	return nil
}

func (r *volunteerRepo) FindByID(ctx context.Context, id int) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.WithContext(ctx).First(&volunteer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("volunteer")
		}
		return nil, errors.Database(err)
	}
	return &volunteer, nil
}

func (r *volunteerRepo) List(ctx context.Context) ([]*models.Volunteer, error) {
	var volunteers []*models.Volunteer
	if err := r.db.WithContext(ctx).Order("id").Find(&volunteers).Error; err != nil {
		return nil, errors.Database(err)
	}
	return volunteers, nil
}

func (r *volunteerRepo) Update(ctx context.Context, volunteer *models.Volunteer) error {
	volunteer.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Where("id = ?", volunteer.ID).
		Updates(volunteer)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("volunteer")
	}
	return nil
}

func (r *volunteerRepo) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Volunteer{}, id)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("volunteer")
	}
	return nil
}
