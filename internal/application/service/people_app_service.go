package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
	"github.com/sue-zadeh/fieldbase/pkg/utils"
)

// PeopleAppService orchestrates staff account and volunteer CRUD.
type PeopleAppService struct {
	users      repository.UserRepository
	volunteers repository.VolunteerRepository
	auditor    audit.Publisher
	log        logger.Logger
}

// NewPeopleAppService wires the people application service.
func NewPeopleAppService(
	users repository.UserRepository,
	volunteers repository.VolunteerRepository,
	auditor audit.Publisher,
	log logger.Logger,
) *PeopleAppService {
	return &PeopleAppService{
		users:      users,
		volunteers: volunteers,
		auditor:    auditor,
		log:        log.WithComponent("people_app_service"),
	}
}

// CreateUser registers a staff account with a bcrypt password hash.
func (s *PeopleAppService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, errors.Conflict("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         constants.UserRole(req.Role),
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, constants.AuditEventCreated, "user", user.ID)
	return user, nil
}

// GetUser returns one staff account.
func (s *PeopleAppService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// ListUsers returns all staff accounts.
func (s *PeopleAppService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// UpdateUser updates a staff account; a non-empty password replaces the hash.
func (s *PeopleAppService) UpdateUser(ctx context.Context, id int, req dto.UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil && existing.ID != id {
		return nil, errors.Conflict("a user with this email already exists")
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Role = constants.UserRole(req.Role)
	user.Phone = req.Phone

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Internal(err)
		}
		if err := s.users.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, constants.AuditEventUpdated, "user", id)
	return user, nil
}

// DeleteUser removes a staff account.
func (s *PeopleAppService) DeleteUser(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "user", id)
	return nil
}

// CreateVolunteer adds a volunteer to the catalog.
func (s *PeopleAppService) CreateVolunteer(ctx context.Context, req dto.CreateVolunteerRequest) (*models.Volunteer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	volunteer := &models.Volunteer{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}
	if err := s.volunteers.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	s.publish(ctx, constants.AuditEventCreated, "volunteer", volunteer.ID)
	return volunteer, nil
}

// GetVolunteer returns one volunteer.
func (s *PeopleAppService) GetVolunteer(ctx context.Context, id int) (*models.Volunteer, error) {
	return s.volunteers.FindByID(ctx, id)
}

// ListVolunteers returns the volunteer catalog.
func (s *PeopleAppService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	return s.volunteers.List(ctx)
}

// UpdateVolunteer updates a volunteer's details.
func (s *PeopleAppService) UpdateVolunteer(ctx context.Context, id int, req dto.UpdateVolunteerRequest) (*models.Volunteer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	volunteer, err := s.volunteers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	volunteer.FirstName = req.FirstName
	volunteer.LastName = req.LastName
	volunteer.Email = req.Email
	volunteer.Phone = req.Phone
	volunteer.EmergencyContact = req.EmergencyContact
	volunteer.EmergencyContactPhone = req.EmergencyContactPhone

	if err := s.volunteers.Update(ctx, volunteer); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventUpdated, "volunteer", id)
	return volunteer, nil
}

// DeleteVolunteer removes a volunteer from the catalog.
func (s *PeopleAppService) DeleteVolunteer(ctx context.Context, id int) error {
	if err := s.volunteers.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "volunteer", id)
	return nil
}

func (s *PeopleAppService) publish(ctx context.Context, eventType constants.AuditEventType, entity string, id int) {
	s.auditor.Publish(ctx, audit.Event{
		Type:       eventType,
		Entity:     entity,
		EntityID:   id,
		ActorID:    actorID(ctx),
		OccurredAt: time.Now(),
	})
}
