package service

import (
	"context"
	"time"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
	"github.com/sue-zadeh/fieldbase/pkg/utils"
)

// ProjectWithObjectives is a project and its attached objective ids.
type ProjectWithObjectives struct {
	*models.Project
	ObjectiveIDs []int `json:"objective_ids"`
}

// ProjectAppService orchestrates project and activity CRUD.
type ProjectAppService struct {
	projects   repository.ProjectRepository
	activities repository.ActivityRepository
	auditor    audit.Publisher
	log        logger.Logger
}

// NewProjectAppService wires the project application service.
func NewProjectAppService(
	projects repository.ProjectRepository,
	activities repository.ActivityRepository,
	auditor audit.Publisher,
	log logger.Logger,
) *ProjectAppService {
	return &ProjectAppService{
		projects:   projects,
		activities: activities,
		auditor:    auditor,
		log:        log.WithComponent("project_app_service"),
	}
}

// CreateProject creates a project and attaches its objectives. A duplicate
// name is reported as a conflict.
func (s *ProjectAppService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*ProjectWithObjectives, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByName(ctx, req.Name); err == nil {
		return nil, errors.Conflict("a project with this name already exists")
	}

	project := &models.Project{
		Name:              req.Name,
		Location:          req.Location,
		StartDate:         req.StartDate,
		Status:            projectStatus(req.Status),
		EmergencyServices: req.EmergencyServices,
		PrimaryContact:    req.PrimaryContact,
		Notes:             req.Notes,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	if len(req.ObjectiveIDs) > 0 {
		if err := s.projects.ReplaceObjectives(ctx, project.ID, req.ObjectiveIDs); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, constants.AuditEventCreated, "project", project.ID)
	return s.GetProject(ctx, project.ID)
}

// GetProject returns a project with its objective ids.
func (s *ProjectAppService) GetProject(ctx context.Context, id int) (*ProjectWithObjectives, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	objectiveIDs, err := s.projects.ListObjectiveIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProjectWithObjectives{Project: project, ObjectiveIDs: objectiveIDs}, nil
}

// ListProjects returns all projects.
func (s *ProjectAppService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.projects.List(ctx)
}

// UpdateProject updates project fields and replaces its objective set.
func (s *ProjectAppService) UpdateProject(ctx context.Context, id int, req dto.UpdateProjectRequest) (*ProjectWithObjectives, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.projects.FindByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, errors.Conflict("a project with this name already exists")
	}

	project.Name = req.Name
	project.Location = req.Location
	project.StartDate = req.StartDate
	project.Status = projectStatus(req.Status)
	project.EmergencyServices = req.EmergencyServices
	project.PrimaryContact = req.PrimaryContact
	project.Notes = req.Notes

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	if err := s.projects.ReplaceObjectives(ctx, id, req.ObjectiveIDs); err != nil {
		return nil, err
	}

	s.publish(ctx, constants.AuditEventUpdated, "project", id)
	return s.GetProject(ctx, id)
}

// DeleteProject removes a project.
func (s *ProjectAppService) DeleteProject(ctx context.Context, id int) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "project", id)
	return nil
}

// CreateActivity creates an activity under an existing project.
func (s *ProjectAppService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*models.Activity, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		ProjectID:    req.ProjectID,
		Name:         req.Name,
		ActivityDate: req.ActivityDate,
		Venue:        req.Venue,
		Notes:        req.Notes,
		Status:       req.Status,
	}
	if activity.Status == "" {
		activity.Status = "open"
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, err
	}

	s.publish(ctx, constants.AuditEventCreated, "activity", activity.ID)
	return activity, nil
}

// GetActivity returns one activity.
func (s *ProjectAppService) GetActivity(ctx context.Context, id int) (*models.Activity, error) {
	return s.activities.FindByID(ctx, id)
}

// ListActivities returns all activities, or a project's when projectID > 0.
func (s *ProjectAppService) ListActivities(ctx context.Context, projectID int) ([]*models.Activity, error) {
	if projectID > 0 {
		return s.activities.ListByProject(ctx, projectID)
	}
	return s.activities.List(ctx)
}

// UpdateActivity updates an activity's fields.
func (s *ProjectAppService) UpdateActivity(ctx context.Context, id int, req dto.UpdateActivityRequest) (*models.Activity, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	activity.Name = req.Name
	activity.ActivityDate = req.ActivityDate
	activity.Venue = req.Venue
	activity.Notes = req.Notes
	if req.Status != "" {
		activity.Status = req.Status
	}

	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventUpdated, "activity", id)
	return activity, nil
}

// DeleteActivity removes an activity.
func (s *ProjectAppService) DeleteActivity(ctx context.Context, id int) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "activity", id)
	return nil
}

func (s *ProjectAppService) publish(ctx context.Context, eventType constants.AuditEventType, entity string, id int) {
	s.auditor.Publish(ctx, audit.Event{
		Type:       eventType,
		Entity:     entity,
		EntityID:   id,
		ActorID:    actorID(ctx),
		OccurredAt: time.Now(),
	})
}

func projectStatus(s string) constants.ProjectStatus {
	if s == "" {
		return constants.ProjectInProgress
	}
	return constants.ProjectStatus(s)
}
