package service

import (
	"context"
	"time"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
	"github.com/sue-zadeh/fieldbase/pkg/utils"
)

var assignmentKinds = map[constants.AssignmentKind]bool{
	constants.AssignProjectVolunteer:    true,
	constants.AssignProjectStaff:        true,
	constants.AssignProjectChecklist:    true,
	constants.AssignActivityChecklist:   true,
	constants.AssignProjectSiteHazard:   true,
	constants.AssignProjectPeopleHazard: true,
}

// ParseAssignmentKind maps a URL segment to a known bridge kind.
func ParseAssignmentKind(s string) (constants.AssignmentKind, error) {
	kind := constants.AssignmentKind(s)
	if !assignmentKinds[kind] {
		return "", errors.Validation("unknown assignment kind").WithDetail("kind", s)
	}
	return kind, nil
}

// AssignmentAppService exposes the generic owner/member bridging operations.
type AssignmentAppService struct {
	assignments repository.AssignmentRepository
	metrics     *monitoring.Metrics
	auditor     audit.Publisher
	log         logger.Logger
}

// NewAssignmentAppService wires the assignment application service.
func NewAssignmentAppService(
	assignments repository.AssignmentRepository,
	metrics *monitoring.Metrics,
	auditor audit.Publisher,
	log logger.Logger,
) *AssignmentAppService {
	return &AssignmentAppService{
		assignments: assignments,
		metrics:     metrics,
		auditor:     auditor,
		log:         log.WithComponent("assignment_app_service"),
	}
}

// ListUnassigned returns the catalog members not linked to the owner.
func (s *AssignmentAppService) ListUnassigned(ctx context.Context, kind constants.AssignmentKind, ownerID int) ([]models.Member, error) {
	return s.assignments.ListUnassigned(ctx, kind, ownerID)
}

// ListAssigned returns the members linked to the owner.
func (s *AssignmentAppService) ListAssigned(ctx context.Context, kind constants.AssignmentKind, ownerID int) ([]models.Member, error) {
	return s.assignments.ListAssigned(ctx, kind, ownerID)
}

// AttachMany links the requested members to the owner, skipping members that
// are already linked, then returns the refreshed assigned list.
func (s *AssignmentAppService) AttachMany(ctx context.Context, kind constants.AssignmentKind, ownerID int, req dto.AttachManyRequest) ([]models.Member, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.assignments.AttachMany(ctx, kind, ownerID, req.MemberIDs); err != nil {
		return nil, err
	}

	s.metrics.RecordAssignmentWrite(string(kind), "attach")
	s.auditor.Publish(ctx, audit.Event{
		Type:       constants.AuditEventAttached,
		Entity:     string(kind),
		EntityID:   ownerID,
		ActorID:    actorID(ctx),
		OccurredAt: time.Now(),
	})
	s.log.Info(ctx, "Members attached",
		logger.String("kind", string(kind)),
		logger.Int("owner_id", ownerID),
		logger.Int("count", len(req.MemberIDs)))

	return s.assignments.ListAssigned(ctx, kind, ownerID)
}

// DetachOne removes a single link row by id.
func (s *AssignmentAppService) DetachOne(ctx context.Context, kind constants.AssignmentKind, linkID int) error {
	if err := s.assignments.DetachOne(ctx, linkID); err != nil {
		return err
	}
	s.metrics.RecordAssignmentWrite(string(kind), "detach")
	s.auditor.Publish(ctx, audit.Event{
		Type:       constants.AuditEventDetached,
		Entity:     string(kind),
		EntityID:   linkID,
		ActorID:    actorID(ctx),
		OccurredAt: time.Now(),
	})
	return nil
}
