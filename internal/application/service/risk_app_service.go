// Package service contains the application services orchestrating domain
// logic, persistence and the audit stream behind the HTTP handlers.
package service

import (
	"context"
	"time"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	domainservice "github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/cache"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
	"github.com/sue-zadeh/fieldbase/pkg/utils"
)

// RiskAppService orchestrates the risk catalog and owner risk assessments.
type RiskAppService struct {
	catalogs   repository.RiskCatalogRepository
	risks      repository.RiskRepository
	titleCache *cache.TitleCache
	metrics    *monitoring.Metrics
	auditor    audit.Publisher
	log        logger.Logger
}

// NewRiskAppService wires the risk application service.
func NewRiskAppService(
	catalogs repository.RiskCatalogRepository,
	risks repository.RiskRepository,
	titleCache *cache.TitleCache,
	metrics *monitoring.Metrics,
	auditor audit.Publisher,
	log logger.Logger,
) *RiskAppService {
	return &RiskAppService{
		catalogs:   catalogs,
		risks:      risks,
		titleCache: titleCache,
		metrics:    metrics,
		auditor:    auditor,
		log:        log.WithComponent("risk_app_service"),
	}
}

// Rate computes the qualitative rating for a band pair. Blank inputs yield a
// blank rating; a non-empty pair outside the enumerations is rejected.
func (s *RiskAppService) Rate(req dto.RateRequest) (*dto.RateResponse, error) {
	likelihood := domainservice.NormalizeBand(req.Likelihood)
	consequence := domainservice.NormalizeBand(req.Consequence)

	if likelihood != "" && !domainservice.ValidLikelihood(likelihood) {
		return nil, errors.Validation("unknown likelihood band").WithDetail("likelihood", req.Likelihood)
	}
	if consequence != "" && !domainservice.ValidConsequence(consequence) {
		return nil, errors.Validation("unknown consequence band").WithDetail("consequence", req.Consequence)
	}

	return &dto.RateResponse{
		Likelihood:  likelihood,
		Consequence: consequence,
		Rating:      string(domainservice.Rate(likelihood, consequence)),
	}, nil
}

// Matrix returns the closed band enumerations for form rendering.
func (s *RiskAppService) Matrix() *dto.MatrixResponse {
	resp := &dto.MatrixResponse{
		Ratings: []string{
			string(domainservice.LowRisk),
			string(domainservice.ModerateRisk),
			string(domainservice.HighRisk),
			string(domainservice.ExtremeRisk),
		},
	}
	for _, l := range domainservice.Likelihoods() {
		resp.Likelihoods = append(resp.Likelihoods, string(l))
	}
	for _, c := range domainservice.Consequences() {
		resp.Consequences = append(resp.Consequences, string(c))
	}
	return resp
}

// ListTitles returns the risk title catalog through the in-process cache.
func (s *RiskAppService) ListTitles(ctx context.Context) ([]*models.RiskTitle, error) {
	return s.titleCache.ListTitles(ctx)
}

// CreateTitle adds a catalog title and invalidates the cache.
func (s *RiskAppService) CreateTitle(ctx context.Context, req dto.CreateRiskTitleRequest) (*models.RiskTitle, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	title := &models.RiskTitle{Title: req.Title}
	if err := s.catalogs.CreateTitle(ctx, title); err != nil {
		return nil, err
	}
	s.titleCache.Invalidate()
	s.publish(ctx, constants.AuditEventCreated, "risk_title", title.ID)
	return title, nil
}

// DeleteTitle removes a catalog title unless it is read-only.
func (s *RiskAppService) DeleteTitle(ctx context.Context, id int) error {
	if err := s.catalogs.DeleteTitle(ctx, id); err != nil {
		return err
	}
	s.titleCache.Invalidate()
	s.publish(ctx, constants.AuditEventDeleted, "risk_title", id)
	return nil
}

// ListControls returns the controls under one risk title.
func (s *RiskAppService) ListControls(ctx context.Context, riskTitleID int) ([]*models.RiskControl, error) {
	return s.catalogs.ListControlsForTitle(ctx, riskTitleID)
}

// CreateControl adds a control under a risk title.
func (s *RiskAppService) CreateControl(ctx context.Context, req dto.CreateRiskControlRequest) (*models.RiskControl, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	control := &models.RiskControl{RiskTitleID: req.RiskTitleID, ControlText: req.ControlText}
	if err := s.catalogs.CreateControl(ctx, control); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventCreated, "risk_control", control.ID)
	return control, nil
}

// DeleteControl removes a control unless it is read-only.
func (s *RiskAppService) DeleteControl(ctx context.Context, id int) error {
	if err := s.catalogs.DeleteControl(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "risk_control", id)
	return nil
}

// CreateAssessment validates the bands, recomputes the rating from the matrix
// and stores instance, owner link and controls as one transaction.
func (s *RiskAppService) CreateAssessment(ctx context.Context, owner repository.OwnerRef, req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := validateBands(req.Likelihood, req.Consequence); err != nil {
		return nil, err
	}
	if _, err := s.catalogs.FindTitle(ctx, req.RiskTitleID); err != nil {
		return nil, err
	}

	instance := &models.RiskInstance{
		RiskTitleID: req.RiskTitleID,
		Likelihood:  domainservice.NormalizeBand(req.Likelihood),
		Consequence: domainservice.NormalizeBand(req.Consequence),
	}
	instance.RatingLabel = string(domainservice.Rate(instance.Likelihood, instance.Consequence))

	if _, err := s.risks.CreateAssessment(ctx, owner, instance, req.ControlIDs); err != nil {
		return nil, err
	}

	s.metrics.RecordAssessment(string(owner.Kind), instance.RatingLabel)
	s.publish(ctx, constants.AuditEventCreated, "risk_assessment", instance.ID)
	s.log.Info(ctx, "Assessment created",
		logger.String("owner_kind", string(owner.Kind)),
		logger.Int("owner_id", owner.ID),
		logger.String("rating", instance.RatingLabel))

	return assessmentResponse(instance), nil
}

// UpdateAssessment rewrites the bands of an attached instance and replaces
// the owner's chosen controls. The rating is recomputed, never trusted from
// the client.
func (s *RiskAppService) UpdateAssessment(ctx context.Context, owner repository.OwnerRef, riskInstanceID int, req dto.UpdateAssessmentRequest) (*dto.AssessmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := validateBands(req.Likelihood, req.Consequence); err != nil {
		return nil, err
	}

	instance, err := s.risks.FindInstance(ctx, riskInstanceID)
	if err != nil {
		return nil, err
	}

	instance.Likelihood = domainservice.NormalizeBand(req.Likelihood)
	instance.Consequence = domainservice.NormalizeBand(req.Consequence)
	instance.RatingLabel = string(domainservice.Rate(instance.Likelihood, instance.Consequence))

	if err := s.risks.UpdateInstance(ctx, instance); err != nil {
		return nil, err
	}
	if err := s.risks.SetOwnerControls(ctx, owner, instance.ID, req.ControlIDs); err != nil {
		return nil, err
	}

	s.publish(ctx, constants.AuditEventUpdated, "risk_assessment", instance.ID)
	return assessmentResponse(instance), nil
}

// Attach links an existing risk instance to an owner.
func (s *RiskAppService) Attach(ctx context.Context, owner repository.OwnerRef, riskInstanceID int) error {
	if _, err := s.risks.AttachToOwner(ctx, owner, riskInstanceID); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventAttached, "risk_instance", riskInstanceID)
	return nil
}

// Detach removes the owner's link to a risk instance together with the
// owner's control selections under that risk's title. Other owners sharing
// the instance keep theirs.
func (s *RiskAppService) Detach(ctx context.Context, owner repository.OwnerRef, riskInstanceID int) error {
	if err := s.risks.DetachFromOwner(ctx, owner, riskInstanceID); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDetached, "risk_instance", riskInstanceID)
	return nil
}

// ListOwnerRisks returns an owner's attached risks and chosen controls.
func (s *RiskAppService) ListOwnerRisks(ctx context.Context, owner repository.OwnerRef) (*dto.OwnerRisksResponse, error) {
	risks, err := s.risks.ListOwnerRisks(ctx, owner)
	if err != nil {
		return nil, err
	}
	controls, err := s.risks.ListOwnerControlsDetailed(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &dto.OwnerRisksResponse{Risks: risks, Controls: controls}, nil
}

func (s *RiskAppService) publish(ctx context.Context, eventType constants.AuditEventType, entity string, id int) {
	s.auditor.Publish(ctx, audit.Event{
		Type:       eventType,
		Entity:     entity,
		EntityID:   id,
		ActorID:    actorID(ctx),
		OccurredAt: time.Now(),
	})
}

func validateBands(likelihood, consequence string) error {
	if !domainservice.ValidLikelihood(likelihood) {
		return errors.Validation("unknown likelihood band").WithDetail("likelihood", likelihood)
	}
	if !domainservice.ValidConsequence(consequence) {
		return errors.Validation("unknown consequence band").WithDetail("consequence", consequence)
	}
	return nil
}

func assessmentResponse(instance *models.RiskInstance) *dto.AssessmentResponse {
	return &dto.AssessmentResponse{
		RiskInstanceID: instance.ID,
		RiskTitleID:    instance.RiskTitleID,
		Likelihood:     instance.Likelihood,
		Consequence:    instance.Consequence,
		Rating:         instance.RatingLabel,
	}
}

// actorID extracts the authenticated user id placed on the context by the
// auth middleware.
func actorID(ctx context.Context) int {
	if id, ok := ctx.Value(constants.ContextKeyUserID).(int); ok {
		return id
	}
	return 0
}
