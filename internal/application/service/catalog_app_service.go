package service

import (
	"context"
	"time"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
	"github.com/sue-zadeh/fieldbase/pkg/utils"
)

// CatalogAppService manages the reference catalogs (objectives, checklist
// items, hazards) and predator-control records.
type CatalogAppService struct {
	catalogs  repository.CatalogRepository
	predators repository.PredatorRepository
	auditor   audit.Publisher
	log       logger.Logger
}

// NewCatalogAppService wires the catalog application service.
func NewCatalogAppService(
	catalogs repository.CatalogRepository,
	predators repository.PredatorRepository,
	auditor audit.Publisher,
	log logger.Logger,
) *CatalogAppService {
	return &CatalogAppService{
		catalogs:  catalogs,
		predators: predators,
		auditor:   auditor,
		log:       log.WithComponent("catalog_app_service"),
	}
}

// CreateObjective adds a project objective catalog entry.
func (s *CatalogAppService) CreateObjective(ctx context.Context, req dto.CreateObjectiveRequest) (*models.Objective, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	objective := &models.Objective{Title: req.Title, Measure: req.Measure}
	if err := s.catalogs.CreateObjective(ctx, objective); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventCreated, "objective", objective.ID)
	return objective, nil
}

// ListObjectives returns the objective catalog.
func (s *CatalogAppService) ListObjectives(ctx context.Context) ([]*models.Objective, error) {
	return s.catalogs.ListObjectives(ctx)
}

// DeleteObjective removes an objective catalog entry.
func (s *CatalogAppService) DeleteObjective(ctx context.Context, id int) error {
	if err := s.catalogs.DeleteObjective(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "objective", id)
	return nil
}

// CreateChecklistItem adds a safety checklist entry.
func (s *CatalogAppService) CreateChecklistItem(ctx context.Context, req dto.CreateChecklistItemRequest) (*models.ChecklistItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	item := &models.ChecklistItem{Description: req.Description}
	if err := s.catalogs.CreateChecklistItem(ctx, item); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventCreated, "checklist_item", item.ID)
	return item, nil
}

// ListChecklistItems returns the checklist catalog.
func (s *CatalogAppService) ListChecklistItems(ctx context.Context) ([]*models.ChecklistItem, error) {
	return s.catalogs.ListChecklistItems(ctx)
}

// DeleteChecklistItem removes a checklist entry.
func (s *CatalogAppService) DeleteChecklistItem(ctx context.Context, id int) error {
	if err := s.catalogs.DeleteChecklistItem(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "checklist_item", id)
	return nil
}

// CreateSiteHazard adds a site hazard catalog entry.
func (s *CatalogAppService) CreateSiteHazard(ctx context.Context, req dto.CreateHazardRequest) (*models.SiteHazard, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	hazard := &models.SiteHazard{Title: req.Title}
	if err := s.catalogs.CreateSiteHazard(ctx, hazard); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventCreated, "site_hazard", hazard.ID)
	return hazard, nil
}

// ListSiteHazards returns the site hazard catalog.
func (s *CatalogAppService) ListSiteHazards(ctx context.Context) ([]*models.SiteHazard, error) {
	return s.catalogs.ListSiteHazards(ctx)
}

// DeleteSiteHazard removes a site hazard entry.
func (s *CatalogAppService) DeleteSiteHazard(ctx context.Context, id int) error {
	if err := s.catalogs.DeleteSiteHazard(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "site_hazard", id)
	return nil
}

// CreatePeopleHazard adds a people hazard catalog entry.
func (s *CatalogAppService) CreatePeopleHazard(ctx context.Context, req dto.CreateHazardRequest) (*models.PeopleHazard, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	hazard := &models.PeopleHazard{Title: req.Title}
	if err := s.catalogs.CreatePeopleHazard(ctx, hazard); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventCreated, "people_hazard", hazard.ID)
	return hazard, nil
}

// ListPeopleHazards returns the people hazard catalog.
func (s *CatalogAppService) ListPeopleHazards(ctx context.Context) ([]*models.PeopleHazard, error) {
	return s.catalogs.ListPeopleHazards(ctx)
}

// DeletePeopleHazard removes a people hazard entry.
func (s *CatalogAppService) DeletePeopleHazard(ctx context.Context, id int) error {
	if err := s.catalogs.DeletePeopleHazard(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "people_hazard", id)
	return nil
}

// CreatePredatorRecord stores one predator-control outcome report.
func (s *CatalogAppService) CreatePredatorRecord(ctx context.Context, req dto.CreatePredatorRecordRequest) (*models.PredatorRecord, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	record := &models.PredatorRecord{
		ProjectID:  req.ProjectID,
		SubType:    constants.PredatorSubType(req.SubType),
		Measured:   req.Measured,
		RecordDate: req.RecordDate,
		Rats:       req.Rats,
		Possums:    req.Possums,
		Mustelids:  req.Mustelids,
		Hedgehogs:  req.Hedgehogs,
		Others:     req.Others,
		OthersDesc: req.OthersDesc,
	}
	if err := s.predators.Create(ctx, record); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventCreated, "predator_record", record.ID)
	return record, nil
}

// ListPredatorRecords returns a project's predator-control reports.
func (s *CatalogAppService) ListPredatorRecords(ctx context.Context, projectID int) ([]*models.PredatorRecord, error) {
	return s.predators.ListByProject(ctx, projectID)
}

// UpdatePredatorRecord updates a predator-control report.
func (s *CatalogAppService) UpdatePredatorRecord(ctx context.Context, id int, req dto.UpdatePredatorRecordRequest) (*models.PredatorRecord, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	record, err := s.predators.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.SubType = constants.PredatorSubType(req.SubType)
	record.Measured = req.Measured
	record.RecordDate = req.RecordDate
	record.Rats = req.Rats
	record.Possums = req.Possums
	record.Mustelids = req.Mustelids
	record.Hedgehogs = req.Hedgehogs
	record.Others = req.Others
	record.OthersDesc = req.OthersDesc

	if err := s.predators.Update(ctx, record); err != nil {
		return nil, err
	}
	s.publish(ctx, constants.AuditEventUpdated, "predator_record", id)
	return record, nil
}

// DeletePredatorRecord removes a predator-control report.
func (s *CatalogAppService) DeletePredatorRecord(ctx context.Context, id int) error {
	if err := s.predators.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, constants.AuditEventDeleted, "predator_record", id)
	return nil
}

func (s *CatalogAppService) publish(ctx context.Context, eventType constants.AuditEventType, entity string, id int) {
	s.auditor.Publish(ctx, audit.Event{
		Type:       eventType,
		Entity:     entity,
		EntityID:   id,
		ActorID:    actorID(ctx),
		OccurredAt: time.Now(),
	})
}
