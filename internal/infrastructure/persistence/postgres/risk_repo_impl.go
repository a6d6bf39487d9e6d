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

type riskRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewRiskRepository creates the gorm-backed risk instance and bridging
// repository.
func NewRiskRepository(db *gorm.DB, log logger.Logger) repository.RiskRepository {
	return &riskRepo{db: db, log: log.WithComponent("risk_repo")}
}

func (r *riskRepo) CreateInstance(ctx context.Context, instance *models.RiskInstance) error {
	now := time.Now()
	instance.CreatedAt = now
	instance.UpdatedAt = now
	if err := r.db.WithContext(ctx).Create(instance).Error; err != nil {
		r.log.Error(ctx, "Failed to create risk instance", err,
			logger.Int("risk_title_id", instance.RiskTitleID))
		return errors.Database(err)
	}
	return nil
}

func (r *riskRepo) FindInstance(ctx context.Context, id int) (*models.RiskInstance, error) {
	var instance models.RiskInstance
	if err := r.db.WithContext(ctx).First(&instance, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("risk instance")
		}
		return nil, errors.Database(err)
	}
	return &instance, nil
}

func (r *riskRepo) UpdateInstance(ctx context.Context, instance *models.RiskInstance) error {
	instance.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.RiskInstance{}).
		Where("id = ?", instance.ID).
		Updates(map[string]interface{}{
			"likelihood":   instance.Likelihood,
			"consequence":  instance.Consequence,
			"rating_label": instance.RatingLabel,
			"updated_at":   instance.UpdatedAt,
		})
	if result.Error != nil {
		r.log.Error(ctx, "Failed to update risk instance", result.Error, logger.Int("id", instance.ID))
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("risk instance")
	}
	return nil
}

func (r *riskRepo) AttachToOwner(ctx context.Context, owner repository.OwnerRef, riskInstanceID int) (int, error) {
	var linkID int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := attachRisk(tx, owner, riskInstanceID)
		if err != nil {
			return err
		}
		linkID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return linkID, nil
}

// attachRisk inserts the owner/instance bridge row inside tx.
func attachRisk(tx *gorm.DB, owner repository.OwnerRef, riskInstanceID int) (int, error) {
	var count int64
	if err := tx.Model(&models.RiskInstance{}).Where("id = ?", riskInstanceID).Count(&count).Error; err != nil {
		return 0, errors.Database(err)
	}
	if count == 0 {
		return 0, errors.NotFound("risk instance")
	}

	if err := tx.Model(&models.OwnerRiskLink{}).
		Where("owner_kind = ? AND owner_id = ? AND risk_instance_id = ?", owner.Kind, owner.ID, riskInstanceID).
		Count(&count).Error; err != nil {
		return 0, errors.Database(err)
	}
	if count > 0 {
		return 0, errors.Conflict("risk already attached to this owner")
	}

	link := models.OwnerRiskLink{
		OwnerKind:      owner.Kind,
		OwnerID:        owner.ID,
		RiskInstanceID: riskInstanceID,
	}
	if err := tx.Create(&link).Error; err != nil {
		return 0, errors.Database(err)
	}
	return link.ID, nil
}

// DetachFromOwner removes the bridge row and cascades to the owner's control
// links under the instance's risk title. The cascade is owner-scoped: other
// owners' selections for the same instance survive, as does the instance row.
func (r *riskRepo) DetachFromOwner(ctx context.Context, owner repository.OwnerRef, riskInstanceID int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var instance models.RiskInstance
		if err := tx.First(&instance, riskInstanceID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NotFound("risk instance")
			}
			return errors.Database(err)
		}

		result := tx.Where("owner_kind = ? AND owner_id = ? AND risk_instance_id = ?",
			owner.Kind, owner.ID, riskInstanceID).
			Delete(&models.OwnerRiskLink{})
		if result.Error != nil {
			return errors.Database(result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NotFound("owner risk link")
		}

		controlIDs := tx.Model(&models.RiskControl{}).
			Select("id").
			Where("risk_title_id = ?", instance.RiskTitleID)
		err := tx.Where("owner_kind = ? AND owner_id = ? AND risk_control_id IN (?)",
			owner.Kind, owner.ID, controlIDs).
			Delete(&models.OwnerControlLink{}).Error
		if err != nil {
			return errors.Database(err)
		}
		return nil
	})
}

// SetOwnerControls replaces the owner's control selection under the
// instance's risk title, delete-then-reinsert, as one transaction.
func (r *riskRepo) SetOwnerControls(ctx context.Context, owner repository.OwnerRef, riskInstanceID int, controlIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return setControls(tx, owner, riskInstanceID, controlIDs)
	})
}

func setControls(tx *gorm.DB, owner repository.OwnerRef, riskInstanceID int, controlIDs []int) error {
	var instance models.RiskInstance
	if err := tx.First(&instance, riskInstanceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("risk instance")
		}
		return errors.Database(err)
	}

	// Every supplied control must belong to the instance's risk title.
	if len(controlIDs) > 0 {
		var count int64
		err := tx.Model(&models.RiskControl{}).
			Where("id IN ? AND risk_title_id = ?", controlIDs, instance.RiskTitleID).
			Count(&count).Error
		if err != nil {
			return errors.Database(err)
		}
		if count != int64(len(controlIDs)) {
			return errors.Validation("one or more controls do not belong to the risk title")
		}
	}

	titleControls := tx.Model(&models.RiskControl{}).
		Select("id").
		Where("risk_title_id = ?", instance.RiskTitleID)
	err := tx.Where("owner_kind = ? AND owner_id = ? AND risk_control_id IN (?)",
		owner.Kind, owner.ID, titleControls).
		Delete(&models.OwnerControlLink{}).Error
	if err != nil {
		return errors.Database(err)
	}

	for _, controlID := range controlIDs {
		link := models.OwnerControlLink{
			OwnerKind:     owner.Kind,
			OwnerID:       owner.ID,
			RiskControlID: controlID,
			IsChecked:     true,
		}
		if err := tx.Create(&link).Error; err != nil {
			return errors.Database(err)
		}
	}
	return nil
}

func (r *riskRepo) ListOwnerRisks(ctx context.Context, owner repository.OwnerRef) ([]repository.OwnerRiskRow, error) {
	var rows []repository.OwnerRiskRow
	err := r.db.WithContext(ctx).
		Table("owner_risk_links").
		Select(`risk_instances.id AS risk_instance_id,
			risk_instances.risk_title_id AS risk_title_id,
			risk_titles.title AS title_label,
			risk_instances.likelihood,
			risk_instances.consequence,
			risk_instances.rating_label`).
		Joins("JOIN risk_instances ON risk_instances.id = owner_risk_links.risk_instance_id").
		Joins("JOIN risk_titles ON risk_titles.id = risk_instances.risk_title_id").
		Where("owner_risk_links.owner_kind = ? AND owner_risk_links.owner_id = ?", owner.Kind, owner.ID).
		Order("risk_instances.id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return rows, nil
}

func (r *riskRepo) ListOwnerControlsDetailed(ctx context.Context, owner repository.OwnerRef) ([]repository.OwnerControlRow, error) {
	var rows []repository.OwnerControlRow
	err := r.db.WithContext(ctx).
		Table("owner_control_links").
		Select(`owner_control_links.id AS link_id,
			owner_control_links.owner_id AS owner_id,
			risk_controls.id AS control_id,
			risk_controls.control_text AS control_text,
			owner_risk_links.risk_instance_id AS risk_instance_id`).
		Joins("JOIN risk_controls ON risk_controls.id = owner_control_links.risk_control_id").
		Joins("JOIN risk_instances ON risk_instances.risk_title_id = risk_controls.risk_title_id").
		Joins(`JOIN owner_risk_links ON owner_risk_links.risk_instance_id = risk_instances.id
			AND owner_risk_links.owner_kind = owner_control_links.owner_kind
			AND owner_risk_links.owner_id = owner_control_links.owner_id`).
		Where("owner_control_links.owner_kind = ? AND owner_control_links.owner_id = ?", owner.Kind, owner.ID).
		Order("owner_control_links.id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return rows, nil
}

// CreateAssessment creates the instance, attaches it and stores the chosen
// controls in one transaction, so a failure cannot leave partial state.
func (r *riskRepo) CreateAssessment(ctx context.Context, owner repository.OwnerRef, instance *models.RiskInstance, controlIDs []int) (int, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		instance.CreatedAt = now
		instance.UpdatedAt = now
		if err := tx.Create(instance).Error; err != nil {
			return errors.Database(err)
		}
		if _, err := attachRisk(tx, owner, instance.ID); err != nil {
			return err
		}
		if len(controlIDs) > 0 {
			if err := setControls(tx, owner, instance.ID, controlIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.log.Info(ctx, "Risk assessment created",
		logger.String("owner_kind", string(owner.Kind)),
		logger.Int("owner_id", owner.ID),
		logger.Int("risk_instance_id", instance.ID),
		logger.Int("controls", len(controlIDs)),
	)
	return instance.ID, nil
}
