// Package repository defines the persistence interfaces of the FieldBase
// domain. Implementations live under internal/infrastructure/persistence.
package repository

import (
	"context"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// OwnerRef identifies the entity a risk or assignment row is attached to.
type OwnerRef struct {
	Kind constants.OwnerKind
	ID   int
}

// OwnerRiskRow is the joined projection of OwnerRiskLink -> RiskInstance ->
// RiskTitle returned by ListOwnerRisks.
type OwnerRiskRow struct {
	RiskInstanceID int    `json:"risk_instance_id"`
	RiskTitleID    int    `json:"risk_title_id"`
	TitleLabel     string `json:"title_label"`
	Likelihood     string `json:"likelihood"`
	Consequence    string `json:"consequence"`
	RatingLabel    string `json:"rating_label"`
}

// OwnerControlRow is the joined projection returned by
// ListOwnerControlsDetailed, used to render checked controls per risk row.
type OwnerControlRow struct {
	LinkID         int    `json:"link_id"`
	OwnerID        int    `json:"owner_id"`
	ControlID      int    `json:"control_id"`
	ControlText    string `json:"control_text"`
	RiskInstanceID int    `json:"risk_instance_id"`
}

// RiskCatalogRepository manages the reusable risk title and control catalogs.
type RiskCatalogRepository interface {
	CreateTitle(ctx context.Context, title *models.RiskTitle) error
	FindTitle(ctx context.Context, id int) (*models.RiskTitle, error)
	ListTitles(ctx context.Context) ([]*models.RiskTitle, error)
	DeleteTitle(ctx context.Context, id int) error

	CreateControl(ctx context.Context, control *models.RiskControl) error
	FindControl(ctx context.Context, id int) (*models.RiskControl, error)
	ListControlsForTitle(ctx context.Context, riskTitleID int) ([]*models.RiskControl, error)
	DeleteControl(ctx context.Context, id int) error
}

// RiskRepository manages risk instances and their owner bridging rows.
type RiskRepository interface {
	CreateInstance(ctx context.Context, instance *models.RiskInstance) error
	FindInstance(ctx context.Context, id int) (*models.RiskInstance, error)
	UpdateInstance(ctx context.Context, instance *models.RiskInstance) error

	// AttachToOwner links an instance to an owner and returns the link id.
	AttachToOwner(ctx context.Context, owner OwnerRef, riskInstanceID int) (int, error)

	// DetachFromOwner removes the owner's link to the instance and, in the
	// same transaction, deletes the owner's control links whose control
	// belongs to the instance's risk title. Other owners are untouched and
	// the instance row itself is kept.
	DetachFromOwner(ctx context.Context, owner OwnerRef, riskInstanceID int) error

	// SetOwnerControls replaces the owner's chosen controls under the
	// instance's risk title with exactly controlIDs, all checked.
	SetOwnerControls(ctx context.Context, owner OwnerRef, riskInstanceID int, controlIDs []int) error

	ListOwnerRisks(ctx context.Context, owner OwnerRef) ([]OwnerRiskRow, error)
	ListOwnerControlsDetailed(ctx context.Context, owner OwnerRef) ([]OwnerControlRow, error)

	// CreateAssessment creates an instance, attaches it to the owner and
	// stores its chosen controls as one all-or-nothing unit.
	CreateAssessment(ctx context.Context, owner OwnerRef, instance *models.RiskInstance, controlIDs []int) (int, error)
}
