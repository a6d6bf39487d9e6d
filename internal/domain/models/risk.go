package models

import (
	"time"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// RiskTitle is a reusable catalog entry naming a category of risk, e.g.
// "Working near water". Read-only titles are seeded by administrators and
// cannot be deleted.
type RiskTitle struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"size:255;not null;uniqueIndex" json:"title"`
	IsReadOnly bool      `gorm:"not null;default:false" json:"is_read_only"`
	CreatedAt  time.Time `json:"created_at"`
}

// RiskControl is a mitigation text tied to exactly one RiskTitle.
type RiskControl struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RiskTitleID int       `gorm:"not null;index" json:"risk_title_id"`
	ControlText string    `gorm:"size:512;not null" json:"control_text"`
	IsReadOnly  bool      `gorm:"not null;default:false" json:"is_read_only"`
	CreatedAt   time.Time `json:"created_at"`
}

// RiskInstance is one concrete likelihood/consequence assessment of a
// RiskTitle. RatingLabel is derived from the risk matrix and stored
// redundantly for display; every write path recomputes it.
type RiskInstance struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RiskTitleID int       `gorm:"not null;index" json:"risk_title_id"`
	Likelihood  string    `gorm:"size:32;not null" json:"likelihood"`
	Consequence string    `gorm:"size:32;not null" json:"consequence"`
	RatingLabel string    `gorm:"size:32;not null" json:"rating_label"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerRiskLink bridges an owner (project or activity) to a RiskInstance.
// The composite unique index closes the duplicate-attach gap the original
// system left open.
type OwnerRiskLink struct {
	ID             int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerKind      constants.OwnerKind `gorm:"size:16;not null;uniqueIndex:ux_owner_risk,priority:1" json:"owner_kind"`
	OwnerID        int                 `gorm:"not null;uniqueIndex:ux_owner_risk,priority:2" json:"owner_id"`
	RiskInstanceID int                 `gorm:"not null;uniqueIndex:ux_owner_risk,priority:3" json:"risk_instance_id"`
}

// OwnerControlLink bridges an owner to a chosen RiskControl.
type OwnerControlLink struct {
	ID            int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerKind     constants.OwnerKind `gorm:"size:16;not null;uniqueIndex:ux_owner_control,priority:1" json:"owner_kind"`
	OwnerID       int                 `gorm:"not null;uniqueIndex:ux_owner_control,priority:2" json:"owner_id"`
	RiskControlID int                 `gorm:"not null;uniqueIndex:ux_owner_control,priority:3" json:"risk_control_id"`
	IsChecked     bool                `gorm:"not null;default:true" json:"is_checked"`
}
