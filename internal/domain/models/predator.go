package models

import (
	"time"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// PredatorRecord is one predator-control outcome report for a project:
// traps established, traps checked, or catches broken down by species.
type PredatorRecord struct {
	ID         int                       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID  int                       `gorm:"not null;index" json:"project_id"`
	SubType    constants.PredatorSubType `gorm:"size:32;not null" json:"sub_type"`
	Measured   int                       `json:"measured"`
	RecordDate time.Time                 `json:"record_date"`
	Rats       int                       `json:"rats"`
	Possums    int                       `json:"possums"`
	Mustelids  int                       `json:"mustelids"`
	Hedgehogs  int                       `json:"hedgehogs"`
	Others     int                       `json:"others"`
	OthersDesc string                    `gorm:"size:255" json:"others_description"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}
