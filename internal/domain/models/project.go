// Package models defines the persistent entities of the FieldBase domain.
package models

import (
	"time"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// Project is a field-work project owning activities, assignments and risks.
type Project struct {
	ID                int                     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string                  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Location          string                  `gorm:"size:255" json:"location"`
	StartDate         time.Time               `json:"start_date"`
	Status            constants.ProjectStatus `gorm:"size:32;not null;default:inprogress" json:"status"`
	EmergencyServices string                  `gorm:"size:255" json:"emergency_services"`
	PrimaryContact    string                  `gorm:"size:255" json:"primary_contact"`
	Notes             string                  `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

// ProjectObjectiveLink bridges a project to an objective catalog entry.
// The project's objective set is replaced as one transactional unit.
type ProjectObjectiveLink struct {
	ID          int `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   int `gorm:"not null;uniqueIndex:ux_project_objective,priority:1" json:"project_id"`
	ObjectiveID int `gorm:"not null;uniqueIndex:ux_project_objective,priority:2" json:"objective_id"`
}
