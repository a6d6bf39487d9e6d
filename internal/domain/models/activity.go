package models

import "time"

// Activity is a dated piece of field work carried out under a project.
type Activity struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID    int       `gorm:"not null;index" json:"project_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	ActivityDate time.Time `json:"activity_date"`
	Venue        string    `gorm:"size:255" json:"venue"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Status       string    `gorm:"size:32;default:open" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
