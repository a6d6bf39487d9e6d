package models

import "time"

// Objective is a reusable project objective catalog entry.
type Objective struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Measure   string    `gorm:"size:255" json:"measure"`
	CreatedAt time.Time `json:"created_at"`
}

// ChecklistItem is a reusable safety checklist entry assignable to projects
// and activities.
type ChecklistItem struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"size:512;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// SiteHazard is a site-level hazard catalog entry.
type SiteHazard struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:512;not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// PeopleHazard is an activity/people hazard catalog entry.
type PeopleHazard struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:512;not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
