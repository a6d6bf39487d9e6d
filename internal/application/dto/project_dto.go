package dto

import "time"

// CreateProjectRequest creates a project. Objectives are attached in the same
// transaction as the project row.
type CreateProjectRequest struct {
	Name              string    `json:"name" validate:"required,max=255"`
	Location          string    `json:"location" validate:"max=255"`
	StartDate         time.Time `json:"start_date"`
	Status            string    `json:"status" validate:"omitempty,oneof=inprogress completed onhold archived"`
	EmergencyServices string    `json:"emergency_services" validate:"max=255"`
	PrimaryContact    string    `json:"primary_contact" validate:"max=255"`
	Notes             string    `json:"notes"`
	ObjectiveIDs      []int     `json:"objective_ids"`
}

// UpdateProjectRequest updates project fields and replaces the objective set.
type UpdateProjectRequest struct {
	Name              string    `json:"name" validate:"required,max=255"`
	Location          string    `json:"location" validate:"max=255"`
	StartDate         time.Time `json:"start_date"`
	Status            string    `json:"status" validate:"omitempty,oneof=inprogress completed onhold archived"`
	EmergencyServices string    `json:"emergency_services" validate:"max=255"`
	PrimaryContact    string    `json:"primary_contact" validate:"max=255"`
	Notes             string    `json:"notes"`
	ObjectiveIDs      []int     `json:"objective_ids"`
}

// CreateActivityRequest creates a dated activity under a project.
type CreateActivityRequest struct {
	ProjectID    int       `json:"project_id" validate:"required,gt=0"`
	Name         string    `json:"name" validate:"required,max=255"`
	ActivityDate time.Time `json:"activity_date"`
	Venue        string    `json:"venue" validate:"max=255"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status" validate:"omitempty,oneof=open inprogress completed onhold archived"`
}

// UpdateActivityRequest updates an activity's fields.
type UpdateActivityRequest struct {
	Name         string    `json:"name" validate:"required,max=255"`
	ActivityDate time.Time `json:"activity_date"`
	Venue        string    `json:"venue" validate:"max=255"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status" validate:"omitempty,oneof=open inprogress completed onhold archived"`
}
