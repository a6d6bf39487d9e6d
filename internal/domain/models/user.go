package models

import (
	"time"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// User is a staff account able to log in. The password hash is never
// serialized to API responses.
type User struct {
	ID           int                `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string             `gorm:"size:128;not null" json:"first_name"`
	LastName     string             `gorm:"size:128;not null" json:"last_name"`
	Email        string             `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string             `gorm:"size:255;not null" json:"-"`
	Role         constants.UserRole `gorm:"size:32;not null;default:fieldstaff" json:"role"`
	Phone        string             `gorm:"size:64" json:"phone"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Volunteer is a member of the volunteer catalog. Volunteers have no login.
type Volunteer struct {
	ID                    int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName             string    `gorm:"size:128;not null" json:"first_name"`
	LastName              string    `gorm:"size:128;not null" json:"last_name"`
	Email                 string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone                 string    `gorm:"size:64" json:"phone"`
	EmergencyContact      string    `gorm:"size:255" json:"emergency_contact"`
	EmergencyContactPhone string    `gorm:"size:64" json:"emergency_contact_phone"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
