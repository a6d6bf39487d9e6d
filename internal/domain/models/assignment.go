package models

import "github.com/sue-zadeh/fieldbase/pkg/constants"

// AssignmentLink is a generic owner/member bridging row. Kind selects which
// of the original system's bridging tables the row belongs to; the composite
// unique index keeps a member assigned at most once per owner.
type AssignmentLink struct {
	ID       int                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind     constants.AssignmentKind `gorm:"size:32;not null;uniqueIndex:ux_assignment,priority:1" json:"kind"`
	OwnerID  int                      `gorm:"not null;uniqueIndex:ux_assignment,priority:2" json:"owner_id"`
	MemberID int                      `gorm:"not null;uniqueIndex:ux_assignment,priority:3" json:"member_id"`
}

// Member is the projection of a catalog row returned by assignment listings.
// Label carries the human-readable identity of the member (volunteer name,
// checklist description, hazard title).
type Member struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Email string `json:"email,omitempty"`
}
