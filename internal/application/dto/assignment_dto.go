package dto

import "github.com/sue-zadeh/fieldbase/internal/domain/models"

// AttachManyRequest links the listed members to the owner in the URL.
// Members already linked are skipped.
type AttachManyRequest struct {
	MemberIDs []int `json:"member_ids" validate:"required,min=1,dive,gt=0"`
}

// AssignmentListResponse returns one side of the assigned/unassigned split.
type AssignmentListResponse struct {
	Members []models.Member `json:"members"`
}
