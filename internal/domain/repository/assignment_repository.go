package repository

import (
	"context"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// AssignmentRepository implements the generic owner/member bridging pattern
// shared by volunteers, staff, checklist items and hazards.
type AssignmentRepository interface {
	// ListUnassigned returns every member of the kind's catalog not linked
	// to the owner.
	ListUnassigned(ctx context.Context, kind constants.AssignmentKind, ownerID int) ([]models.Member, error)

	// ListAssigned returns the members currently linked to the owner.
	ListAssigned(ctx context.Context, kind constants.AssignmentKind, ownerID int) ([]models.Member, error)

	// AttachMany bulk-inserts one link per member id. Already-linked members
	// are skipped; an empty list is a no-op.
	AttachMany(ctx context.Context, kind constants.AssignmentKind, ownerID int, memberIDs []int) error

	// DetachOne deletes a single link by its own id. Zero rows affected is
	// reported as a NotFound error for UI feedback.
	DetachOne(ctx context.Context, linkID int) error
}
