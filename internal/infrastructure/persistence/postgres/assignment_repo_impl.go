package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// memberSource describes where a kind's member catalog lives and how to
// project it into a Member row. The label expression uses ANSI || concat so
// it runs on both postgres and the sqlite test driver.
type memberSource struct {
	table     string
	labelExpr string
	emailExpr string
}

var memberSources = map[constants.AssignmentKind]memberSource{
	constants.AssignProjectVolunteer:    {table: "volunteers", labelExpr: "first_name || ' ' || last_name", emailExpr: "email"},
	constants.AssignProjectStaff:        {table: "users", labelExpr: "first_name || ' ' || last_name", emailExpr: "email"},
	constants.AssignProjectChecklist:    {table: "checklist_items", labelExpr: "description", emailExpr: "''"},
	constants.AssignActivityChecklist:   {table: "checklist_items", labelExpr: "description", emailExpr: "''"},
	constants.AssignProjectSiteHazard:   {table: "site_hazards", labelExpr: "title", emailExpr: "''"},
	constants.AssignProjectPeopleHazard: {table: "people_hazards", labelExpr: "title", emailExpr: "''"},
}

type assignmentRepo struct {
	db  *gorm.DB
	log logger.Logger
}

// NewAssignmentRepository creates the gorm-backed generic assignment
// repository.
func NewAssignmentRepository(db *gorm.DB, log logger.Logger) repository.AssignmentRepository {
	return &assignmentRepo{db: db, log: log.WithComponent("assignment_repo")}
}

func sourceFor(kind constants.AssignmentKind) (memberSource, error) {
	src, ok := memberSources[kind]
	if !ok {
		return memberSource{}, errors.Validation(fmt.Sprintf("unknown assignment kind: %s", kind))
	}
	return src, nil
}

func (r *assignmentRepo) ListUnassigned(ctx context.Context, kind constants.AssignmentKind, ownerID int) ([]models.Member, error) {
	src, err := sourceFor(kind)
	if err != nil {
		return nil, err
	}

	linked := r.db.Model(&models.AssignmentLink{}).
		Select("member_id").
		Where("kind = ? AND owner_id = ?", kind, ownerID)

	var members []models.Member
	err = r.db.WithContext(ctx).
		Table(src.table).
		Select(fmt.Sprintf("id, %s AS label, %s AS email", src.labelExpr, src.emailExpr)).
		Where("id NOT IN (?)", linked).
		Order("id").
		Scan(&members).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return members, nil
}

func (r *assignmentRepo) ListAssigned(ctx context.Context, kind constants.AssignmentKind, ownerID int) ([]models.Member, error) {
	src, err := sourceFor(kind)
	if err != nil {
		return nil, err
	}

	var members []models.Member
	err = r.db.WithContext(ctx).
		Table(src.table).
		Select(fmt.Sprintf("%s.id, %s AS label, %s AS email", src.table, src.labelExpr, src.emailExpr)).
		Joins(fmt.Sprintf("JOIN assignment_links ON assignment_links.member_id = %s.id", src.table)).
		Where("assignment_links.kind = ? AND assignment_links.owner_id = ?", kind, ownerID).
		Order(src.table + ".id").
		Scan(&members).Error
	if err != nil {
		return nil, errors.Database(err)
	}
	return members, nil
}

// AttachMany links each member to the owner. Members already linked are
// skipped via conflict-ignore, so re-sending a selection is idempotent.
func (r *assignmentRepo) AttachMany(ctx context.Context, kind constants.AssignmentKind, ownerID int, memberIDs []int) error {
	if len(memberIDs) == 0 {
		return nil
	}
	src, err := sourceFor(kind)
	if err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Table(src.table).Where("id IN ?", memberIDs).Count(&count).Error; err != nil {
		return errors.Database(err)
	}
	if count != int64(len(memberIDs)) {
		return errors.Validation("one or more members do not exist in the catalog")
	}

	links := make([]models.AssignmentLink, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		links = append(links, models.AssignmentLink{Kind: kind, OwnerID: ownerID, MemberID: memberID})
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
	if err != nil {
		r.log.Error(ctx, "Failed to attach members", err,
			logger.String("kind", string(kind)),
			logger.Int("owner_id", ownerID),
		)
		return errors.Database(err)
	}
	return nil
}

func (r *assignmentRepo) DetachOne(ctx context.Context, linkID int) error {
	result := r.db.WithContext(ctx).Delete(&models.AssignmentLink{}, linkID)
	if result.Error != nil {
		return errors.Database(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("assignment link")
	}
	return nil
}
