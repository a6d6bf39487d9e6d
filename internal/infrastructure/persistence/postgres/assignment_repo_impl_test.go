package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type AssignmentRepoTestSuite struct {
	suite.Suite
	ctx         context.Context
	assignments repository.AssignmentRepository
	volunteers  repository.VolunteerRepository
}

func (s *AssignmentRepoTestSuite) SetupTest() {
	db := openTestDB(s.T())
	s.ctx = context.Background()
	s.assignments = postgres.NewAssignmentRepository(db, logger.NewNoop())
	s.volunteers = postgres.NewVolunteerRepository(db, logger.NewNoop())

	for i := 1; i <= 5; i++ {
		v := &models.Volunteer{
			FirstName: fmt.Sprintf("Vol%d", i),
			LastName:  "Tester",
			Email:     fmt.Sprintf("vol%d@example.org", i),
		}
		s.Require().NoError(s.volunteers.Create(s.ctx, v))
		s.Require().Equal(i, v.ID)
	}
}

func TestAssignmentRepoTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepoTestSuite))
}

func memberIDs(members []models.Member) []int {
	ids := make([]int, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}

func (s *AssignmentRepoTestSuite) TestAttachManyAndListings() {
	kind := constants.AssignProjectVolunteer
	err := s.assignments.AttachMany(s.ctx, kind, 7, []int{3, 5})
	s.Require().NoError(err)

	assigned, err := s.assignments.ListAssigned(s.ctx, kind, 7)
	s.Require().NoError(err)
	s.ElementsMatch([]int{3, 5}, memberIDs(assigned))
	s.Equal("Vol3 Tester", assigned[0].Label)
	s.Equal("vol3@example.org", assigned[0].Email)

	unassigned, err := s.assignments.ListUnassigned(s.ctx, kind, 7)
	s.Require().NoError(err)
	s.ElementsMatch([]int{1, 2, 4}, memberIDs(unassigned))
}

// The assigned and unassigned sets partition the catalog at all times.
func (s *AssignmentRepoTestSuite) TestSetsPartitionCatalog() {
	kind := constants.AssignProjectVolunteer
	steps := [][]int{{1}, {2, 4}, nil}

	for _, attach := range steps {
		s.Require().NoError(s.assignments.AttachMany(s.ctx, kind, 2, attach))

		assigned, err := s.assignments.ListAssigned(s.ctx, kind, 2)
		s.Require().NoError(err)
		unassigned, err := s.assignments.ListUnassigned(s.ctx, kind, 2)
		s.Require().NoError(err)

		union := append(memberIDs(assigned), memberIDs(unassigned)...)
		s.ElementsMatch([]int{1, 2, 3, 4, 5}, union)
	}
}

func (s *AssignmentRepoTestSuite) TestAttachManyIsIdempotent() {
	kind := constants.AssignProjectVolunteer
	s.Require().NoError(s.assignments.AttachMany(s.ctx, kind, 1, []int{1, 2}))
	s.Require().NoError(s.assignments.AttachMany(s.ctx, kind, 1, []int{2, 3}))

	assigned, err := s.assignments.ListAssigned(s.ctx, kind, 1)
	s.Require().NoError(err)
	s.ElementsMatch([]int{1, 2, 3}, memberIDs(assigned))
}

func (s *AssignmentRepoTestSuite) TestAttachManyEmptyIsNoOp() {
	s.NoError(s.assignments.AttachMany(s.ctx, constants.AssignProjectVolunteer, 1, nil))
}

func (s *AssignmentRepoTestSuite) TestAttachManyRejectsUnknownMember() {
	err := s.assignments.AttachMany(s.ctx, constants.AssignProjectVolunteer, 1, []int{1, 42})
	s.True(errors.IsValidation(err))
}

func (s *AssignmentRepoTestSuite) TestKindsAreIsolated() {
	s.Require().NoError(s.assignments.AttachMany(s.ctx, constants.AssignProjectVolunteer, 1, []int{1}))

	// Same owner id under a different kind is a separate bridge.
	assigned, err := s.assignments.ListAssigned(s.ctx, constants.AssignProjectStaff, 1)
	s.Require().NoError(err)
	s.Empty(assigned)
}

func (s *AssignmentRepoTestSuite) TestDetachOne() {
	kind := constants.AssignProjectVolunteer
	s.Require().NoError(s.assignments.AttachMany(s.ctx, kind, 4, []int{1}))

	assigned, err := s.assignments.ListAssigned(s.ctx, kind, 4)
	s.Require().NoError(err)
	s.Require().Len(assigned, 1)

	// Find the link id through the unassigned/assigned diff is not possible,
	// so detach by probing: the first link for this owner has a known id of 1
	// in a fresh database.
	s.Require().NoError(s.assignments.DetachOne(s.ctx, 1))

	assigned, err = s.assignments.ListAssigned(s.ctx, kind, 4)
	s.Require().NoError(err)
	s.Empty(assigned)

	err = s.assignments.DetachOne(s.ctx, 1)
	s.True(errors.IsNotFound(err))
}

func (s *AssignmentRepoTestSuite) TestUnknownKindRejected() {
	_, err := s.assignments.ListAssigned(s.ctx, constants.AssignmentKind("bogus"), 1)
	s.True(errors.IsValidation(err))
}
