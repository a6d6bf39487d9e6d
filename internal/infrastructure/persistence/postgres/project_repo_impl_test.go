package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type ProjectRepoTestSuite struct {
	suite.Suite
	ctx      context.Context
	projects repository.ProjectRepository
	project  *models.Project
}

func (s *ProjectRepoTestSuite) SetupTest() {
	db := openTestDB(s.T())
	s.ctx = context.Background()
	s.projects = postgres.NewProjectRepository(db, logger.NewNoop())

	s.project = &models.Project{Name: "Dune Restoration", Location: "Waikanae"}
	s.Require().NoError(s.projects.Create(s.ctx, s.project))
}

func TestProjectRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepoTestSuite))
}

func (s *ProjectRepoTestSuite) TestCreateAndFind() {
	found, err := s.projects.FindByID(s.ctx, s.project.ID)
	s.Require().NoError(err)
	s.Equal("Dune Restoration", found.Name)

	byName, err := s.projects.FindByName(s.ctx, "Dune Restoration")
	s.Require().NoError(err)
	s.Equal(s.project.ID, byName.ID)

	_, err = s.projects.FindByID(s.ctx, 9999)
	s.True(errors.IsNotFound(err))
}

func (s *ProjectRepoTestSuite) TestDuplicateNameRejected() {
	err := s.projects.Create(s.ctx, &models.Project{Name: "Dune Restoration"})
	s.Error(err)
}

func (s *ProjectRepoTestSuite) TestUpdateMissingIsNotFound() {
	err := s.projects.Update(s.ctx, &models.Project{ID: 9999, Name: "Ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *ProjectRepoTestSuite) TestReplaceObjectivesSwapsSet() {
	s.Require().NoError(s.projects.ReplaceObjectives(s.ctx, s.project.ID, []int{1, 2, 3}))

	ids, err := s.projects.ListObjectiveIDs(s.ctx, s.project.ID)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 3}, ids)

	s.Require().NoError(s.projects.ReplaceObjectives(s.ctx, s.project.ID, []int{2, 5}))

	ids, err = s.projects.ListObjectiveIDs(s.ctx, s.project.ID)
	s.Require().NoError(err)
	s.Equal([]int{2, 5}, ids)
}

// A failing insert rolls the whole replacement back, delete included.
func (s *ProjectRepoTestSuite) TestReplaceObjectivesRollsBackOnFailure() {
	s.Require().NoError(s.projects.ReplaceObjectives(s.ctx, s.project.ID, []int{1, 2}))

	// Duplicate objective id violates the unique bridge index mid-insert.
	err := s.projects.ReplaceObjectives(s.ctx, s.project.ID, []int{3, 3})
	s.Require().Error(err)

	ids, err := s.projects.ListObjectiveIDs(s.ctx, s.project.ID)
	s.Require().NoError(err)
	s.Equal([]int{1, 2}, ids)
}

func (s *ProjectRepoTestSuite) TestReplaceObjectivesUnknownProject() {
	err := s.projects.ReplaceObjectives(s.ctx, 9999, []int{1})
	s.True(errors.IsNotFound(err))
}
