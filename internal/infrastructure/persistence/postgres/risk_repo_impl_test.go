package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type RiskRepoTestSuite struct {
	suite.Suite
	ctx      context.Context
	catalogs repository.RiskCatalogRepository
	risks    repository.RiskRepository

	title    *models.RiskTitle
	controlA *models.RiskControl
	controlB *models.RiskControl
}

func (s *RiskRepoTestSuite) SetupTest() {
	db := openTestDB(s.T())
	s.ctx = context.Background()
	s.catalogs = postgres.NewRiskCatalogRepository(db, logger.NewNoop())
	s.risks = postgres.NewRiskRepository(db, logger.NewNoop())

	s.title = &models.RiskTitle{Title: "Working near water"}
	s.Require().NoError(s.catalogs.CreateTitle(s.ctx, s.title))

	s.controlA = &models.RiskControl{RiskTitleID: s.title.ID, ControlText: "Wear life jackets"}
	s.controlB = &models.RiskControl{RiskTitleID: s.title.ID, ControlText: "Buddy system at all times"}
	s.Require().NoError(s.catalogs.CreateControl(s.ctx, s.controlA))
	s.Require().NoError(s.catalogs.CreateControl(s.ctx, s.controlB))
}

func TestRiskRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RiskRepoTestSuite))
}

func (s *RiskRepoTestSuite) newInstance(likelihood, consequence string) *models.RiskInstance {
	instance := &models.RiskInstance{
		RiskTitleID: s.title.ID,
		Likelihood:  likelihood,
		Consequence: consequence,
		RatingLabel: string(service.Rate(likelihood, consequence)),
	}
	s.Require().NoError(s.risks.CreateInstance(s.ctx, instance))
	return instance
}

func (s *RiskRepoTestSuite) TestCreateAndUpdateInstancePersistsRating() {
	instance := s.newInstance("unlikely", "catastrophic")
	s.Equal("high_risk", instance.RatingLabel)

	instance.Likelihood = "almost_certain"
	instance.Consequence = "catastrophic"
	instance.RatingLabel = string(service.Rate(instance.Likelihood, instance.Consequence))
	s.Require().NoError(s.risks.UpdateInstance(s.ctx, instance))

	stored, err := s.risks.FindInstance(s.ctx, instance.ID)
	s.Require().NoError(err)
	s.Equal("extreme_risk", stored.RatingLabel)
	s.Equal("almost_certain", stored.Likelihood)
}

func (s *RiskRepoTestSuite) TestUpdateMissingInstanceIsNotFound() {
	err := s.risks.UpdateInstance(s.ctx, &models.RiskInstance{ID: 9999, Likelihood: "likely", Consequence: "minor", RatingLabel: "high_risk"})
	s.True(errors.IsNotFound(err))
}

func (s *RiskRepoTestSuite) TestAttachDetachAndDuplicateAttach() {
	instance := s.newInstance("likely", "moderate")
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 7}

	linkID, err := s.risks.AttachToOwner(s.ctx, owner, instance.ID)
	s.Require().NoError(err)
	s.Positive(linkID)

	_, err = s.risks.AttachToOwner(s.ctx, owner, instance.ID)
	s.Require().Error(err)
	appErr, ok := errors.AsAppError(err)
	s.Require().True(ok)
	s.Equal(constants.ErrCodeConflict, appErr.Code)

	s.Require().NoError(s.risks.DetachFromOwner(s.ctx, owner, instance.ID))

	// Detaching again reports the missing link.
	err = s.risks.DetachFromOwner(s.ctx, owner, instance.ID)
	s.True(errors.IsNotFound(err))
}

func (s *RiskRepoTestSuite) TestDetachCascadeIsOwnerScoped() {
	instance := s.newInstance("quite_possible", "major")
	ownerA := repository.OwnerRef{Kind: constants.OwnerProject, ID: 1}
	ownerB := repository.OwnerRef{Kind: constants.OwnerActivity, ID: 1}

	_, err := s.risks.AttachToOwner(s.ctx, ownerA, instance.ID)
	s.Require().NoError(err)
	_, err = s.risks.AttachToOwner(s.ctx, ownerB, instance.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.risks.SetOwnerControls(s.ctx, ownerA, instance.ID, []int{s.controlA.ID}))
	s.Require().NoError(s.risks.SetOwnerControls(s.ctx, ownerB, instance.ID, []int{s.controlA.ID, s.controlB.ID}))

	s.Require().NoError(s.risks.DetachFromOwner(s.ctx, ownerA, instance.ID))

	// Owner A's control selections are gone.
	rowsA, err := s.risks.ListOwnerControlsDetailed(s.ctx, ownerA)
	s.Require().NoError(err)
	s.Empty(rowsA)

	// Owner B's selections and the instance itself survive.
	rowsB, err := s.risks.ListOwnerControlsDetailed(s.ctx, ownerB)
	s.Require().NoError(err)
	s.Len(rowsB, 2)

	_, err = s.risks.FindInstance(s.ctx, instance.ID)
	s.NoError(err)
}

func (s *RiskRepoTestSuite) TestSetOwnerControlsReplacesSet() {
	instance := s.newInstance("likely", "major")
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 3}
	_, err := s.risks.AttachToOwner(s.ctx, owner, instance.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.risks.SetOwnerControls(s.ctx, owner, instance.ID, []int{s.controlA.ID, s.controlB.ID}))
	rows, err := s.risks.ListOwnerControlsDetailed(s.ctx, owner)
	s.Require().NoError(err)
	s.Len(rows, 2)

	s.Require().NoError(s.risks.SetOwnerControls(s.ctx, owner, instance.ID, []int{s.controlB.ID}))
	rows, err = s.risks.ListOwnerControlsDetailed(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(s.controlB.ID, rows[0].ControlID)
	s.Equal(instance.ID, rows[0].RiskInstanceID)
}

func (s *RiskRepoTestSuite) TestSetOwnerControlsRejectsForeignControl() {
	otherTitle := &models.RiskTitle{Title: "Driving on farm tracks"}
	s.Require().NoError(s.catalogs.CreateTitle(s.ctx, otherTitle))
	foreign := &models.RiskControl{RiskTitleID: otherTitle.ID, ControlText: "Check tyre pressure"}
	s.Require().NoError(s.catalogs.CreateControl(s.ctx, foreign))

	instance := s.newInstance("unlikely", "minor")
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 4}
	_, err := s.risks.AttachToOwner(s.ctx, owner, instance.ID)
	s.Require().NoError(err)

	err = s.risks.SetOwnerControls(s.ctx, owner, instance.ID, []int{foreign.ID})
	s.True(errors.IsValidation(err))
}

func (s *RiskRepoTestSuite) TestListOwnerRisksJoinsTitle() {
	instance := s.newInstance("likely", "moderate")
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 5}
	_, err := s.risks.AttachToOwner(s.ctx, owner, instance.ID)
	s.Require().NoError(err)

	rows, err := s.risks.ListOwnerRisks(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("Working near water", rows[0].TitleLabel)
	s.Equal("high_risk", rows[0].RatingLabel)
	s.Equal(instance.ID, rows[0].RiskInstanceID)
}

func (s *RiskRepoTestSuite) TestCreateAssessmentIsAtomic() {
	owner := repository.OwnerRef{Kind: constants.OwnerActivity, ID: 9}
	instance := &models.RiskInstance{
		RiskTitleID: s.title.ID,
		Likelihood:  "likely",
		Consequence: "catastrophic",
		RatingLabel: string(service.Rate("likely", "catastrophic")),
	}

	// Control from nowhere fails validation; nothing must be left behind.
	_, err := s.risks.CreateAssessment(s.ctx, owner, instance, []int{9999})
	s.Require().Error(err)

	risks, err := s.risks.ListOwnerRisks(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(risks)

	// Happy path stores instance, link and controls together.
	instance.ID = 0
	id, err := s.risks.CreateAssessment(s.ctx, owner, instance, []int{s.controlA.ID})
	s.Require().NoError(err)
	s.Positive(id)

	risks, err = s.risks.ListOwnerRisks(s.ctx, owner)
	s.Require().NoError(err)
	s.Len(risks, 1)

	controls, err := s.risks.ListOwnerControlsDetailed(s.ctx, owner)
	s.Require().NoError(err)
	s.Len(controls, 1)
}

func (s *RiskRepoTestSuite) TestReadOnlyCatalogRowsAreProtected() {
	protected := &models.RiskTitle{Title: "Seeded: working alone", IsReadOnly: true}
	s.Require().NoError(s.catalogs.CreateTitle(s.ctx, protected))

	err := s.catalogs.DeleteTitle(s.ctx, protected.ID)
	s.True(errors.IsForbidden(err))

	lockedControl := &models.RiskControl{RiskTitleID: protected.ID, ControlText: "Carry a PLB", IsReadOnly: true}
	s.Require().NoError(s.catalogs.CreateControl(s.ctx, lockedControl))

	err = s.catalogs.DeleteControl(s.ctx, lockedControl.ID)
	s.True(errors.IsForbidden(err))
}
