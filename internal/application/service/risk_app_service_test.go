package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	appservice "github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/cache"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

type RiskAppServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	svc     *appservice.RiskAppService
	title   *models.RiskTitle
	control *models.RiskControl
}

func (s *RiskAppServiceTestSuite) SetupTest() {
	db := openTestDB(s.T())
	s.ctx = context.Background()
	log := logger.NewNoop()

	catalogs := postgres.NewRiskCatalogRepository(db, log)
	risks := postgres.NewRiskRepository(db, log)
	titleCache := cache.NewTitleCache(catalogs, time.Minute)
	s.svc = appservice.NewRiskAppService(catalogs, risks, titleCache, testMetrics, audit.NewNoopPublisher(), log)

	var err error
	s.title, err = s.svc.CreateTitle(s.ctx, dto.CreateRiskTitleRequest{Title: "Working near water"})
	s.Require().NoError(err)
	s.control, err = s.svc.CreateControl(s.ctx, dto.CreateRiskControlRequest{
		RiskTitleID: s.title.ID,
		ControlText: "Wear life jackets",
	})
	s.Require().NoError(err)
}

func TestRiskAppServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RiskAppServiceTestSuite))
}

func (s *RiskAppServiceTestSuite) TestRateNormalizesInput() {
	resp, err := s.svc.Rate(dto.RateRequest{Likelihood: " Highly Unlikely ", Consequence: "MINOR"})
	s.Require().NoError(err)
	s.Equal("low_risk", resp.Rating)
	s.Equal("highly_unlikely", resp.Likelihood)
}

func (s *RiskAppServiceTestSuite) TestRateBlankUntilBothChosen() {
	resp, err := s.svc.Rate(dto.RateRequest{Likelihood: "likely"})
	s.Require().NoError(err)
	s.Empty(resp.Rating)
}

func (s *RiskAppServiceTestSuite) TestRateRejectsUnknownBand() {
	_, err := s.svc.Rate(dto.RateRequest{Likelihood: "certain doom", Consequence: "minor"})
	s.True(errors.IsValidation(err))
}

func (s *RiskAppServiceTestSuite) TestMatrixEnumerations() {
	m := s.svc.Matrix()
	s.Len(m.Likelihoods, 5)
	s.Len(m.Consequences, 5)
	s.Len(m.Ratings, 4)
}

func (s *RiskAppServiceTestSuite) TestCreateAssessmentComputesRating() {
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 1}
	resp, err := s.svc.CreateAssessment(s.ctx, owner, dto.CreateAssessmentRequest{
		RiskTitleID: s.title.ID,
		Likelihood:  "likely",
		Consequence: "moderate",
		ControlIDs:  []int{s.control.ID},
	})
	s.Require().NoError(err)
	s.Equal("high_risk", resp.Rating)

	listed, err := s.svc.ListOwnerRisks(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Len(listed.Risks, 1)
	s.Equal("high_risk", listed.Risks[0].RatingLabel)
	s.Require().Len(listed.Controls, 1)
	s.Equal(s.control.ID, listed.Controls[0].ControlID)
}

func (s *RiskAppServiceTestSuite) TestCreateAssessmentRejectsUnknownTitle() {
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 1}
	_, err := s.svc.CreateAssessment(s.ctx, owner, dto.CreateAssessmentRequest{
		RiskTitleID: 9999,
		Likelihood:  "likely",
		Consequence: "moderate",
	})
	s.True(errors.IsNotFound(err))
}

func (s *RiskAppServiceTestSuite) TestCreateAssessmentRejectsUnknownBand() {
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 1}
	_, err := s.svc.CreateAssessment(s.ctx, owner, dto.CreateAssessmentRequest{
		RiskTitleID: s.title.ID,
		Likelihood:  "maybe",
		Consequence: "moderate",
	})
	s.True(errors.IsValidation(err))
}

func (s *RiskAppServiceTestSuite) TestUpdateAssessmentRecomputesRating() {
	owner := repository.OwnerRef{Kind: constants.OwnerActivity, ID: 2}
	created, err := s.svc.CreateAssessment(s.ctx, owner, dto.CreateAssessmentRequest{
		RiskTitleID: s.title.ID,
		Likelihood:  "unlikely",
		Consequence: "catastrophic",
	})
	s.Require().NoError(err)
	s.Equal("high_risk", created.Rating)

	updated, err := s.svc.UpdateAssessment(s.ctx, owner, created.RiskInstanceID, dto.UpdateAssessmentRequest{
		Likelihood:  "almost_certain",
		Consequence: "catastrophic",
		ControlIDs:  []int{s.control.ID},
	})
	s.Require().NoError(err)
	s.Equal("extreme_risk", updated.Rating)
}

func (s *RiskAppServiceTestSuite) TestDetachRemovesOwnerControls() {
	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 3}
	created, err := s.svc.CreateAssessment(s.ctx, owner, dto.CreateAssessmentRequest{
		RiskTitleID: s.title.ID,
		Likelihood:  "likely",
		Consequence: "major",
		ControlIDs:  []int{s.control.ID},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Detach(s.ctx, owner, created.RiskInstanceID))

	listed, err := s.svc.ListOwnerRisks(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(listed.Risks)
	s.Empty(listed.Controls)
}

func (s *RiskAppServiceTestSuite) TestListTitlesServedFromCache() {
	first, err := s.svc.ListTitles(s.ctx)
	s.Require().NoError(err)
	s.Len(first, 1)

	// A new title invalidates the cached list.
	_, err = s.svc.CreateTitle(s.ctx, dto.CreateRiskTitleRequest{Title: "Driving on farm tracks"})
	s.Require().NoError(err)

	second, err := s.svc.ListTitles(s.ctx)
	s.Require().NoError(err)
	s.Len(second, 2)
}
