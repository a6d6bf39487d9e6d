package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appservice "github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/audit"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/cache"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/monitoring"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/internal/interfaces/http/handlers"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

var testMetrics = monitoring.NewMetrics()

type RiskHandlerTestSuite struct {
	suite.Suite
	engine *gin.Engine
}

func (s *RiskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(postgres.Migrate(db))

	log := logger.NewNoop()
	catalogs := postgres.NewRiskCatalogRepository(db, log)
	risks := postgres.NewRiskRepository(db, log)
	svc := appservice.NewRiskAppService(catalogs, risks,
		cache.NewTitleCache(catalogs, time.Minute), testMetrics, audit.NewNoopPublisher(), log)
	h := handlers.NewRiskHandler(svc)

	s.engine = gin.New()
	s.engine.GET("/risk-matrix/rate", h.Rate)
	s.engine.GET("/risk-matrix", h.Matrix)
	s.engine.POST("/risk-titles", h.CreateTitle)
	s.engine.GET("/risk-titles", h.ListTitles)
	s.engine.POST("/risk-controls", h.CreateControl)
	s.engine.POST("/owners/:owner_kind/:owner_id/risks", h.CreateAssessment)
	s.engine.GET("/owners/:owner_kind/:owner_id/risks", h.ListOwnerRisks)
	s.engine.DELETE("/owners/:owner_kind/:owner_id/risks/:risk_id", h.DetachRisk)
}

func TestRiskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RiskHandlerTestSuite))
}

func (s *RiskHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *RiskHandlerTestSuite) TestRateEndpoint() {
	w := s.do(http.MethodGet, "/risk-matrix/rate?likelihood=likely&consequence=moderate", nil)
	s.Equal(http.StatusOK, w.Code)

	resp := envelope(s.T(), w)
	data := resp["data"].(map[string]interface{})
	s.Equal("high_risk", data["rating"])
}

func (s *RiskHandlerTestSuite) TestRateRejectsUnknownBand() {
	w := s.do(http.MethodGet, "/risk-matrix/rate?likelihood=impossible&consequence=moderate", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	resp := envelope(s.T(), w)
	s.False(resp["success"].(bool))
	errObj := resp["error"].(map[string]interface{})
	s.Equal("invalid_request", errObj["code"])
}

func (s *RiskHandlerTestSuite) TestMatrixEndpoint() {
	w := s.do(http.MethodGet, "/risk-matrix", nil)
	s.Equal(http.StatusOK, w.Code)

	resp := envelope(s.T(), w)
	data := resp["data"].(map[string]interface{})
	s.Len(data["likelihoods"].([]interface{}), 5)
	s.Len(data["consequences"].([]interface{}), 5)
}

func (s *RiskHandlerTestSuite) TestAssessmentLifecycle() {
	w := s.do(http.MethodPost, "/risk-titles", gin.H{"title": "Working near water"})
	s.Require().Equal(http.StatusCreated, w.Code)
	titleID := int(envelope(s.T(), w)["data"].(map[string]interface{})["id"].(float64))

	w = s.do(http.MethodPost, "/risk-controls", gin.H{
		"risk_title_id": titleID,
		"control_text":  "Wear life jackets",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	controlID := int(envelope(s.T(), w)["data"].(map[string]interface{})["id"].(float64))

	w = s.do(http.MethodPost, "/owners/project/7/risks", gin.H{
		"risk_title_id": titleID,
		"likelihood":    "unlikely",
		"consequence":   "catastrophic",
		"control_ids":   []int{controlID},
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	created := envelope(s.T(), w)["data"].(map[string]interface{})
	s.Equal("high_risk", created["rating"])
	riskID := int(created["risk_instance_id"].(float64))

	w = s.do(http.MethodGet, "/owners/project/7/risks", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	listed := envelope(s.T(), w)["data"].(map[string]interface{})
	s.Len(listed["risks"].([]interface{}), 1)
	s.Len(listed["controls"].([]interface{}), 1)

	w = s.do(http.MethodDelete, fmt.Sprintf("/owners/project/7/risks/%d", riskID), nil)
	s.Require().Equal(http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/owners/project/7/risks/%d", riskID), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RiskHandlerTestSuite) TestBadOwnerKindRejected() {
	w := s.do(http.MethodGet, "/owners/team/1/risks", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}
