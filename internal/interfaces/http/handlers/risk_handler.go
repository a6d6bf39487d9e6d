package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/application/service"
)

// RiskHandler serves the rating matrix, the risk catalogs and owner
// assessments.
type RiskHandler struct {
	risks *service.RiskAppService
}

// NewRiskHandler creates the risk handler.
func NewRiskHandler(risks *service.RiskAppService) *RiskHandler {
	return &RiskHandler{risks: risks}
}

// Rate handles GET /risk-matrix/rate?likelihood=&consequence=.
func (h *RiskHandler) Rate(c *gin.Context) {
	req := dto.RateRequest{
		Likelihood:  c.Query("likelihood"),
		Consequence: c.Query("consequence"),
	}
	resp, err := h.risks.Rate(req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// Matrix handles GET /risk-matrix.
func (h *RiskHandler) Matrix(c *gin.Context) {
	respond(c, http.StatusOK, h.risks.Matrix())
}

// ListTitles handles GET /risk-titles.
func (h *RiskHandler) ListTitles(c *gin.Context) {
	titles, err := h.risks.ListTitles(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, titles)
}

// CreateTitle handles POST /risk-titles.
func (h *RiskHandler) CreateTitle(c *gin.Context) {
	var req dto.CreateRiskTitleRequest
	if !bindJSON(c, &req) {
		return
	}
	title, err := h.risks.CreateTitle(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, title)
}

// DeleteTitle handles DELETE /risk-titles/:id.
func (h *RiskHandler) DeleteTitle(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.risks.DeleteTitle(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// ListControls handles GET /risk-titles/:id/controls.
func (h *RiskHandler) ListControls(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	controls, err := h.risks.ListControls(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, controls)
}

// CreateControl handles POST /risk-controls.
func (h *RiskHandler) CreateControl(c *gin.Context) {
	var req dto.CreateRiskControlRequest
	if !bindJSON(c, &req) {
		return
	}
	control, err := h.risks.CreateControl(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, control)
}

// DeleteControl handles DELETE /risk-controls/:id.
func (h *RiskHandler) DeleteControl(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.risks.DeleteControl(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// ListOwnerRisks handles GET /:owner_kind/:owner_id/risks.
func (h *RiskHandler) ListOwnerRisks(c *gin.Context) {
	owner, ok := ownerRef(c)
	if !ok {
		return
	}
	resp, err := h.risks.ListOwnerRisks(c.Request.Context(), owner)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// CreateAssessment handles POST /:owner_kind/:owner_id/risks.
func (h *RiskHandler) CreateAssessment(c *gin.Context) {
	owner, ok := ownerRef(c)
	if !ok {
		return
	}
	var req dto.CreateAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.risks.CreateAssessment(c.Request.Context(), owner, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, resp)
}

// UpdateAssessment handles PUT /:owner_kind/:owner_id/risks/:risk_id.
func (h *RiskHandler) UpdateAssessment(c *gin.Context) {
	owner, ok := ownerRef(c)
	if !ok {
		return
	}
	riskID, ok := intParam(c, "risk_id")
	if !ok {
		return
	}
	var req dto.UpdateAssessmentRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.risks.UpdateAssessment(c.Request.Context(), owner, riskID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, resp)
}

// AttachRisk handles POST /:owner_kind/:owner_id/risks/:risk_id. It links an
// existing risk instance to a second owner without creating a new assessment.
func (h *RiskHandler) AttachRisk(c *gin.Context) {
	owner, ok := ownerRef(c)
	if !ok {
		return
	}
	riskID, ok := intParam(c, "risk_id")
	if !ok {
		return
	}
	if err := h.risks.Attach(c.Request.Context(), owner, riskID); err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"risk_instance_id": riskID})
}

// DetachRisk handles DELETE /:owner_kind/:owner_id/risks/:risk_id.
func (h *RiskHandler) DetachRisk(c *gin.Context) {
	owner, ok := ownerRef(c)
	if !ok {
		return
	}
	riskID, ok := intParam(c, "risk_id")
	if !ok {
		return
	}
	if err := h.risks.Detach(c.Request.Context(), owner, riskID); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}
