package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

// CatalogHandler serves the reference catalogs and predator-control records.
type CatalogHandler struct {
	catalogs *service.CatalogAppService
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(catalogs *service.CatalogAppService) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// CreateObjective handles POST /objectives.
func (h *CatalogHandler) CreateObjective(c *gin.Context) {
	var req dto.CreateObjectiveRequest
	if !bindJSON(c, &req) {
		return
	}
	objective, err := h.catalogs.CreateObjective(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, objective)
}

// ListObjectives handles GET /objectives.
func (h *CatalogHandler) ListObjectives(c *gin.Context) {
	objectives, err := h.catalogs.ListObjectives(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, objectives)
}

// DeleteObjective handles DELETE /objectives/:id.
func (h *CatalogHandler) DeleteObjective(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogs.DeleteObjective(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// CreateChecklistItem handles POST /checklist-items.
func (h *CatalogHandler) CreateChecklistItem(c *gin.Context) {
	var req dto.CreateChecklistItemRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.catalogs.CreateChecklistItem(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, item)
}

// ListChecklistItems handles GET /checklist-items.
func (h *CatalogHandler) ListChecklistItems(c *gin.Context) {
	items, err := h.catalogs.ListChecklistItems(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

// DeleteChecklistItem handles DELETE /checklist-items/:id.
func (h *CatalogHandler) DeleteChecklistItem(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogs.DeleteChecklistItem(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// CreateSiteHazard handles POST /site-hazards.
func (h *CatalogHandler) CreateSiteHazard(c *gin.Context) {
	var req dto.CreateHazardRequest
	if !bindJSON(c, &req) {
		return
	}
	hazard, err := h.catalogs.CreateSiteHazard(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, hazard)
}

// ListSiteHazards handles GET /site-hazards.
func (h *CatalogHandler) ListSiteHazards(c *gin.Context) {
	hazards, err := h.catalogs.ListSiteHazards(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, hazards)
}

// DeleteSiteHazard handles DELETE /site-hazards/:id.
func (h *CatalogHandler) DeleteSiteHazard(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogs.DeleteSiteHazard(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// CreatePeopleHazard handles POST /people-hazards.
func (h *CatalogHandler) CreatePeopleHazard(c *gin.Context) {
	var req dto.CreateHazardRequest
	if !bindJSON(c, &req) {
		return
	}
	hazard, err := h.catalogs.CreatePeopleHazard(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, hazard)
}

// ListPeopleHazards handles GET /people-hazards.
func (h *CatalogHandler) ListPeopleHazards(c *gin.Context) {
	hazards, err := h.catalogs.ListPeopleHazards(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, hazards)
}

// DeletePeopleHazard handles DELETE /people-hazards/:id.
func (h *CatalogHandler) DeletePeopleHazard(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogs.DeletePeopleHazard(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// CreatePredatorRecord handles POST /predator-records.
func (h *CatalogHandler) CreatePredatorRecord(c *gin.Context) {
	var req dto.CreatePredatorRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.catalogs.CreatePredatorRecord(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, record)
}

// ListPredatorRecords handles GET /predator-records?project_id=.
func (h *CatalogHandler) ListPredatorRecords(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Query("project_id"))
	if err != nil || projectID <= 0 {
		handleError(c, errors.Validation("project_id query parameter is required"))
		return
	}
	records, err := h.catalogs.ListPredatorRecords(c.Request.Context(), projectID)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, records)
}

// UpdatePredatorRecord handles PUT /predator-records/:id.
func (h *CatalogHandler) UpdatePredatorRecord(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePredatorRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.catalogs.UpdatePredatorRecord(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, record)
}

// DeletePredatorRecord handles DELETE /predator-records/:id.
func (h *CatalogHandler) DeletePredatorRecord(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogs.DeletePredatorRecord(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}
