package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// AssignmentHandler serves the generic owner/member bridging endpoints. The
// same four routes cover volunteers, staff, checklist items and hazards; the
// :kind segment selects the bridge.
type AssignmentHandler struct {
	assignments *service.AssignmentAppService
}

// NewAssignmentHandler creates the assignment handler.
func NewAssignmentHandler(assignments *service.AssignmentAppService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

func (h *AssignmentHandler) kindAndOwner(c *gin.Context) (constants.AssignmentKind, int, bool) {
	kind, err := service.ParseAssignmentKind(c.Param("kind"))
	if err != nil {
		handleError(c, err)
		return "", 0, false
	}
	ownerID, ok := intParam(c, "owner_id")
	if !ok {
		return "", 0, false
	}
	return kind, ownerID, true
}

// ListUnassigned handles GET /assignments/:kind/:owner_id/unassigned.
func (h *AssignmentHandler) ListUnassigned(c *gin.Context) {
	kind, ownerID, ok := h.kindAndOwner(c)
	if !ok {
		return
	}
	members, err := h.assignments.ListUnassigned(c.Request.Context(), kind, ownerID)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.AssignmentListResponse{Members: members})
}

// ListAssigned handles GET /assignments/:kind/:owner_id/assigned.
func (h *AssignmentHandler) ListAssigned(c *gin.Context) {
	kind, ownerID, ok := h.kindAndOwner(c)
	if !ok {
		return
	}
	members, err := h.assignments.ListAssigned(c.Request.Context(), kind, ownerID)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.AssignmentListResponse{Members: members})
}

// AttachMany handles POST /assignments/:kind/:owner_id.
func (h *AssignmentHandler) AttachMany(c *gin.Context) {
	kind, ownerID, ok := h.kindAndOwner(c)
	if !ok {
		return
	}
	var req dto.AttachManyRequest
	if !bindJSON(c, &req) {
		return
	}
	members, err := h.assignments.AttachMany(c.Request.Context(), kind, ownerID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.AssignmentListResponse{Members: members})
}

// DetachOne handles DELETE /assignments/:kind/links/:link_id.
func (h *AssignmentHandler) DetachOne(c *gin.Context) {
	kind, err := service.ParseAssignmentKind(c.Param("kind"))
	if err != nil {
		handleError(c, err)
		return
	}
	linkID, ok := intParam(c, "link_id")
	if !ok {
		return
	}
	if err := h.assignments.DetachOne(c.Request.Context(), kind, linkID); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}
