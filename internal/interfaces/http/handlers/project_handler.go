package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/application/service"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

// ProjectHandler serves project and activity CRUD.
type ProjectHandler struct {
	projects *service.ProjectAppService
}

// NewProjectHandler creates the project handler.
func NewProjectHandler(projects *service.ProjectAppService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, project)
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, project)
}

// List handles GET /projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, projects)
}

// Update handles PUT /projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projects.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, project)
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.projects.DeleteProject(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// CreateActivity handles POST /activities.
func (h *ProjectHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	activity, err := h.projects.CreateActivity(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, activity)
}

// GetActivity handles GET /activities/:id.
func (h *ProjectHandler) GetActivity(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	activity, err := h.projects.GetActivity(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, activity)
}

// ListActivities handles GET /activities?project_id=.
func (h *ProjectHandler) ListActivities(c *gin.Context) {
	projectID := 0
	if raw := c.Query("project_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			handleError(c, errors.Validation("invalid project_id query parameter"))
			return
		}
		projectID = parsed
	}
	activities, err := h.projects.ListActivities(c.Request.Context(), projectID)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, activities)
}

// UpdateActivity handles PUT /activities/:id.
func (h *ProjectHandler) UpdateActivity(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	activity, err := h.projects.UpdateActivity(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, activity)
}

// DeleteActivity handles DELETE /activities/:id.
func (h *ProjectHandler) DeleteActivity(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.projects.DeleteActivity(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}
