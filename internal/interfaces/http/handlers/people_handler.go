package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/application/service"
)

// PeopleHandler serves staff account and volunteer CRUD.
type PeopleHandler struct {
	people *service.PeopleAppService
}

// NewPeopleHandler creates the people handler.
func NewPeopleHandler(people *service.PeopleAppService) *PeopleHandler {
	return &PeopleHandler{people: people}
}

// CreateUser handles POST /users.
func (h *PeopleHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.people.CreateUser(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, user)
}

// GetUser handles GET /users/:id.
func (h *PeopleHandler) GetUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	user, err := h.people.GetUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// ListUsers handles GET /users.
func (h *PeopleHandler) ListUsers(c *gin.Context) {
	users, err := h.people.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, users)
}

// UpdateUser handles PUT /users/:id.
func (h *PeopleHandler) UpdateUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.people.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id.
func (h *PeopleHandler) DeleteUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.people.DeleteUser(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}

// CreateVolunteer handles POST /volunteers.
func (h *PeopleHandler) CreateVolunteer(c *gin.Context) {
	var req dto.CreateVolunteerRequest
	if !bindJSON(c, &req) {
		return
	}
	volunteer, err := h.people.CreateVolunteer(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusCreated, volunteer)
}

// GetVolunteer handles GET /volunteers/:id.
func (h *PeopleHandler) GetVolunteer(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	volunteer, err := h.people.GetVolunteer(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, volunteer)
}

// ListVolunteers handles GET /volunteers.
func (h *PeopleHandler) ListVolunteers(c *gin.Context) {
	volunteers, err := h.people.ListVolunteers(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, volunteers)
}

// UpdateVolunteer handles PUT /volunteers/:id.
func (h *PeopleHandler) UpdateVolunteer(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateVolunteerRequest
	if !bindJSON(c, &req) {
		return
	}
	volunteer, err := h.people.UpdateVolunteer(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	respond(c, http.StatusOK, volunteer)
}

// DeleteVolunteer handles DELETE /volunteers/:id.
func (h *PeopleHandler) DeleteVolunteer(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.people.DeleteVolunteer(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	respondNoContent(c)
}
