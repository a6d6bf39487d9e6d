// Package handlers implements the HTTP endpoints of the FieldBase API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

func requestID(c *gin.Context) string {
	if id, ok := c.Request.Context().Value(constants.ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.SuccessResponse(data, requestID(c)))
}

func handleError(c *gin.Context, err error) {
	c.JSON(errors.StatusOf(err), dto.ErrorResponse(err, requestID(c)))
}

func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		handleError(c, errors.Validation("malformed request body").WithCause(err))
		return false
	}
	return true
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value <= 0 {
		handleError(c, errors.Validation("invalid "+name+" parameter"))
		return 0, false
	}
	return value, true
}

// ownerRef resolves the :owner_kind/:owner_id pair used by the risk and
// assignment routes.
func ownerRef(c *gin.Context) (repository.OwnerRef, bool) {
	kind := constants.OwnerKind(c.Param("owner_kind"))
	if kind != constants.OwnerProject && kind != constants.OwnerActivity {
		handleError(c, errors.Validation("owner_kind must be project or activity"))
		return repository.OwnerRef{}, false
	}
	id, ok := intParam(c, "owner_id")
	if !ok {
		return repository.OwnerRef{}, false
	}
	return repository.OwnerRef{Kind: kind, ID: id}, true
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
