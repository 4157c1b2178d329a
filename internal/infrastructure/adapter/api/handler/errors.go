package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/lucasferrari/taskboard/internal/domain/error"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP status codes and writes the
// standardized error body. Storage faults are never detailed to clients.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrTodoNotFound),
		errors.Is(err, domainerr.ErrProjectNotFound),
		errors.Is(err, domainerr.ErrUserNotFound),
		errors.Is(err, domainerr.ErrMemberNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, domainerr.ErrDuplicateMember),
		errors.Is(err, domainerr.ErrLastOwner):
		status = http.StatusConflict
		message = err.Error()

	case errors.Is(err, domainerr.ErrNotProjectMember):
		status = http.StatusForbidden
		message = err.Error()

	case errors.Is(err, domainerr.ErrInvalidTitle),
		errors.Is(err, domainerr.ErrInvalidProjectName),
		errors.Is(err, domainerr.ErrInvalidEmail),
		errors.Is(err, domainerr.ErrInvalidName),
		errors.Is(err, domainerr.ErrInvalidRole),
		errors.Is(err, domainerr.ErrInvalidStatus):
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBadRequest writes a 400 with the binding failure message
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}
