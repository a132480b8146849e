package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/app/models/dto"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/pkg/apperrors"
)

// HandleAPIError translates service/client errors into the HTTP contract:
// upstream failures keep their status and body text, gate rejections become
// 422 with the reason, validation problems 400, everything unexpected a
// generic 500. Cancelled requests get no body at all.
func HandleAPIError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// The caller went away; whatever we derived is discarded.
		c.Abort()
		return
	}

	if upstream, ok := backend.AsUpstream(err); ok {
		c.JSON(upstream.StatusCode, dto.NewErrorResponse(upstream.Body))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrMissingPrerequisites),
		errors.Is(err, apperrors.ErrInsufficientCredits):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidStudentID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDisciplineNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrCatalogNotReady):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse("Internal Server Error while contacting the progress backend"))
	}
}
