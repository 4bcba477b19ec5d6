package api

import (
	"net/http"

	"gongsil-api/internal/handler/httperr"
	"gongsil-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps the shared sentinels in errs to a status and message.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", err.Error())
	case errs.Is(err, errs.ErrInvalidGesture):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pointer event", err.Error())
	case errs.Is(err, errs.ErrSpaceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Space not found", nil)
	case errs.Is(err, errs.ErrUpstreamRejected):
		httperr.AbortWithError(c, http.StatusConflict, err, "Rejected by origin", nil)
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Origin unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
