package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/handlers/dto"
)

// respondError converte erros do service em respostas RFC 7807.
// Erros não classificados são logados e respondidos com 500 sem detalhes.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var domainErr *domainerrors.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := statusFor(domainErr); ok {
			dto.Respond(c, dto.DomainErrorResponse(c, domainErr, status))
			return
		}
	}

	logger.Error("unexpected error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	dto.Respond(c, dto.InternalErrorResponseI18n(c))
}

func statusFor(err *domainerrors.DomainError) (int, bool) {
	switch {
	case errors.Is(err, domainerrors.ErrDuplicate):
		return dto.StatusDuplicate, true
	case errors.Is(err, domainerrors.ErrRelatedNotFound):
		return http.StatusBadRequest, true
	case domainerrors.IsNotFound(err):
		return http.StatusNotFound, true
	case errors.Is(err, domainerrors.ErrValidation):
		return http.StatusBadRequest, true
	default:
		return 0, false
	}
}
