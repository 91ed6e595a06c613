package handler

import (
	"errors"
	"net/http"

	"github.com/finsight/finsight/internal/api/response"
	"github.com/finsight/finsight/pkg/models"
)

// writeServiceError maps a classified advisor error onto an HTTP status.
// Upstream provider failures surface as 502, provider rate limiting as
// 503, everything else as 500. The body carries only the fixed French
// message, never the raw cause.
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *models.ServiceError
	if !errors.As(err, &svcErr) {
		response.Error(w, http.StatusInternalServerError,
			string(models.CodeGenericError), models.UserMessage(models.CodeGenericError), nil)
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Code {
	case models.CodeNetworkError, models.CodeAuthError, models.CodeQuotaExceeded:
		status = http.StatusBadGateway
	case models.CodeRateLimit:
		status = http.StatusServiceUnavailable
	}
	response.Error(w, status, string(svcErr.Code), svcErr.Message, nil)
}
