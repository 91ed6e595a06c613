package advisor

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/finsight/finsight/pkg/models"
)

// Classify maps a raw transport/SDK error onto the closed ServiceError
// taxonomy. First match wins:
//
//  1. "fetch" in the message, or a Go-level network failure -> NETWORK_ERROR
//  2. HTTP 401, or "API key" in the message                 -> AUTH_ERROR
//  3. HTTP 429                                              -> RATE_LIMIT
//  4. HTTP 403 with "quota" in the message                  -> QUOTA_EXCEEDED
//  5. anything else                                         -> GENERIC_ERROR
//
// Classification is pure: the same input shape always yields the same code.
// The original cause is retained in Details for diagnostics only.
func Classify(err error) *models.ServiceError {
	return models.NewServiceError(classifyCode(err), err)
}

func classifyCode(err error) models.ErrorCode {
	if err == nil {
		return models.CodeGenericError
	}

	msg := err.Error()
	status := statusOf(err)

	switch {
	case strings.Contains(msg, "fetch") || isNetworkError(err):
		return models.CodeNetworkError
	case status == http.StatusUnauthorized || strings.Contains(msg, "API key"):
		return models.CodeAuthError
	case status == http.StatusTooManyRequests:
		return models.CodeRateLimit
	case status == http.StatusForbidden && strings.Contains(msg, "quota"):
		return models.CodeQuotaExceeded
	default:
		return models.CodeGenericError
	}
}

// statusOf extracts the HTTP status carried by go-openai error types.
// Returns 0 when the error carries no status.
func statusOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
