package models

import "time"

// ErrorCode is the closed taxonomy of classified model-call failures.
type ErrorCode string

const (
	CodeNetworkError  ErrorCode = "NETWORK_ERROR"
	CodeAuthError     ErrorCode = "AUTH_ERROR"
	CodeRateLimit     ErrorCode = "RATE_LIMIT"
	CodeQuotaExceeded ErrorCode = "QUOTA_EXCEEDED"
	CodeGenericError  ErrorCode = "GENERIC_ERROR"
)

// userMessages holds the fixed user-facing French message for each code.
// The code fully determines the message; Details never reaches end users.
var userMessages = map[ErrorCode]string{
	CodeNetworkError:  "Problème de connexion. Vérifiez votre réseau et réessayez.",
	CodeAuthError:     "Erreur d'authentification du service IA. Contactez le support.",
	CodeRateLimit:     "Trop de requêtes. Patientez quelques instants avant de réessayer.",
	CodeQuotaExceeded: "Le quota du service IA est dépassé. Réessayez plus tard.",
	CodeGenericError:  "Une erreur inattendue s'est produite. Veuillez réessayer.",
}

// UserMessage returns the fixed French message for a code. Unknown codes
// map to the generic message.
func UserMessage(code ErrorCode) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return userMessages[CodeGenericError]
}

// ServiceError is the classified error surfaced to callers of the advisor
// layer. Message is user-facing; Details is the original cause and is for
// diagnostics only.
type ServiceError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   error     `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Details }

// NewServiceError builds a ServiceError for a code, retaining the cause.
func NewServiceError(code ErrorCode, cause error) *ServiceError {
	return &ServiceError{
		Code:      code,
		Message:   UserMessage(code),
		Details:   cause,
		Timestamp: time.Now().UTC(),
	}
}
