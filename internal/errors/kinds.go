package errors

import "net/http"

// Kind classifies an application error so the HTTP boundary can map it to a
// status code without inspecting internals.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindStorage    Kind = "STORAGE"
	KindUnexpected Kind = "UNEXPECTED"
)

// kindMessages maps error kinds to the message exposed to clients.
// Storage and unexpected failures never leak internal detail.
var kindMessages = map[Kind]string{
	KindValidation: "Invalid query parameters",
	KindNotFound:   "Route not found",
	KindStorage:    "Internal server error",
	KindUnexpected: "Internal server error",
}

// GetKindMessage returns the client-facing message for a kind.
func GetKindMessage(kind Kind) string {
	if msg, ok := kindMessages[kind]; ok {
		return msg
	}
	return "Internal server error"
}

// IsValidKind checks if the provided kind is a registered kind.
func IsValidKind(kind Kind) bool {
	_, ok := kindMessages[kind]
	return ok
}

// GetHTTPStatus returns the HTTP status code for an error kind.
// Unknown kinds default to 500 so nothing escapes without a response.
func GetHTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindStorage, KindUnexpected:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
