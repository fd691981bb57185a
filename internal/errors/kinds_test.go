package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKindMessage(t *testing.T) {
	assert.Equal(t, "Invalid query parameters", GetKindMessage(KindValidation))
	assert.Equal(t, "Route not found", GetKindMessage(KindNotFound))
	assert.Equal(t, "Internal server error", GetKindMessage(KindStorage))
	assert.Equal(t, "Internal server error", GetKindMessage(KindUnexpected))
	assert.Equal(t, "Internal server error", GetKindMessage(Kind("BOGUS")))
}

func TestIsValidKind(t *testing.T) {
	assert.True(t, IsValidKind(KindValidation))
	assert.True(t, IsValidKind(KindNotFound))
	assert.True(t, IsValidKind(KindStorage))
	assert.True(t, IsValidKind(KindUnexpected))
	assert.False(t, IsValidKind(Kind("BOGUS")))
	assert.False(t, IsValidKind(Kind("")))
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindStorage, http.StatusInternalServerError},
		{KindUnexpected, http.StatusInternalServerError},
		{Kind("BOGUS"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetHTTPStatus(tt.kind), "kind %s", tt.kind)
	}
}
