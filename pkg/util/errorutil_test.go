package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
)

func TestToDomainError_Taxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"missing field", domain.ErrMissingField, "VALIDATION_FAILED", http.StatusBadRequest},
		{"malformed start", domain.ErrMalformedStart, "VALIDATION_FAILED", http.StatusBadRequest},
		{"range inverted", domain.ErrRangeInverted, "VALIDATION_FAILED", http.StatusBadRequest},
		{"malformed recipient", domain.ErrMalformedRecipient, "VALIDATION_FAILED", http.StatusBadRequest},
		{"invalid identifier", domain.ErrInvalidIdentifier, "INVALID_IDENTIFIER", http.StatusBadRequest},
		{"not found", domain.ErrRangeNotFound, "NOT_FOUND", http.StatusNotFound},
		{"mail not configured", domain.ErrMailNotConfigured, "MAIL_NOT_CONFIGURED", http.StatusServiceUnavailable},
		{"store unavailable", domain.ErrStoreUnavailable, "STORE_UNAVAILABLE", http.StatusServiceUnavailable},
		{"mail delivery", domain.ErrMailDelivery, "MAIL_DELIVERY_FAILED", http.StatusInternalServerError},
		{"persistence", domain.ErrPersistence, "PERSISTENCE_FAILED", http.StatusInternalServerError},
		{"unknown", errors.New("anything"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := ToDomainError(tt.err)
			require.NotNil(t, de)
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantStatus, de.HTTPStatus)
		})
	}
}

func TestToDomainError_UnwrapsWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("%w: dial tcp: connection refused", domain.ErrStoreUnavailable)

	de := ToDomainError(wrapped)
	assert.Equal(t, "STORE_UNAVAILABLE", de.Code)
	// the canonical message reaches the user, not the transport detail
	assert.Equal(t, domain.ErrStoreUnavailable.Error(), de.Message)
}

func TestToDomainError_PassesThroughDomainError(t *testing.T) {
	original := NewValidationError("invalid payload", map[string]any{"field": "start"})

	de := ToDomainError(original)
	assert.Equal(t, "VALIDATION_FAILED", de.Code)
	assert.Equal(t, "invalid payload", de.Message)
	assert.Equal(t, "start", de.Details["field"])
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
