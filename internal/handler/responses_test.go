package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/registry"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusCreated, map[string]int{"count": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body["count"])
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.StatusBadRequest, ErrMsgInvalidRequest)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMsgInvalidRequest, body.Error)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "run not found",
			err:        domain.ErrRunNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    ErrMsgRunNotFound,
		},
		{
			name:       "wrapped run not found",
			err:        errors.Join(errors.New("fetch failed"), domain.ErrRunNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    ErrMsgRunNotFound,
		},
		{
			name:       "unknown kind",
			err:        registry.ErrUnknownKind,
			wantStatus: http.StatusBadRequest,
			wantMsg:    ErrMsgUnknownKind,
		},
		{
			name:       "empty category",
			err:        registry.ErrEmptyCategory,
			wantStatus: http.StatusBadRequest,
			wantMsg:    ErrMsgEmptyCategory,
		},
		{
			name:       "unclassified error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    ErrMsgGenericServerError,
		},
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    ErrMsgUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
