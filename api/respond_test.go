package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subarudev0/portfolio-backend/errs"
)

func newTestResponder() Responder {
	return NewResponder(zerolog.Nop())
}

func decodeAction(t *testing.T, rec *httptest.ResponseRecorder) actionResponse {
	t.Helper()
	var resp actionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestResponder().WriteSuccess(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAction(t, rec)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}

func TestWriteErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestResponder().WriteError(rec, errs.NewValidationError("title", "title is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeAction(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "title is required", resp.Error)
	assert.Equal(t, "title", resp.Field)
}

func TestWriteErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestResponder().WriteError(rec, errs.NewNotFoundError("project not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeAction(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "project not found", resp.Error)
}

func TestWriteErrorHidesUnexpectedDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestResponder().WriteError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeAction(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "An unexpected error occurred", resp.Error)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestSplitQueryList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"nil input", nil, nil},
		{"single value", []string{"React"}, []string{"React"}},
		{"comma separated", []string{"React,Go"}, []string{"React", "Go"}},
		{"repeated params", []string{"React", "Go"}, []string{"React", "Go"}},
		{"mixed with blanks", []string{"React, ,Go", "", "Zig"}, []string{"React", "Go", "Zig"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, splitQueryList(tc.values))
		})
	}
}
