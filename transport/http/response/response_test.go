package response_test

import (
	"darshan/shared/failure"
	"darshan/transport/http/response"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantKind    string
		wantMessage string
	}{
		{
			name:        "failure keeps its message",
			err:         fmt.Errorf("book: %w", failure.NotFound("museum not found")),
			wantCode:    http.StatusNotFound,
			wantKind:    "not_found",
			wantMessage: "museum not found",
		},
		{
			name:        "nested wrapping is not sent",
			err:         fmt.Errorf("failed to create event: %w", fmt.Errorf("failed to get museum: %w", failure.NotFound("museum not found"))),
			wantCode:    http.StatusNotFound,
			wantKind:    "not_found",
			wantMessage: "museum not found",
		},
		{
			name:        "wrapped internal failure is masked",
			err:         fmt.Errorf("summary: %w", failure.InternalError(errors.New("pq: timeout"))),
			wantCode:    http.StatusInternalServerError,
			wantKind:    "internal_error",
			wantMessage: "internal server error",
		},
		{
			name:        "state transition",
			err:         failure.InvalidStateTransition("cannot move ticket from refunded to paid"),
			wantCode:    http.StatusConflict,
			wantKind:    "invalid_state_transition",
			wantMessage: "cannot move ticket from refunded to paid",
		},
		{
			name:        "storage detail is hidden",
			err:         errors.New(`pq: relation "tickets" does not exist`),
			wantCode:    http.StatusInternalServerError,
			wantKind:    "internal_error",
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body["kind"])
			assert.Equal(t, tt.wantMessage, body["error"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"ticket_id": "t1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"ticket_id":"t1"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "too_many_requests")
}
