package shift

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buckyapp/bucky/internal/event_bus"
	"github.com/buckyapp/bucky/pkg/stream"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var streamProvider = func(ctx context.Context) ([]stream.IncomeStream, error) {
	return []stream.IncomeStream{
		{
			ID:         "stream-cafe",
			Name:       "Cafe",
			Type:       stream.IncomeTypeHourly,
			PayRate:    30,
			TaxEnabled: true,
			TaxMethod:  stream.MethodPercent,
			TaxValue:   10,
		},
	}, nil
}

func setupHandlerTest(t *testing.T) *ShiftHandler {
	repo := NewStubShiftRepo()
	t.Cleanup(repo.Cleanup)
	service := NewShiftServiceImpl(repo, event_bus.NewEventBus())
	return NewShiftHandler(service, streamProvider)
}

func postShift(t *testing.T, handler *ShiftHandler, dto ShiftDTO) ShiftDTO {
	body, err := json.Marshal(dto)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/shift", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created ShiftDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	return created
}

func TestShiftHandler_RegisterAndGetAll(t *testing.T) {
	handler := setupHandlerTest(t)

	created := postShift(t, handler, ShiftDTO{
		StreamID:     "stream-cafe",
		Date:         "2025-03-10",
		StartTime:    "09:00",
		EndTime:      "17:00",
		BreakMinutes: 30,
	})
	assert.NotEmpty(t, created.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/shift", nil)
	w := httptest.NewRecorder()
	handler.GetAll(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var shifts []ShiftDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&shifts))
	require.Len(t, shifts, 1)

	// The stream resolves, so hours and breakdown are embedded.
	require.NotNil(t, shifts[0].Hours)
	assert.InDelta(t, 7.5, *shifts[0].Hours, 1e-9)
	require.NotNil(t, shifts[0].Breakdown)
	assert.InDelta(t, 225, shifts[0].Breakdown.Gross, 1e-9)
	assert.InDelta(t, 22.5, shifts[0].Breakdown.Tax, 1e-9)
	assert.InDelta(t, 202.5, shifts[0].Breakdown.Net, 1e-9)
}

func TestShiftHandler_GetAll_OrphanedShiftHasNoBreakdown(t *testing.T) {
	handler := setupHandlerTest(t)

	postShift(t, handler, ShiftDTO{
		StreamID:  "deleted-stream",
		Date:      "2025-03-10",
		StartTime: "09:00",
		EndTime:   "17:00",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/shift", nil)
	w := httptest.NewRecorder()
	handler.GetAll(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var shifts []ShiftDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&shifts))
	require.Len(t, shifts, 1)
	assert.Nil(t, shifts[0].Hours)
	assert.Nil(t, shifts[0].Breakdown)
}

func TestShiftHandler_Register_InvalidClockTime(t *testing.T) {
	handler := setupHandlerTest(t)

	body, err := json.Marshal(ShiftDTO{
		StreamID:  "stream-cafe",
		Date:      "2025-03-10",
		StartTime: "25:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/shift", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
	assert.Equal(t, "Invalid shift", errResponse.Error)
	assert.NotEmpty(t, errResponse.Details)
}

func TestShiftHandler_Delete_NotFound(t *testing.T) {
	handler := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/shift/does-not-exist", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "does-not-exist"})
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
