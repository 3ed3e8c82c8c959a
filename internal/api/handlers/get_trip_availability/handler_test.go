package get_trip_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getTripAvailability "github.com/m04kA/SMC-DiveTripService/internal/usecase/get_trip_availability"
)

type fakeUseCase struct {
	resp *getTripAvailability.Response
	err  error
}

func (uc *fakeUseCase) Execute(_ context.Context, _ *getTripAvailability.Request) (*getTripAvailability.Response, error) {
	return uc.resp, uc.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/trips/{tripId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getTripAvailability.Response{
			TripID:      1,
			Title:       "Coral Garden",
			StartsAt:    time.Date(2026, 9, 12, 8, 0, 0, 0, time.UTC),
			Capacity:    12,
			ActiveCount: 7,
			SeatsLeft:   5,
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/1/availability", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TripAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.TripID)
	assert.Equal(t, "Coral Garden", resp.Title)
	assert.Equal(t, 12, resp.Capacity)
	assert.Equal(t, 7, resp.ActiveCount)
	assert.Equal(t, 5, resp.SeatsLeft)
	assert.Equal(t, "2026-09-12T08:00:00Z", resp.StartsAt)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &fakeUseCase{err: getTripAvailability.ErrTripNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/42/availability", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidTripID(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/abc/availability", nil)
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
