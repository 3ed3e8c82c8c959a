package get_trip_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	getTripAvailability "github.com/m04kA/SMC-DiveTripService/internal/usecase/get_trip_availability"
)

const (
	msgInvalidTripID = "некорректный ID поездки"
	msgTripNotFound  = "поездка не найдена"
)

type Handler struct {
	useCase GetTripAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetTripAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trips/{tripId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trips/{id}/availability - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTripAvailability.Request{TripID: tripID})
	if err != nil {
		switch {
		case errors.Is(err, getTripAvailability.ErrTripNotFound):
			h.logger.Warn("GET /trips/{id}/availability - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, getTripAvailability.ErrInvalidInput):
			h.logger.Warn("GET /trips/{id}/availability - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidTripID)

		default:
			h.logger.Error("GET /trips/{id}/availability - Failed to get availability: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{id}/availability - Availability retrieved: trip_id=%d, seats_left=%d",
		tripID, result.SeatsLeft)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
