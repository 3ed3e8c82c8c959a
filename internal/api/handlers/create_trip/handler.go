package create_trip

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	"github.com/m04kA/SMC-DiveTripService/internal/service/trips"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartsAt    = "некорректный формат даты начала, ожидается RFC3339"
	msgInvalidTrip        = "некорректные данные поездки"
)

type Handler struct {
	service TripService
	logger  Logger
}

func NewHandler(service TripService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		h.logger.Warn("POST /trips - Failed to parse starts_at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartsAt)
		return
	}

	trip, err := h.service.Create(r.Context(), req.Title, startsAt, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, trips.ErrInvalidInput):
			h.logger.Warn("POST /trips - Invalid input: title=%s, capacity=%d, error=%v", req.Title, req.Capacity, err)
			handlers.RespondBadRequest(w, msgInvalidTrip)

		default:
			h.logger.Error("POST /trips - Failed to create trip: title=%s, error=%v", req.Title, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips - Trip created: trip_id=%d, title=%s, capacity=%d", trip.ID, trip.Title, trip.Capacity)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainTrip(trip))
}
