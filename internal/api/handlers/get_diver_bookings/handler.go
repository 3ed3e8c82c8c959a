package get_diver_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	"github.com/m04kA/SMC-DiveTripService/internal/domain"
	"github.com/m04kA/SMC-DiveTripService/internal/service/bookings"
)

const (
	msgInvalidDiverID = "некорректный ID дайвера"
	msgInvalidStatus  = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/divers/{diverId}/bookings?status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	diverID, err := strconv.ParseInt(vars["diverId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /divers/{id}/bookings - Invalid diver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDiverID)
		return
	}

	// Опциональный фильтр по статусу
	var status *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed := domain.BookingStatus(raw)
		if !parsed.IsValid() {
			h.logger.Warn("GET /divers/{id}/bookings - Invalid status filter: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	list, err := h.service.GetByDiver(r.Context(), diverID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /divers/{id}/bookings - Invalid input: diver_id=%d, error=%v", diverID, err)
			handlers.RespondBadRequest(w, msgInvalidDiverID)

		default:
			h.logger.Error("GET /divers/{id}/bookings - Failed to list bookings: diver_id=%d, error=%v", diverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /divers/{id}/bookings - Bookings retrieved: diver_id=%d, count=%d", diverID, len(list))
	handlers.RespondJSON(w, http.StatusOK, FromServiceBookings(list))
}
