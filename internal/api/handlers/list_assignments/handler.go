package list_assignments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	"github.com/m04kA/SMC-DiveTripService/internal/service/assignments"
)

const (
	msgInvalidTripID = "некорректный ID поездки"
	msgTripNotFound  = "поездка не найдена"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trips/{tripId}/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trips/{id}/assignments - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	list, err := h.service.ListActive(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrTripNotFound):
			h.logger.Warn("GET /trips/{id}/assignments - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("GET /trips/{id}/assignments - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidTripID)

		default:
			h.logger.Error("GET /trips/{id}/assignments - Failed to list assignments: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{id}/assignments - Assignments retrieved: trip_id=%d, count=%d", tripID, len(list))
	handlers.RespondJSON(w, http.StatusOK, FromDomainAssignments(tripID, list))
}
