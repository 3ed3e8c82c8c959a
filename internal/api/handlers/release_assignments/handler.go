package release_assignments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	releaseAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/release_assignments"
)

const (
	msgInvalidTripID      = "некорректный ID поездки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный список дайверов"
	msgTripNotFound       = "поездка не найдена"
	msgTripBusy           = "поездка занята другой операцией, повторите запрос"
)

type Handler struct {
	useCase ReleaseAssignmentsUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseAssignmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/assignments/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/assignments/release - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	var req ReleaseAssignmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{id}/assignments/release - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseAssignments.Request{
		TripID:   tripID,
		DiverIDs: req.DiverIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, releaseAssignments.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/assignments/release - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, releaseAssignments.ErrBusy):
			h.logger.Warn("POST /trips/{id}/assignments/release - Trip busy: trip_id=%d", tripID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTripBusy)

		case errors.Is(err, releaseAssignments.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/assignments/release - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /trips/{id}/assignments/release - Failed to release: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/assignments/release - Seats released: trip_id=%d, released=%d",
		tripID, len(result.Released))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
