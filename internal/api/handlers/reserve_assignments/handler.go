package reserve_assignments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	reserveAssignments "github.com/m04kA/SMC-DiveTripService/internal/usecase/reserve_assignments"
)

const (
	msgInvalidTripID      = "некорректный ID поездки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный состав группы"
	msgTripNotFound       = "поездка не найдена"
	msgAlreadyAssigned    = "дайвер уже занимает место на этой поездке"
	msgWaiverMissing      = "у дайвера нет действующей страховой расписки"
	msgCapacityExceeded   = "недостаточно свободных мест на поездке"
	msgTripBusy           = "поездка занята другой операцией, повторите запрос"
)

type Handler struct {
	useCase ReserveAssignmentsUseCase
	logger  Logger
}

func NewHandler(useCase ReserveAssignmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/assignments - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	var req ReserveAssignmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips/{id}/assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &reserveAssignments.Request{
		TripID:   tripID,
		DiverIDs: req.DiverIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, reserveAssignments.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/assignments - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, reserveAssignments.ErrAlreadyAssigned):
			h.logger.Warn("POST /trips/{id}/assignments - Diver already assigned: trip_id=%d", tripID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyAssigned)

		case errors.Is(err, reserveAssignments.ErrWaiverMissing):
			h.logger.Warn("POST /trips/{id}/assignments - Waiver missing: trip_id=%d", tripID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWaiverMissing)

		case errors.Is(err, reserveAssignments.ErrCapacityExceeded):
			h.logger.Warn("POST /trips/{id}/assignments - Capacity exceeded: trip_id=%d, party_size=%d",
				tripID, len(req.DiverIDs))
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, reserveAssignments.ErrBusy):
			h.logger.Warn("POST /trips/{id}/assignments - Trip busy: trip_id=%d", tripID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTripBusy)

		case errors.Is(err, reserveAssignments.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/assignments - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /trips/{id}/assignments - Failed to reserve: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/assignments - Seats reserved: trip_id=%d, assigned=%d, seats_left=%d",
		tripID, len(result.Assigned), result.SeatsLeft)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
