package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-DiveTripService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTripNotFound       = "поездка не найдена"
	msgAlreadyAssigned    = "дайвер из группы уже занимает место на этой поездке"
	msgWaiverMissing      = "у дайвера из группы нет действующей страховой расписки"
	msgCapacityExceeded   = "недостаточно свободных мест на поездке"
	msgTripBusy           = "поездка занята другой операцией, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTripNotFound):
			h.logger.Warn("POST /bookings - Trip not found: trip_id=%d", req.TripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, createBooking.ErrAlreadyAssigned):
			h.logger.Warn("POST /bookings - Diver already assigned: trip_id=%d", req.TripID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyAssigned)

		case errors.Is(err, createBooking.ErrWaiverMissing):
			h.logger.Warn("POST /bookings - Waiver missing: trip_id=%d", req.TripID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWaiverMissing)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: trip_id=%d, party_size=%d", req.TripID, len(req.PartyDiverIDs))
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Trip busy: trip_id=%d", req.TripID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTripBusy)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: trip_id=%d, error=%v", req.TripID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: trip_id=%d, error=%v", req.TripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, trip_id=%d, party_size=%d",
		result.ID, req.TripID, len(req.PartyDiverIDs))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
