package record_waiver

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DiveTripService/internal/api/handlers"
	"github.com/m04kA/SMC-DiveTripService/internal/service/waivers"
)

const (
	msgInvalidDiverID     = "некорректный ID дайвера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidWaiver      = "некорректные данные расписки"
)

type Handler struct {
	service WaiverService
	logger  Logger
}

func NewHandler(service WaiverService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/divers/{diverId}/waivers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	diverID, err := strconv.ParseInt(vars["diverId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /divers/{id}/waivers - Invalid diver ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDiverID)
		return
	}

	// Тело запроса опционально: без него подпись регистрируется текущим
	// временем и без срока действия
	var req RecordWaiverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /divers/{id}/waivers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	signedAt, expiresAt, err := req.ParseTimes()
	if err != nil {
		h.logger.Warn("POST /divers/{id}/waivers - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	waiver, err := h.service.RecordSignature(r.Context(), diverID, signedAt, expiresAt)
	if err != nil {
		switch {
		case errors.Is(err, waivers.ErrInvalidInput):
			h.logger.Warn("POST /divers/{id}/waivers - Invalid input: diver_id=%d, error=%v", diverID, err)
			handlers.RespondBadRequest(w, msgInvalidWaiver)

		default:
			h.logger.Error("POST /divers/{id}/waivers - Failed to record waiver: diver_id=%d, error=%v", diverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /divers/{id}/waivers - Waiver recorded: waiver_id=%d, diver_id=%d", waiver.ID, diverID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainWaiver(waiver))
}
