package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"quickship/internal/entities"
	"quickship/internal/generated/dto"
	"quickship/internal/handlers/rest/views"
	"quickship/internal/service/delivery"
	"quickship/internal/service/user"
	"quickship/internal/service/workflow"
	"quickship/pkg/logger"
)

const headerUserID = "X-User-ID"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actorID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
	if err != nil || actorID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	idStr := mux.Vars(r)["id"]
	deliveryID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusUpdateDTO dto.StatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	target := entities.DeliveryStatusType(statusUpdateDTO.Status)

	var deliveryEntity *entities.Delivery
	if target == entities.DeliveryCancelled {
		deliveryEntity, err = h.service.Cancel(r.Context(), deliveryID, actorID, statusUpdateDTO.Notes)
	} else {
		deliveryEntity, err = h.service.Advance(r.Context(), deliveryID, actorID, target, statusUpdateDTO.Notes)
	}
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, workflow.ErrUnknownStatus),
			errors.Is(err, workflow.ErrNotesTooLong):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, workflow.ErrForbidden),
			errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, workflow.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, delivery.ErrDeliveryBusy):
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(views.Delivery(deliveryEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
