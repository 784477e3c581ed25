package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quickship/internal/entities"
	"quickship/internal/generated/dto"
	"quickship/internal/handlers/rest/views"
	"quickship/internal/pkg/factory/pricing"
	"quickship/internal/service/delivery"
	"quickship/internal/service/user"
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

	var deliveryCreateDTO dto.DeliveryCreate
	err = json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Координаты обязательны, без них нечего считать.
	if deliveryCreateDTO.PickupAddress.Coordinates == nil ||
		deliveryCreateDTO.DropAddress.Coordinates == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.DeliveryCreate{
		OwnerID:       actorID,
		PickupAddress: toAddress(deliveryCreateDTO.PickupAddress),
		DropAddress:   toAddress(deliveryCreateDTO.DropAddress),
		Customer:      entities.CustomerInfo(deliveryCreateDTO.Customer),
		Package:       entities.PackageDetails(deliveryCreateDTO.Package),
		Priority:      entities.DeliveryPriorityType(deliveryCreateDTO.Priority),
	}

	deliveryEntity, err := h.service.CreateDelivery(r.Context(), createEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidCustomerPhone),
			errors.Is(err, delivery.ErrInvalidWeight),
			errors.Is(err, delivery.ErrInvalidPriority),
			errors.Is(err, pricing.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrOwnerRoleRequired),
			errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(views.Delivery(deliveryEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toAddress(a dto.Address) entities.Address {
	return entities.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Coordinates: entities.Coordinates{
			Lat: a.Coordinates.Lat,
			Lng: a.Coordinates.Lng,
		},
	}
}
