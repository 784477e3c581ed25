package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"quickship/internal/entities"
	"quickship/internal/generated/dto"
	"quickship/internal/handlers/rest/views"
	"quickship/internal/service/delivery"
	"quickship/pkg/logger"
)

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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveries, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryList{
		Deliveries: make([]dto.Delivery, 0, len(deliveries)),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for i := range deliveries {
		response.Deliveries = append(response.Deliveries, views.Delivery(&deliveries[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.DeliveryFilter, error) {
	var filter entities.DeliveryFilter
	query := r.URL.Query()

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.DeliveryStatusType(statusStr)
		filter.Status = &status
	}

	if ownerStr := query.Get("owner_id"); ownerStr != "" {
		ownerID, err := strconv.ParseInt(ownerStr, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.OwnerID = &ownerID
	}

	if driverStr := query.Get("driver_id"); driverStr != "" {
		driverID, err := strconv.ParseInt(driverStr, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.DriverID = &driverID
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return filter, err
		}
		filter.Page = page
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}

	// Те же границы применяет и сервис, здесь они нужны чтобы честно
	// отразить страницу и лимит в ответе.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	return filter, nil
}
