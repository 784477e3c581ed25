package stats_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"quickship/internal/generated/dto"
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
	var ownerID *int64
	if ownerStr := r.URL.Query().Get("owner_id"); ownerStr != "" {
		parsed, err := strconv.ParseInt(ownerStr, 10, 64)
		if err != nil || parsed <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		ownerID = &parsed
	}

	stats, err := h.service.GetStats(r.Context(), ownerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.DeliveryStats{
		TotalDeliveries: stats.TotalDeliveries,
		StatusBreakdown: make([]dto.StatusCount, 0, len(stats.StatusBreakdown)),
	}
	for _, count := range stats.StatusBreakdown {
		response.StatusBreakdown = append(response.StatusBreakdown, dto.StatusCount{
			Status: count.Status.String(),
			Count:  count.Count,
		})
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
