package users_get

import (
	"encoding/json"
	"net/http"

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
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.User, 0, len(users))
	for _, userEntity := range users {
		response = append(response, dto.User{
			ID:        userEntity.ID,
			Name:      userEntity.Name,
			Phone:     userEntity.Phone,
			Email:     userEntity.Email,
			Role:      userEntity.Role.String(),
			CreatedAt: userEntity.CreatedAt,
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
