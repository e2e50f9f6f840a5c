package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.GenerateQuestions(r.Context(), uuid.MustParse(claims.UserID), req)
	if err != nil {
		if question.IsValidationError(err) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, ErrProviderUnavailable) {
			config.Error(w, http.StatusNotImplemented, err.Error())
			return
		}
		log.WithError(err).Error("Failed to generate questions")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"questions": created,
	})
}
