package quiz

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

func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.StartQuiz(r.Context())
	if err != nil {
		if errors.Is(err, question.ErrNoQuestions) {
			config.Error(w, http.StatusNotFound, "No questions available")
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, views)
}

func (h *Handler) SubmitHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input SubmitHistoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	history, err := h.service.SubmitHistory(r.Context(), uuid.MustParse(claims.UserID), input)
	if err != nil {
		if question.IsValidationError(err) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusCreated, history)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	entries, err := h.service.HistoryForUser(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) GetAllHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.AllHistory(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, entries)
}
