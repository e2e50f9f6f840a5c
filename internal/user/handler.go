package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var input RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			config.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUserExists):
			config.Error(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to register user")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	setAuthCookie(w, resp.Token)
	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			config.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.WithError(err).Error("Failed to log user in")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	setAuthCookie(w, resp.Token)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var input GoogleLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Code == "" {
		config.Error(w, http.StatusBadRequest, "authorization code required")
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), input.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrGoogleDisabled):
			config.Error(w, http.StatusNotImplemented, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			config.Error(w, http.StatusUnauthorized, "google sign-in failed")
		default:
			log.WithError(err).Error("Google sign-in failed")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	setAuthCookie(w, resp.Token)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.service.GetByID(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.Error(w, http.StatusNotFound, err.Error())
			return
		}
		log.WithError(err).Error("Failed to fetch user")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
