package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/service"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/pkg/respond"
)

type AuthHandler struct {
	service *service.AuthService
	logger  *zap.Logger
}

func NewAuthHandler(srv *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: srv,
		logger:  logger,
	}
}

type registerRequest struct {
	Email string `json:"email"`
	Password string `json:"password"`
	Name string `json:"name"`
	Surname string `json:"surname"`
}

type loginRequest struct {
	Email string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string `json:"message"`
	User model.User `json:"user"`
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	user, token, err := h.service.Register(r.Context(), req.Email, req.Password, req.Name, req.Surname)
	if err != nil {
		// повторная регистрация на тот же email — тоже 400
		if errors.Is(err, repo.ErrorConflict) || errors.Is(err, service.ErrValidation) {
			respond.Error(w, r, http.StatusBadRequest, "validation error")
			return
		}
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, authResponse{
		Message: "User registered",
		User: user,
		Token: token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, authResponse{
		Message: "User logged in",
		User: user,
		Token: token,
	})
}
