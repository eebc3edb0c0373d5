package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/service"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/pkg/respond"
)

// handleErrors сопоставляет ошибки сервисного слоя с HTTP-ответом.
// Клиенту уходит фиксированное сообщение, детали остаются в логе
func handleErrors(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrorConflict):
		respond.Error(w, r, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "validation error")
	case errors.Is(err, service.ErrInvalidCredentials):
		respond.Error(w, r, http.StatusUnauthorized, "invalid credentials")
	default:
		logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
