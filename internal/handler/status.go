package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/service"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/pkg/respond"
)

type StatusHandler struct {
	service *service.StatusService
	logger  *zap.Logger
}

func NewStatusHandler(srv *service.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		service: srv,
		logger:  logger,
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *StatusHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.ListAll(r.Context())
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, statuses)
}

func (h *StatusHandler) ListForProject(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)

	statuses, err := h.service.ListForProject(r.Context(), projectID)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, statuses)
}

func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	status, err := h.service.Create(r.Context(), projectID, req.Name)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, status)
}

func (h *StatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	statusID, _ := strconv.ParseInt(chi.URLParam(r, "statusesId"), 10, 64)

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	status, err := h.service.Update(r.Context(), projectID, statusID, req.Name)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, status)
}

func (h *StatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, _ := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	statusID, _ := strconv.ParseInt(chi.URLParam(r, "statusesId"), 10, 64)

	if err := h.service.Delete(r.Context(), projectID, statusID); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.Message(w, r, http.StatusOK, "Status deleted successfully")
}
