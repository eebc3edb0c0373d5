package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/service"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/pkg/respond"
)

type ProjectHandler struct {
	service *service.ProjectService
	logger  *zap.Logger
}

func NewProjectHandler(srv *service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		service: srv,
		logger:  logger,
	}
}

type projectRequest struct {
	Name string `json:"name"`
	Description string `json:"description"`
}

type projectResponse struct {
	Message string `json:"message"`
	Project model.Project `json:"project"`
}

func (h *ProjectHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil || userID <= 0 {
		respond.Error(w, r, http.StatusBadRequest, "valid user id is required")
		return
	}

	projects, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "valid project id is required")
		return
	}

	project, err := h.service.Get(r.Context(), projectID)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	project, err := h.service.Create(r.Context(), req.Name, req.Description, claims.UserID)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, projectResponse{
		Message: "Project created successfully",
		Project: project,
	})
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "valid project id is required")
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	project, err := h.service.Update(r.Context(), projectID, req.Name, req.Description)
	if err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, projectResponse{
		Message: "Project updated successfully",
		Project: project,
	})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectId"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "valid project id is required")
		return
	}

	if err := h.service.Delete(r.Context(), projectID); err != nil {
		handleErrors(w, r, h.logger, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Project deleted successfully")
}
