package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/service"
)

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) ListForUser(ctx context.Context, userID int64) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *mockProjectRepo) Get(ctx context.Context, id int64) (model.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *mockProjectRepo) Create(ctx context.Context, p model.Project, ownerID int64) (model.Project, error) {
	args := m.Called(ctx, p, ownerID)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *mockProjectRepo) Update(ctx context.Context, p model.Project) (model.Project, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Project), args.Error(1)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupProjectHandler(repo repo.ProjectRepository) *ProjectHandler {
	return NewProjectHandler(service.NewProjectService(repo), zap.NewNop())
}

func authedRequest(req *http.Request, userID int64) *http.Request {
	claims := auth.Claims{UserID: userID, Email: "user@example.com"}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProjectHandler_Create(t *testing.T) {
	tests := []struct {
		name      string
		body      interface{}
		authed    bool
		setupMock func(*mockProjectRepo)
		wantCode  int
	}{
		{
			name:   "successful creation",
			body:   map[string]string{"name": "Website", "description": "Company website"},
			authed: true,
			setupMock: func(m *mockProjectRepo) {
				m.On("Create", mock.Anything, model.Project{Name: "Website", Description: "Company website"}, int64(9)).
					Return(model.Project{ID: 1, Name: "Website", Description: "Company website"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "no identity in context",
			body:      map[string]string{"name": "Website", "description": "Company website"},
			authed:    false,
			setupMock: func(m *mockProjectRepo) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "missing description",
			body:      map[string]string{"name": "Website"},
			authed:    true,
			setupMock: func(m *mockProjectRepo) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockProjectRepo)
			tt.setupMock(mockRepo)
			handler := setupProjectHandler(mockRepo)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.authed {
				req = authedRequest(req, 9)
			}

			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusCreated {
				var res projectResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
				assert.Equal(t, int64(1), res.Project.ID)
				assert.Equal(t, "Project created successfully", res.Message)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_Get(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		handler := setupProjectHandler(new(mockProjectRepo))

		req := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
		req = withURLParam(req, "projectId", "abc")

		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("project not found", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		mockRepo.On("Get", mock.Anything, int64(99)).Return(model.Project{}, repo.ErrorNotFound)
		handler := setupProjectHandler(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/projects/99", nil)
		req = withURLParam(req, "projectId", "99")

		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("existing project", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		mockRepo.On("Get", mock.Anything, int64(1)).
			Return(model.Project{ID: 1, Name: "Website", Description: "Company website"}, nil)
		handler := setupProjectHandler(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/projects/1", nil)
		req = withURLParam(req, "projectId", "1")

		w := httptest.NewRecorder()
		handler.Get(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var project model.Project
		require.NoError(t, json.NewDecoder(w.Body).Decode(&project))
		assert.Equal(t, "Website", project.Name)
	})
}

func TestProjectHandler_ListForUser(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		handler := setupProjectHandler(new(mockProjectRepo))

		req := httptest.NewRequest(http.MethodGet, "/api/abc/projects", nil)
		req = withURLParam(req, "userId", "abc")

		w := httptest.NewRecorder()
		handler.ListForUser(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("projects with nested tasks and tags", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		mockRepo.On("ListForUser", mock.Anything, int64(9)).Return([]model.Project{
			{
				ID: 1, Name: "Website", Description: "Company website",
				Tasks: []model.Task{{ID: 1, ProjectID: 1, Name: "Landing", StatusID: 1, Tags: []model.Tag{}}},
				Tags:  []model.Tag{{ID: 1, ProjectID: 1, Name: "frontend"}},
			},
		}, nil)
		handler := setupProjectHandler(mockRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/9/projects", nil)
		req = withURLParam(req, "userId", "9")

		w := httptest.NewRecorder()
		handler.ListForUser(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var projects []model.Project
		require.NoError(t, json.NewDecoder(w.Body).Decode(&projects))
		require.Len(t, projects, 1)
		assert.Len(t, projects[0].Tasks, 1)
		assert.Len(t, projects[0].Tags, 1)
		mockRepo.AssertExpectations(t)
	})
}
