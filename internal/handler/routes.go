package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
)

// NewRouter собирает все маршруты под префиксом /api.
// Открытые: регистрация, вход и чтение статусов, остальное за токеном
func NewRouter(
	tokens *auth.Manager,
	authH *AuthHandler,
	projectH *ProjectHandler,
	statusH *StatusHandler,
	tagH *TagHandler,
	taskH *TaskHandler,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)

		r.Get("/statuses", statusH.ListAll)
		r.Get("/{projectId}/statuses", statusH.ListForProject)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(tokens))

			r.Post("/project", projectH.Create)
			r.Get("/{userId}/projects", projectH.ListForUser)
			r.Get("/projects/{projectId}", projectH.Get)
			r.Put("/projects/{projectId}", projectH.Update)
			r.Delete("/projects/{projectId}", projectH.Delete)

			r.Post("/{projectId}/status", statusH.Create)
			r.Put("/{projectId}/statuses/{statusesId}", statusH.Update)
			r.Delete("/{projectId}/statuses/{statusesId}", statusH.Delete)

			r.Get("/{projectId}/tags", tagH.List)
			r.Post("/{projectId}/tag", tagH.Create)
			r.Put("/{projectId}/tags/{tagsId}", tagH.Update)
			r.Delete("/{projectId}/tags/{tagsId}", tagH.Delete)

			r.Get("/{projectId}/tasks", taskH.List)
			r.Post("/{projectId}/task", taskH.Create)
			r.Get("/{projectId}/tasks/{taskID}", taskH.Get)
			r.Put("/{projectId}/tasks/{taskID}", taskH.Update)
			r.Delete("/{projectId}/tasks/{taskID}", taskH.Delete)
		})
	})

	return r
}
