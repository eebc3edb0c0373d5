package repo

import (
	"context"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
)

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// ProjectRepository определяет интерфейс для работы с проектами
type ProjectRepository interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Project, error)
	Get(ctx context.Context, id int64) (model.Project, error)
	Create(ctx context.Context, p model.Project, ownerID int64) (model.Project, error)
	Update(ctx context.Context, p model.Project) (model.Project, error)
	Delete(ctx context.Context, id int64) error
}

// StatusRepository определяет интерфейс для работы со статусами
type StatusRepository interface {
	ListAll(ctx context.Context) ([]model.Status, error)
	ListForProject(ctx context.Context, projectID int64) ([]model.Status, error)
	Create(ctx context.Context, name string) (model.Status, error)
	Update(ctx context.Context, id int64, name string) (model.Status, error)
	Delete(ctx context.Context, id int64) error
}

// TagRepository определяет интерфейс для работы с тегами
type TagRepository interface {
	ListForProject(ctx context.Context, projectID int64) ([]model.Tag, error)
	NextID(ctx context.Context, projectID int64) (int64, error)
	Create(ctx context.Context, t model.Tag) (model.Tag, error)
	Update(ctx context.Context, t model.Tag) (model.Tag, error)
	Delete(ctx context.Context, projectID, id int64) error
}

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	ListForProject(ctx context.Context, projectID int64) ([]model.Task, error)
	Get(ctx context.Context, projectID, id int64) (model.Task, error)
	NextID(ctx context.Context, projectID int64) (int64, error)
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, projectID, id int64) error
}
