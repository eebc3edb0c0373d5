package service

import (
	"context"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) ListForProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	return s.repo.ListForProject(ctx, projectID)
}

func (s *TaskService) Get(ctx context.Context, projectID, taskID int64) (model.Task, error) {
	return s.repo.Get(ctx, projectID, taskID)
}

// Create выдает задаче следующий последовательный id внутри проекта
// (та же неатомарная пара запросов, что и у тегов) и назначает
// создателя исполнителем: отдельного шага назначения нет
func (s *TaskService) Create(ctx context.Context, projectID int64, name string, description *string, statusID, creatorID int64) (model.Task, error) {
	nextID, err := s.repo.NextID(ctx, projectID)
	if err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(ctx, model.Task{
		ID: nextID,
		ProjectID: projectID,
		Name: name,
		Description: description,
		StatusID: statusID,
		CreatorID: creatorID,
		AssigneeID: creatorID,
	})
}

func (s *TaskService) Update(ctx context.Context, projectID, taskID int64, name string, description *string, statusID int64) (model.Task, error) {
	return s.repo.Update(ctx, model.Task{
		ID: taskID,
		ProjectID: projectID,
		Name: name,
		Description: description,
		StatusID: statusID,
	})
}

func (s *TaskService) Delete(ctx context.Context, projectID, taskID int64) error {
	return s.repo.Delete(ctx, projectID, taskID)
}
