package service

import (
	"context"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
)

// StatusService принимает projectID в мутациях, но статусы хранятся
// глобально и по проекту не фильтруются — поведение исходного API
// сохранено как есть
type StatusService struct {
	repo repo.StatusRepository
}

func NewStatusService(repo repo.StatusRepository) *StatusService {
	return &StatusService{repo: repo}
}

func (s *StatusService) ListAll(ctx context.Context) ([]model.Status, error) {
	return s.repo.ListAll(ctx)
}

func (s *StatusService) ListForProject(ctx context.Context, projectID int64) ([]model.Status, error) {
	return s.repo.ListForProject(ctx, projectID)
}

// Create принимает projectID, но в схеме статуса нет project_id
func (s *StatusService) Create(ctx context.Context, projectID int64, name string) (model.Status, error) {
	return s.repo.Create(ctx, name)
}

// Update адресуется только по statusID, принадлежность проекту не проверяется
func (s *StatusService) Update(ctx context.Context, projectID, statusID int64, name string) (model.Status, error) {
	return s.repo.Update(ctx, statusID, name)
}

func (s *StatusService) Delete(ctx context.Context, projectID, statusID int64) error {
	return s.repo.Delete(ctx, statusID)
}
