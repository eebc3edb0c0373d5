package service

import (
	"context"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
)

type TagService struct {
	repo repo.TagRepository
}

func NewTagService(repo repo.TagRepository) *TagService {
	return &TagService{repo: repo}
}

func (s *TagService) ListForProject(ctx context.Context, projectID int64) ([]model.Tag, error) {
	return s.repo.ListForProject(ctx, projectID)
}

// Create выдает тегу следующий последовательный id внутри проекта.
// Чтение max(id) и вставка — два отдельных запроса, при одновременном
// создании проигравший получит ErrorConflict
func (s *TagService) Create(ctx context.Context, projectID int64, name string) (model.Tag, error) {
	nextID, err := s.repo.NextID(ctx, projectID)
	if err != nil {
		return model.Tag{}, err
	}
	return s.repo.Create(ctx, model.Tag{
		ID: nextID,
		ProjectID: projectID,
		Name: name,
	})
}

func (s *TagService) Update(ctx context.Context, projectID, tagID int64, name string) (model.Tag, error) {
	return s.repo.Update(ctx, model.Tag{ID: tagID, ProjectID: projectID, Name: name})
}

func (s *TagService) Delete(ctx context.Context, projectID, tagID int64) error {
	return s.repo.Delete(ctx, projectID, tagID)
}
