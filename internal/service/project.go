package service

import (
	"context"
	"errors"
	"strings"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
)

var ErrValidation = errors.New("validation error")

type ProjectService struct {
	repo repo.ProjectRepository
}

func NewProjectService(repo repo.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) ListForUser(ctx context.Context, userID int64) ([]model.Project, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (model.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create создает проект, создатель становится его участником
func (s *ProjectService) Create(ctx context.Context, name, description string, userID int64) (model.Project, error) {
	if err := validateProject(name, description); err != nil {
		return model.Project{}, err
	}
	return s.repo.Create(ctx, model.Project{Name: name, Description: description}, userID)
}

func (s *ProjectService) Update(ctx context.Context, id int64, name, description string) (model.Project, error) {
	if err := validateProject(name, description); err != nil {
		return model.Project{}, err
	}
	return s.repo.Update(ctx, model.Project{ID: id, Name: name, Description: description})
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateProject(name, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return ErrValidation
	}
	return nil
}
