package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
)

// ErrInvalidCredentials намеренно один на оба случая: несуществующий email
// и неверный пароль снаружи неразличимы
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users repo.UserRepository
	tokens *auth.Manager
}

func NewAuthService(users repo.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{
		users: users,
		tokens: tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password, name, surname string) (model.User, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.User{}, "", ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", err
	}

	user, err := s.users.Create(ctx, model.User{
		Email: email,
		Password: string(hash),
		Name: name,
		Surname: surname,
	})
	if err != nil {
		return model.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrorNotFound) {
		return model.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}
