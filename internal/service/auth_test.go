package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
)

// MockUserRepository - мок репозитория
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func testTokens() *auth.Manager {
	return auth.NewManager("test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		// В репозиторий должен уйти хэш, а не открытый пароль
		return u.Email == "user@example.com" && u.Password != "secret123" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(model.User{
		ID:      7,
		Email:   "user@example.com",
		Name:    "John",
		Surname: "Doe",
	}, nil)

	tokens := testTokens()
	service := NewAuthService(mockRepo, tokens)

	user, token, err := service.Register(context.Background(), "user@example.com", "secret123", "John", "Doe")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	// Token must decode back to the same identity
	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "secret123"},
		{name: "whitespace email", email: "   ", password: "secret123"},
		{name: "empty password", email: "user@example.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			service := NewAuthService(mockRepo, testTokens())

			_, _, err := service.Register(context.Background(), tt.email, tt.password, "John", "Doe")
			assert.ErrorIs(t, err, ErrValidation)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(model.User{}, repo.ErrorConflict)

	service := NewAuthService(mockRepo, testTokens())
	_, _, err := service.Register(context.Background(), "user@example.com", "secret123", "John", "Doe")

	assert.ErrorIs(t, err, repo.ErrorConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := model.User{
		ID:       7,
		Email:    "user@example.com",
		Password: string(hash),
	}

	tests := []struct {
		name      string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)
			},
			wantErr: nil,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "user@example.com").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "user@example.com").Return(model.User{}, repo.ErrorNotFound)
			},
			// Same error as wrong password: callers cannot tell them apart
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := testTokens()
			service := NewAuthService(mockRepo, tokens)

			user, token, err := service.Login(context.Background(), "user@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored.ID, user.ID)

				claims, err := tokens.Parse(token)
				require.NoError(t, err)
				assert.Equal(t, stored.ID, claims.UserID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
