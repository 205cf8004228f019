package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceInterface interface {
	RegisterUser(ctx context.Context, email, password string) (*domain.User, error)
	Connect(ctx context.Context, email, password string) (string, error)
	Disconnect(ctx context.Context, token string) error
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type AuthService struct {
	repo       domain.UserRepository
	sessions   domain.SessionStore
	sessionTTL time.Duration
}

// NewAuthService creates and returns a new instance of AuthService.
func NewAuthService(repo domain.UserRepository, sessions domain.SessionStore, sessionTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, sessionTTL: sessionTTL}
}

// RegisterUser creates a new user account with a bcrypt-hashed password.
func (s *AuthService) RegisterUser(ctx context.Context, email, password string) (*domain.User, error) {
	hashedPass, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPass),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Connect verifies the credentials and opens a session: an opaque token
// mapped to the user id in the session store with the configured TTL.
func (s *AuthService) Connect(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.sessions.Set(ctx, token, user.ID, s.sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Disconnect destroys the session immediately.
func (s *AuthService) Disconnect(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
