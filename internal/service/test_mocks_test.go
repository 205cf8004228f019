package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockFileRepository struct {
	mock.Mock
}

func (m *mockFileRepository) Insert(ctx context.Context, file *domain.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *mockFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileRepository) FindByOwnerAndParent(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.File, error) {
	args := m.Called(ctx, ownerID, parentID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.File), args.Error(1)
}

func (m *mockFileRepository) UpdateVisibility(ctx context.Context, id uuid.UUID, isPublic bool) error {
	args := m.Called(ctx, id, isPublic)
	return args.Error(0)
}

func (m *mockFileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func (m *mockBlobStore) WriteDerived(ctx context.Context, path, suffix string, data []byte) error {
	args := m.Called(ctx, path, suffix, data)
	return args.Error(0)
}

func (m *mockBlobStore) Read(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockJobQueue struct {
	mock.Mock
}

func (m *mockJobQueue) Enqueue(ctx context.Context, job domain.ThumbnailJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *mockJobQueue) Dequeue(ctx context.Context) (domain.ThumbnailJob, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ThumbnailJob), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) GetUserById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	args := m.Called(ctx, token, userID, ttl)
	return args.Error(0)
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
