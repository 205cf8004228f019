package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
	"github.com/saransh1220/filevault/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockFileService struct {
	mock.Mock
}

func (m *mockFileService) Upload(ctx context.Context, userID uuid.UUID, req service.UploadReq) (*domain.File, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileService) Get(ctx context.Context, userID, fileID uuid.UUID) (*domain.File, error) {
	args := m.Called(ctx, userID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileService) List(ctx context.Context, userID, parentID uuid.UUID, page int) ([]domain.File, error) {
	args := m.Called(ctx, userID, parentID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.File), args.Error(1)
}

func (m *mockFileService) SetVisibility(ctx context.Context, userID, fileID uuid.UUID, isPublic bool) (*domain.File, error) {
	args := m.Called(ctx, userID, fileID, isPublic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileService) GetData(ctx context.Context, userID, fileID uuid.UUID, size int) ([]byte, *domain.File, error) {
	args := m.Called(ctx, userID, fileID, size)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*domain.File), args.Error(2)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) RegisterUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthService) Connect(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Disconnect(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockAuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
