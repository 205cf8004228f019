package service

import (
	"context"
	"encoding/base64"
	"log"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
)

// UploadReq carries a validated upload request. Data holds the base64-encoded
// content for file and image uploads; folders carry none.
type UploadReq struct {
	Name     string
	Type     domain.FileType
	ParentID uuid.UUID
	IsPublic bool
	Data     string
}

type FileServiceInterface interface {
	Upload(ctx context.Context, userID uuid.UUID, req UploadReq) (*domain.File, error)
	Get(ctx context.Context, userID, fileID uuid.UUID) (*domain.File, error)
	List(ctx context.Context, userID, parentID uuid.UUID, page int) ([]domain.File, error)
	SetVisibility(ctx context.Context, userID, fileID uuid.UUID, isPublic bool) (*domain.File, error)
	GetData(ctx context.Context, userID, fileID uuid.UUID, size int) ([]byte, *domain.File, error)
}

type FileService struct {
	repo  domain.FileRepository
	blobs domain.BlobStore
	queue domain.JobQueue
}

// NewFileService creates the upload/query service. All stores are explicit
// handles so tests can substitute doubles.
func NewFileService(repo domain.FileRepository, blobs domain.BlobStore, queue domain.JobQueue) *FileService {
	return &FileService{repo: repo, blobs: blobs, queue: queue}
}

// Upload validates the request, persists metadata and blob state, and for
// images enqueues a thumbnail job once the record is durably stored. Nothing
// is written before validation passes.
func (s *FileService) Upload(ctx context.Context, userID uuid.UUID, req UploadReq) (*domain.File, error) {
	if req.Name == "" {
		return nil, domain.ErrMissingName
	}
	if !domain.ValidType(req.Type) {
		return nil, domain.ErrInvalidType
	}
	if req.Type != domain.TypeFolder && req.Data == "" {
		return nil, domain.ErrMissingData
	}

	if req.ParentID != domain.RootParentID {
		parent, err := s.repo.FindByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrParentNotFound
		}
		if parent.Type != domain.TypeFolder {
			return nil, domain.ErrParentNotFolder
		}
	}

	file := &domain.File{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		IsPublic: req.IsPublic,
		ParentID: req.ParentID,
	}

	if req.Type == domain.TypeFolder {
		if err := s.repo.Insert(ctx, file); err != nil {
			return nil, err
		}
		return file, nil
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, domain.ErrMissingData
	}

	path, err := s.blobs.Write(ctx, req.Name, data)
	if err != nil {
		return nil, err
	}

	file.LocalPath = path
	if err := s.repo.Insert(ctx, file); err != nil {
		// The blob is orphaned here; reconciliation is out of band.
		return nil, err
	}

	if req.Type == domain.TypeImage {
		// The record is persisted, so the worker can always resolve the id.
		if err := s.queue.Enqueue(ctx, domain.ThumbnailJob{FileID: file.ID, UserID: userID}); err != nil {
			// The upload itself succeeded; thumbnails are regenerable.
			log.Printf("[FileService.Upload] failed to enqueue thumbnail job for %s: %v", file.ID, err)
		}
	}
	return file, nil
}

// Get returns the record only when it belongs to userID. Ownership mismatch
// and true absence are both ErrNotFound, so callers cannot probe for other
// users' files.
func (s *FileService) Get(ctx context.Context, userID, fileID uuid.UUID) (*domain.File, error) {
	file, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil || file.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return file, nil
}

// List returns one page of userID's records under parentID. An empty result
// is a valid page, not an error.
func (s *FileService) List(ctx context.Context, userID, parentID uuid.UUID, page int) ([]domain.File, error) {
	return s.repo.FindByOwnerAndParent(ctx, userID, parentID, page)
}

// SetVisibility requires ownership, then applies the flag atomically at the
// store level and returns the refreshed record.
func (s *FileService) SetVisibility(ctx context.Context, userID, fileID uuid.UUID, isPublic bool) (*domain.File, error) {
	file, err := s.Get(ctx, userID, fileID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateVisibility(ctx, file.ID, isPublic); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, fileID)
}

// GetData returns the raw bytes for a record that is public or owned by
// userID (uuid.Nil for anonymous callers). size selects a derived thumbnail
// width; zero means the original blob.
func (s *FileService) GetData(ctx context.Context, userID, fileID uuid.UUID, size int) ([]byte, *domain.File, error) {
	file, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !file.IsPublic && file.UserID != userID {
		return nil, nil, domain.ErrNotFound
	}
	if file.Type == domain.TypeFolder {
		return nil, nil, domain.ErrFolderHasNoContent
	}

	path := file.LocalPath
	if size != 0 {
		path = thumbnailPath(path, size)
	}

	data, err := s.blobs.Read(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return data, file, nil
}

// ValidThumbnailSize reports whether size is one of the generated widths.
func ValidThumbnailSize(size int) bool {
	for _, w := range domain.ThumbnailWidths {
		if size == w {
			return true
		}
	}
	return false
}
