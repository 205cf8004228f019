package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FileRepository is the metadata store for file records.
type FileRepository interface {
	// Insert persists the record, populating ID and CreatedAt if unset.
	Insert(ctx context.Context, file *File) error

	// FindByID returns the record or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*File, error)

	// FindByOwnerAndParent returns one page of ownerID's records under
	// parentID, in insertion order. Pages are zero-indexed with a fixed
	// size of PageSize.
	FindByOwnerAndParent(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]File, error)

	// UpdateVisibility flips is_public atomically at the store level.
	UpdateVisibility(ctx context.Context, id uuid.UUID, isPublic bool) error

	Count(ctx context.Context) (int64, error)
}

// PageSize is the fixed listing page size.
const PageSize = 20

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*User, error)
	Count(ctx context.Context) (int64, error)
}

// SessionStore maps opaque bearer tokens to user ids with an expiry.
// Get returns uuid.Nil (not an error) for unknown or expired tokens;
// callers treat absence as unauthorized.
type SessionStore interface {
	Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// BlobStore holds raw upload bytes outside the metadata store.
type BlobStore interface {
	// Write stores data at a fresh path derived from name and returns that
	// path. Paths never collide, so an original blob is never overwritten.
	Write(ctx context.Context, name string, data []byte) (string, error)

	// WriteDerived stores data at path+suffix, replacing any previous
	// derived blob there. Regeneration is idempotent.
	WriteDerived(ctx context.Context, path, suffix string, data []byte) error

	Read(ctx context.Context, path string) ([]byte, error)
}

// JobQueue is the durable FIFO channel between the upload path and the
// thumbnail worker.
type JobQueue interface {
	// Enqueue returns once the job has been durably accepted.
	Enqueue(ctx context.Context, job ThumbnailJob) error

	// Dequeue blocks until a job is available or ctx is done.
	Dequeue(ctx context.Context) (ThumbnailJob, error)
}
