package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/filevault/internal/domain"
)

type pgFileRepository struct {
	db *sqlx.DB
}

// NewFileRepository creates and returns a new PostgreSQL-based file metadata
// repository implementing domain.FileRepository.
func NewFileRepository(db *sqlx.DB) domain.FileRepository {
	return &pgFileRepository{db: db}
}

// Insert persists a file record. A fresh id is generated when unset, so two
// concurrent inserts can never collide on it. The seq column is assigned by
// the database and carries insertion order for listing.
func (r *pgFileRepository) Insert(ctx context.Context, file *domain.File) error {
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
	}

	query := `INSERT INTO files (id, user_id, name, type, is_public, parent_id, local_path, created_at)
        VALUES (:id, :user_id, :name, :type, :is_public, :parent_id, :local_path, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, file)
	if err != nil {
		return err
	}

	// Read back the assigned seq so the caller holds the fully-populated row.
	return r.db.GetContext(ctx, &file.Seq, `SELECT seq FROM files WHERE id = $1`, file.ID)
}

func (r *pgFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	file := &domain.File{}
	query := `SELECT * FROM files WHERE id = $1`

	err := r.db.GetContext(ctx, file, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// FindByOwnerAndParent returns one page of ownerID's records directly under
// parentID, ordered by insertion. Page size is fixed at domain.PageSize and
// pages are zero-indexed. A listing racing an insert may or may not observe
// the new record; ordering within the page is stable either way.
func (r *pgFileRepository) FindByOwnerAndParent(ctx context.Context, ownerID, parentID uuid.UUID, page int) ([]domain.File, error) {
	if page < 0 {
		page = 0
	}

	files := []domain.File{}
	query := `SELECT * FROM files WHERE user_id = $1 AND parent_id = $2 ORDER BY seq LIMIT $3 OFFSET $4`

	err := r.db.SelectContext(ctx, &files, query, ownerID, parentID, domain.PageSize, page*domain.PageSize)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// UpdateVisibility flips is_public in a single UPDATE so concurrent
// publish/unpublish calls on the same id cannot lose updates.
func (r *pgFileRepository) UpdateVisibility(ctx context.Context, id uuid.UUID, isPublic bool) error {
	query := `UPDATE files SET is_public = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, isPublic, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pgFileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM files`)
	return count, err
}
