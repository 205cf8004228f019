package domain

import (
	"time"

	"github.com/google/uuid"
)

type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

// RootParentID marks a file attached directly to the root of a user's
// namespace. It is stored as the zero UUID rather than NULL so that
// (owner_id, parent_id) listing queries stay a single indexed equality.
var RootParentID = uuid.Nil

// File is a metadata record for a folder, file or image. LocalPath is empty
// for folders and set exactly once at creation for everything else; IsPublic
// is the only field that may change afterwards.
type File struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Type      FileType  `json:"type" db:"type"`
	IsPublic  bool      `json:"isPublic" db:"is_public"`
	ParentID  uuid.UUID `json:"parentId" db:"parent_id"`
	LocalPath string    `json:"localPath" db:"local_path"`
	Seq       int64     `json:"-" db:"seq"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ValidType reports whether t is one of the accepted upload types.
func ValidType(t FileType) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}
