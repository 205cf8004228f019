package dto

import (
	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
)

// FileResponse is the client-facing shape of a file record. ParentID is
// rendered as "0" for the namespace root rather than the zero UUID, and
// localPath is omitted for folders.
type FileResponse struct {
	ID       uuid.UUID       `json:"id"`
	UserID   uuid.UUID       `json:"userId"`
	Name     string          `json:"name"`
	Type     domain.FileType `json:"type"`
	IsPublic bool            `json:"isPublic"`
	ParentID string          `json:"parentId"`
	Path     string          `json:"localPath,omitempty"`
}

func NewFileResponse(file *domain.File) FileResponse {
	parentID := "0"
	if file.ParentID != domain.RootParentID {
		parentID = file.ParentID.String()
	}
	return FileResponse{
		ID:       file.ID,
		UserID:   file.UserID,
		Name:     file.Name,
		Type:     file.Type,
		IsPublic: file.IsPublic,
		ParentID: parentID,
		Path:     file.LocalPath,
	}
}

func NewFileListResponse(files []domain.File) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, NewFileResponse(&files[i]))
	}
	return out
}
