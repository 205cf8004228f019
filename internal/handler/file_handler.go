package handler

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
	"github.com/saransh1220/filevault/internal/dto"
	"github.com/saransh1220/filevault/internal/middleware"
	"github.com/saransh1220/filevault/internal/service"
)

type FileHandler struct {
	service service.FileServiceInterface
}

func NewFileHandler(service service.FileServiceInterface) *FileHandler {
	return &FileHandler{service: service}
}

type uploadRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
}

// Upload handles POST /files.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())

	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	parentID, ok := parseParentID(req.ParentID)
	if !ok {
		http.Error(w, `{"error":"Parent not found"}`, http.StatusBadRequest)
		return
	}

	file, err := h.service.Upload(r.Context(), userID, service.UploadReq{
		Name:     req.Name,
		Type:     domain.FileType(req.Type),
		ParentID: parentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		writeFileError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto.NewFileResponse(file))
}

// Show handles GET /files/{id}.
func (h *FileHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())

	fileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
		return
	}

	file, err := h.service.Get(r.Context(), userID, fileID)
	if err != nil {
		writeFileError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.NewFileResponse(file))
}

// Index handles GET /files?parentId=&page=.
func (h *FileHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())

	parentID, ok := parseParentID(r.URL.Query().Get("parentId"))
	if !ok {
		// An unparseable parent cannot match anything; the listing is empty
		// rather than an error, like any other miss.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	files, err := h.service.List(r.Context(), userID, parentID, page)
	if err != nil {
		writeFileError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.NewFileListResponse(files))
}

// Publish handles PUT /files/{id}/publish.
func (h *FileHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, true)
}

// Unpublish handles PUT /files/{id}/unpublish.
func (h *FileHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setVisibility(w, r, false)
}

func (h *FileHandler) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	userID := middleware.UserFromContext(r.Context())

	fileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
		return
	}

	file, err := h.service.SetVisibility(r.Context(), userID, fileID, isPublic)
	if err != nil {
		writeFileError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.NewFileResponse(file))
}

// Data handles GET /files/{id}/data?size=. Anonymous callers can read public
// files; the optional size query selects a generated thumbnail width.
func (h *FileHandler) Data(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())

	fileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
		return
	}

	size := 0
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err = strconv.Atoi(sizeStr)
		if err != nil || !service.ValidThumbnailSize(size) {
			http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
			return
		}
	}

	data, file, err := h.service.GetData(r.Context(), userID, fileID, size)
	if err != nil {
		writeFileError(w, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(file.Name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// parseParentID maps the wire representation of a parent reference ("", "0"
// or a UUID) to the typed id. The second return is false for garbage input.
func parseParentID(raw string) (uuid.UUID, bool) {
	if raw == "" || raw == "0" {
		return domain.RootParentID, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// writeFileError maps domain sentinels to the HTTP taxonomy. Ownership
// mismatch and absence share "Not found" deliberately.
func writeFileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingName):
		http.Error(w, `{"error":"Missing name"}`, http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidType):
		http.Error(w, `{"error":"Missing or invalid type"}`, http.StatusBadRequest)
	case errors.Is(err, domain.ErrMissingData):
		http.Error(w, `{"error":"Missing data"}`, http.StatusBadRequest)
	case errors.Is(err, domain.ErrParentNotFound):
		http.Error(w, `{"error":"Parent not found"}`, http.StatusBadRequest)
	case errors.Is(err, domain.ErrParentNotFolder):
		http.Error(w, `{"error":"Parent is not a folder"}`, http.StatusBadRequest)
	case errors.Is(err, domain.ErrFolderHasNoContent):
		http.Error(w, `{"error":"A folder doesn't have content"}`, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, `{"error":"Not found"}`, http.StatusNotFound)
	default:
		log.Printf("[FileHandler] store error: %v", err)
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
	}
}
