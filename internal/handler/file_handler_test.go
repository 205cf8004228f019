package handler_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
	"github.com/saransh1220/filevault/internal/handler"
	"github.com/saransh1220/filevault/internal/middleware"
	"github.com/saransh1220/filevault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authedRequest(method, target string, body []byte, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUserId, userID)
	return req.WithContext(ctx)
}

func TestFileHandler_UploadFile(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()

	data := base64.StdEncoding.EncodeToString([]byte("Hello"))
	body, _ := json.Marshal(map[string]any{"name": "a.txt", "type": "file", "data": data})

	stored := &domain.File{ID: uuid.New(), UserID: userID, Name: "a.txt", Type: domain.TypeFile, LocalPath: "/tmp/x_a.txt"}
	svc.On("Upload", mock.Anything, userID, service.UploadReq{Name: "a.txt", Type: domain.TypeFile, ParentID: domain.RootParentID, Data: data}).
		Return(stored, nil)

	w := httptest.NewRecorder()
	h.Upload(w, authedRequest(http.MethodPost, "/files", body, userID))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a.txt", resp["name"])
	assert.Equal(t, "0", resp["parentId"])
	assert.NotEmpty(t, resp["localPath"])
	svc.AssertExpectations(t)
}

func TestFileHandler_UploadFolderResponseOmitsPath(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()

	body, _ := json.Marshal(map[string]any{"name": "docs", "type": "folder"})
	stored := &domain.File{ID: uuid.New(), UserID: userID, Name: "docs", Type: domain.TypeFolder}
	svc.On("Upload", mock.Anything, userID, mock.Anything).Return(stored, nil)

	w := httptest.NewRecorder()
	h.Upload(w, authedRequest(http.MethodPost, "/files", body, userID))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "localPath")
}

func TestFileHandler_UploadErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"missing name", domain.ErrMissingName, http.StatusBadRequest, "Missing name"},
		{"invalid type", domain.ErrInvalidType, http.StatusBadRequest, "Missing or invalid type"},
		{"missing data", domain.ErrMissingData, http.StatusBadRequest, "Missing data"},
		{"parent not found", domain.ErrParentNotFound, http.StatusBadRequest, "Parent not found"},
		{"parent not folder", domain.ErrParentNotFolder, http.StatusBadRequest, "Parent is not a folder"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockFileService)
			h := handler.NewFileHandler(svc)
			svc.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil, tc.err)

			body, _ := json.Marshal(map[string]any{"name": "x", "type": "file", "data": "aGk="})
			w := httptest.NewRecorder()
			h.Upload(w, authedRequest(http.MethodPost, "/files", body, uuid.New()))

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestFileHandler_UploadBadParentID(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)

	body, _ := json.Marshal(map[string]any{"name": "x", "type": "file", "data": "aGk=", "parentId": "not-a-uuid"})
	w := httptest.NewRecorder()
	h.Upload(w, authedRequest(http.MethodPost, "/files", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileHandler_Show(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()
	fileID := uuid.New()

	stored := &domain.File{ID: fileID, UserID: userID, Name: "a", Type: domain.TypeFile, LocalPath: "/tmp/a"}
	svc.On("Get", mock.Anything, userID, fileID).Return(stored, nil)

	req := authedRequest(http.MethodGet, "/files/"+fileID.String(), nil, userID)
	req.SetPathValue("id", fileID.String())
	w := httptest.NewRecorder()
	h.Show(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fileID.String())
}

func TestFileHandler_ShowNotOwned(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	fileID := uuid.New()

	svc.On("Get", mock.Anything, mock.Anything, fileID).Return(nil, domain.ErrNotFound)

	req := authedRequest(http.MethodGet, "/files/"+fileID.String(), nil, uuid.New())
	req.SetPathValue("id", fileID.String())
	w := httptest.NewRecorder()
	h.Show(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not found")
}

func TestFileHandler_Index(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()
	parentID := uuid.New()

	files := []domain.File{
		{ID: uuid.New(), UserID: userID, Name: "a", Type: domain.TypeFile, ParentID: parentID},
		{ID: uuid.New(), UserID: userID, Name: "b", Type: domain.TypeFolder, ParentID: parentID},
	}
	svc.On("List", mock.Anything, userID, parentID, 2).Return(files, nil)

	w := httptest.NewRecorder()
	h.Index(w, authedRequest(http.MethodGet, "/files?parentId="+parentID.String()+"&page=2", nil, userID))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, parentID.String(), resp[0]["parentId"])
}

func TestFileHandler_IndexDefaults(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()

	svc.On("List", mock.Anything, userID, domain.RootParentID, 0).Return([]domain.File{}, nil)

	w := httptest.NewRecorder()
	h.Index(w, authedRequest(http.MethodGet, "/files", nil, userID))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestFileHandler_PublishUnpublish(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()
	fileID := uuid.New()

	published := &domain.File{ID: fileID, UserID: userID, Name: "a", Type: domain.TypeFile, IsPublic: true}
	svc.On("SetVisibility", mock.Anything, userID, fileID, true).Return(published, nil).Once()

	req := authedRequest(http.MethodPut, "/files/"+fileID.String()+"/publish", nil, userID)
	req.SetPathValue("id", fileID.String())
	w := httptest.NewRecorder()
	h.Publish(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isPublic":true`)

	unpublished := &domain.File{ID: fileID, UserID: userID, Name: "a", Type: domain.TypeFile, IsPublic: false}
	svc.On("SetVisibility", mock.Anything, userID, fileID, false).Return(unpublished, nil).Once()

	req = authedRequest(http.MethodPut, "/files/"+fileID.String()+"/unpublish", nil, userID)
	req.SetPathValue("id", fileID.String())
	w = httptest.NewRecorder()
	h.Unpublish(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isPublic":false`)
	svc.AssertExpectations(t)
}

func TestFileHandler_Data(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()
	fileID := uuid.New()

	file := &domain.File{ID: fileID, UserID: userID, Name: "a.txt", Type: domain.TypeFile}
	svc.On("GetData", mock.Anything, userID, fileID, 0).Return([]byte("Hello"), file, nil)

	req := authedRequest(http.MethodGet, "/files/"+fileID.String()+"/data", nil, userID)
	req.SetPathValue("id", fileID.String())
	w := httptest.NewRecorder()
	h.Data(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestFileHandler_DataSizeValidation(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	fileID := uuid.New()

	req := authedRequest(http.MethodGet, "/files/"+fileID.String()+"/data?size=99", nil, uuid.New())
	req.SetPathValue("id", fileID.String())
	w := httptest.NewRecorder()
	h.Data(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "GetData", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFileHandler_DataFolder(t *testing.T) {
	svc := new(mockFileService)
	h := handler.NewFileHandler(svc)
	userID := uuid.New()
	fileID := uuid.New()

	svc.On("GetData", mock.Anything, userID, fileID, 0).Return(nil, nil, domain.ErrFolderHasNoContent)

	req := authedRequest(http.MethodGet, "/files/"+fileID.String()+"/data", nil, userID)
	req.SetPathValue("id", fileID.String())
	w := httptest.NewRecorder()
	h.Data(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "A folder doesn't have content")
}
