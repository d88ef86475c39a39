package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pinkdoor/guestguide-backend/internal/store"
)

// UploadHandler handles media uploads for the rich-text editor. Files are
// held in memory only, like the rest of the guide content.
type UploadHandler struct {
	uploads *store.UploadStore
	maxSize int64
}

// NewUploadHandler creates a new upload handler. maxSize caps the accepted
// file size in bytes.
func NewUploadHandler(uploads *store.UploadStore, maxSize int64) *UploadHandler {
	return &UploadHandler{uploads: uploads, maxSize: maxSize}
}

// Upload accepts a multipart "file" field and registers it.
// POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Multipart field 'file' is required",
		})
		return
	}
	if fileHeader.Size > h.maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:   "file_too_large",
			Message: "File exceeds the maximum upload size",
		})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to read uploaded file",
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to read uploaded file",
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	file, err := h.uploads.Save(fileHeader.Filename, contentType, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"file": file})
}

// ListUploads returns all registered uploads in upload order.
// GET /api/v1/uploads
func (h *UploadHandler) ListUploads(c *gin.Context) {
	files := h.uploads.List()
	c.JSON(http.StatusOK, gin.H{
		"files": files,
		"count": len(files),
	})
}

// ServeUpload streams the bytes of an upload back to the editor preview.
// GET /api/v1/uploads/:id
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	id := c.Param("id")
	meta, data, ok := h.uploads.Open(id)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "Upload " + id + " not found",
		})
		return
	}
	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// DeleteUpload removes an upload. Deletion is idempotent.
// DELETE /api/v1/uploads/:id
func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deleted": h.uploads.Delete(c.Param("id"))})
}
