package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkdoor/guestguide-backend/internal/models"
	"github.com/pinkdoor/guestguide-backend/internal/store"
)

func setupUploadHandler(maxSize int64) *UploadHandler {
	return NewUploadHandler(store.NewUploadStore(), maxSize)
}

func newUploadContext(t *testing.T, fileName, contentType string, data []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c, w
}

func TestUpload_Image(t *testing.T) {
	handler := setupUploadHandler(1 << 20)

	c, w := newUploadContext(t, "door.png", "image/png", []byte("png-bytes"))

	handler.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		File models.UploadedFile `json:"file"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.File.ID)
	assert.Equal(t, "door.png", response.File.Name)
	assert.Equal(t, "image", response.File.Type)
	assert.Equal(t, "/api/v1/uploads/"+response.File.ID, response.File.URL)
	assert.Equal(t, int64(len("png-bytes")), response.File.Size)
}

func TestUpload_MissingFileField(t *testing.T) {
	handler := setupUploadHandler(1 << 20)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/uploads", bytes.NewBuffer(nil))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_TooLarge(t *testing.T) {
	handler := setupUploadHandler(4)

	c, w := newUploadContext(t, "big.mp4", "video/mp4", []byte("way more than four bytes"))

	handler.Upload(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "file_too_large", response.Error)
}

func TestServeUpload_RoundTrip(t *testing.T) {
	handler := setupUploadHandler(1 << 20)

	c, w := newUploadContext(t, "tour.mp4", "video/mp4", []byte("video-bytes"))
	handler.Upload(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		File models.UploadedFile `json:"file"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "video", created.File.Type)

	c2, w2 := newJSONContext(t, http.MethodGet, created.File.URL, nil)
	c2.Params = gin.Params{{Key: "id", Value: created.File.ID}}

	handler.ServeUpload(c2)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "video/mp4", w2.Header().Get("Content-Type"))
	assert.Equal(t, "video-bytes", w2.Body.String())
}

func TestServeUpload_NotFound(t *testing.T) {
	handler := setupUploadHandler(1 << 20)

	c, w := newJSONContext(t, http.MethodGet, "/api/v1/uploads/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.ServeUpload(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUpload_Idempotent(t *testing.T) {
	handler := setupUploadHandler(1 << 20)

	c, w := newUploadContext(t, "door.png", "image/png", []byte("png-bytes"))
	handler.Upload(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		File models.UploadedFile `json:"file"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	c2, w2 := newJSONContext(t, http.MethodDelete, created.File.URL, nil)
	c2.Params = gin.Params{{Key: "id", Value: created.File.ID}}
	handler.DeleteUpload(c2)

	var first struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &first))
	assert.True(t, first.Deleted)

	c3, w3 := newJSONContext(t, http.MethodDelete, created.File.URL, nil)
	c3.Params = gin.Params{{Key: "id", Value: created.File.ID}}
	handler.DeleteUpload(c3)

	var second struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(w3.Body.Bytes(), &second))
	assert.False(t, second.Deleted)
}
