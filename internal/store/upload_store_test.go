package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

func TestUploadStore_SaveAndOpen(t *testing.T) {
	s := NewUploadStore()

	file, err := s.Save("pool.jpg", "image/jpeg", []byte("jpegdata"))
	require.NoError(t, err)

	assert.NotEmpty(t, file.ID)
	assert.Equal(t, "image", file.Type)
	assert.Equal(t, int64(8), file.Size)
	assert.Equal(t, "/api/v1/uploads/"+file.ID, file.URL)

	meta, data, ok := s.Open(file.ID)
	require.True(t, ok)
	assert.Equal(t, file, meta)
	assert.Equal(t, []byte("jpegdata"), data)
}

func TestUploadStore_NonImageIsVideo(t *testing.T) {
	s := NewUploadStore()

	file, err := s.Save("tour.mp4", "video/mp4", []byte("mp4data"))
	require.NoError(t, err)
	assert.Equal(t, "video", file.Type)
}

func TestUploadStore_EmptyFileRejected(t *testing.T) {
	s := NewUploadStore()

	_, err := s.Save("empty.png", "image/png", nil)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUploadStore_ListKeepsUploadOrder(t *testing.T) {
	s := NewUploadStore()

	first, err := s.Save("a.png", "image/png", []byte("a"))
	require.NoError(t, err)
	second, err := s.Save("b.png", "image/png", []byte("b"))
	require.NoError(t, err)

	files := s.List()
	require.Len(t, files, 2)
	assert.Equal(t, first.ID, files[0].ID)
	assert.Equal(t, second.ID, files[1].ID)
}

func TestUploadStore_DeleteIsIdempotent(t *testing.T) {
	s := NewUploadStore()

	file, err := s.Save("a.png", "image/png", []byte("a"))
	require.NoError(t, err)

	assert.True(t, s.Delete(file.ID))
	assert.False(t, s.Delete(file.ID))
	assert.Empty(t, s.List())
}
