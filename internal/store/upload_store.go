package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// UploadStore keeps uploaded media in memory and serves it back by id.
// Nothing touches disk; files live for the life of the process.
type UploadStore struct {
	mu    sync.Mutex
	order []string
	files map[string]uploadRecord
}

type uploadRecord struct {
	meta models.UploadedFile
	data []byte
}

// NewUploadStore builds an empty upload registry.
func NewUploadStore() *UploadStore {
	return &UploadStore{files: make(map[string]uploadRecord)}
}

// Save registers a new upload and returns its metadata. The URL points at
// the serving endpoint for the assigned id.
func (s *UploadStore) Save(name, contentType string, data []byte) (models.UploadedFile, error) {
	if strings.TrimSpace(name) == "" {
		return models.UploadedFile{}, &models.ValidationError{Field: "file", Message: "file name is required"}
	}
	if len(data) == 0 {
		return models.UploadedFile{}, &models.ValidationError{Field: "file", Message: "file is empty"}
	}

	fileType := "video"
	if strings.HasPrefix(contentType, "image/") {
		fileType = "image"
	}

	id := uuid.New().String()
	meta := models.UploadedFile{
		ID:          id,
		Name:        name,
		URL:         "/api/v1/uploads/" + id,
		Type:        fileType,
		ContentType: contentType,
		Size:        int64(len(data)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[id] = uploadRecord{meta: meta, data: data}
	s.order = append(s.order, id)
	return meta, nil
}

// List returns all uploads in upload order.
func (s *UploadStore) List() []models.UploadedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UploadedFile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.files[id].meta)
	}
	return out
}

// Open returns the metadata and bytes of an upload.
func (s *UploadStore) Open(id string) (models.UploadedFile, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.files[id]
	if !ok {
		return models.UploadedFile{}, nil, false
	}
	return rec.meta, rec.data, true
}

// Delete removes an upload. Deleting an absent id is not an error; the
// boolean reports whether anything was removed.
func (s *UploadStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return false
	}
	delete(s.files, id)
	for i, f := range s.order {
		if f == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
