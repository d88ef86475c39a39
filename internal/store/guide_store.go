package store

import (
	"sync"
	"time"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// GuideStore is the in-memory collection of guide items. It stands in for
// a future persistence layer; the contract (monotonic ids, timestamps,
// validation before any write) is what a real table would enforce.
//
// Seed state is injected at construction so tests can build isolated
// instances instead of sharing process-wide state.
type GuideStore struct {
	mu     sync.Mutex
	guides []models.GuideItem
	nextID int
}

// NewGuideStore builds a store pre-populated with the given items. Zero
// timestamps on seed items are filled with the current time. The next
// assigned id is strictly greater than any seeded id.
func NewGuideStore(seed []models.GuideItem) *GuideStore {
	now := time.Now().UTC()
	guides := make([]models.GuideItem, len(seed))
	nextID := 1
	for i, g := range seed {
		g.ApplyDefaults()
		if g.CreatedAt.IsZero() {
			g.CreatedAt = now
		}
		if g.UpdatedAt.IsZero() {
			g.UpdatedAt = now
		}
		if g.ID >= nextID {
			nextID = g.ID + 1
		}
		guides[i] = g
	}
	return &GuideStore{guides: guides, nextID: nextID}
}

// List returns a snapshot of all guide items in unspecified order. Callers
// re-sort through the section grouper.
func (s *GuideStore) List() []models.GuideItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GuideItem, len(s.guides))
	copy(out, s.guides)
	return out
}

// Get returns the guide item with the given id.
func (s *GuideStore) Get(id int) (models.GuideItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.guides[i], nil
	}
	return models.GuideItem{}, &models.NotFoundError{Resource: "guide", ID: id}
}

// Create validates the item, applies the editor defaults, assigns a fresh
// id and both timestamps, and appends it to the collection. The input's
// id and timestamps are ignored.
func (s *GuideStore) Create(item models.GuideItem) (models.GuideItem, error) {
	item.ApplyDefaults()
	if err := item.Validate(); err != nil {
		return models.GuideItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	item.ID = s.nextID
	s.nextID++
	item.CreatedAt = now
	item.UpdatedAt = now
	s.guides = append(s.guides, item)
	return item, nil
}

// Update merges the non-nil fields of upd over the stored record and
// refreshes updated_at. The merge is validated as a whole before anything
// is written, so a failed update leaves the record untouched.
func (s *GuideStore) Update(id int, upd models.GuideUpdate) (models.GuideItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.GuideItem{}, &models.NotFoundError{Resource: "guide", ID: id}
	}

	merged := s.guides[i]
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.ShortDescription != nil {
		merged.ShortDescription = *upd.ShortDescription
	}
	if upd.Content != nil {
		merged.Content = *upd.Content
	}
	if upd.IsHTMLContent != nil {
		merged.IsHTMLContent = *upd.IsHTMLContent
	}
	if upd.HeadImageURL != nil {
		merged.HeadImageURL = *upd.HeadImageURL
	}
	if upd.TabCode != nil {
		merged.TabCode = *upd.TabCode
	}
	if upd.SectionName != nil {
		merged.SectionName = *upd.SectionName
	}
	if upd.Category != nil {
		merged.Category = *upd.Category
	}
	if upd.SequenceNumber != nil {
		merged.SequenceNumber = *upd.SequenceNumber
	}
	if upd.PurchaseSettings != nil {
		ps := *upd.PurchaseSettings
		ps.Normalize()
		merged.PurchaseSettings = &ps
	}
	if upd.FilterByListingTags != nil {
		pf := *upd.FilterByListingTags
		pf.Normalize()
		merged.FilterByListingTags = pf
	}
	if upd.FilterByReservationStage != nil {
		merged.FilterByReservationStage = *upd.FilterByReservationStage
	}

	if merged.SectionName == "" {
		merged.SectionName = models.DefaultSectionName
	}
	if err := merged.Validate(); err != nil {
		return models.GuideItem{}, err
	}

	merged.UpdatedAt = time.Now().UTC()
	s.guides[i] = merged
	return merged, nil
}

// Delete removes the guide item with the given id. Deleting an absent id
// is not an error; the boolean reports whether anything was removed.
func (s *GuideStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.guides = append(s.guides[:i], s.guides[i+1:]...)
	return true
}

// ApplyReorder writes the section and sequence assignments produced by the
// reorder engine back to the store in one critical section. Every id is
// resolved before any record is touched, so a missing id leaves the store
// unchanged.
func (s *GuideStore) ApplyReorder(items []models.GuideItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	indexes := make([]int, len(items))
	for n, item := range items {
		i := s.indexOf(item.ID)
		if i < 0 {
			return &models.NotFoundError{Resource: "guide", ID: item.ID}
		}
		indexes[n] = i
	}

	now := time.Now().UTC()
	for n, item := range items {
		i := indexes[n]
		if s.guides[i].SectionName == item.SectionName && s.guides[i].SequenceNumber == item.SequenceNumber {
			continue
		}
		s.guides[i].SectionName = item.SectionName
		s.guides[i].SequenceNumber = item.SequenceNumber
		s.guides[i].UpdatedAt = now
	}
	return nil
}

// indexOf must be called with the mutex held.
func (s *GuideStore) indexOf(id int) int {
	for i := range s.guides {
		if s.guides[i].ID == id {
			return i
		}
	}
	return -1
}
