package services

import (
	"github.com/sirupsen/logrus"

	"github.com/pinkdoor/guestguide-backend/internal/models"
	"github.com/pinkdoor/guestguide-backend/internal/store"
)

// GuideService orchestrates the guide store, the section grouper and the
// reorder engine for the editor UI.
type GuideService struct {
	store  *store.GuideStore
	logger *logrus.Logger
}

// NewGuideService creates a new guide service.
func NewGuideService(guideStore *store.GuideStore, logger *logrus.Logger) *GuideService {
	return &GuideService{
		store:  guideStore,
		logger: logger,
	}
}

// ListGuides returns the current snapshot of all guide items.
func (s *GuideService) ListGuides() []models.GuideItem {
	return s.store.List()
}

// GetGuide returns one guide item by id.
func (s *GuideService) GetGuide(id int) (models.GuideItem, error) {
	return s.store.Get(id)
}

// CreateGuide validates and stores a new guide item.
func (s *GuideService) CreateGuide(item models.GuideItem) (models.GuideItem, error) {
	created, err := s.store.Create(item)
	if err != nil {
		return models.GuideItem{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"guide_id": created.ID,
		"tab":      created.TabCode,
		"section":  created.SectionName,
	}).Info("Guide item created")
	return created, nil
}

// UpdateGuide merges a partial update over an existing guide item.
func (s *GuideService) UpdateGuide(id int, upd models.GuideUpdate) (models.GuideItem, error) {
	updated, err := s.store.Update(id, upd)
	if err != nil {
		return models.GuideItem{}, err
	}
	s.logger.WithField("guide_id", id).Info("Guide item updated")
	return updated, nil
}

// DeleteGuide removes a guide item. The boolean reports whether the item
// existed; deleting an absent id is not an error.
func (s *GuideService) DeleteGuide(id int) bool {
	deleted := s.store.Delete(id)
	if deleted {
		s.logger.WithField("guide_id", id).Info("Guide item deleted")
	}
	return deleted
}

// SectionsForTab returns the grouped sidebar view for one tab.
func (s *GuideService) SectionsForTab(tab models.TabCode) ([]models.GuideSection, error) {
	if !tab.Valid() {
		return nil, &models.ValidationError{Field: "tab", Message: "tab must be one of home, add-on, service, my-info"}
	}
	return GroupBySection(s.store.List(), tab), nil
}

// Template returns the template-summary view over the whole guide.
func (s *GuideService) Template() models.GuideTemplate {
	return BuildTemplate(s.store.List())
}

// ReorderGuides applies a drag-and-drop move: the reorder engine computes
// the new assignment from a single snapshot, the store applies it as one
// batched write, and the freshly grouped view of the dragged item's tab is
// returned so the caller can swap its display atomically. If the write
// fails the authoritative grouped view is returned alongside the error so
// the caller never shows a stale order.
func (s *GuideService) ReorderGuides(draggedID int, targetSection string, targetIndex int) ([]models.GuideSection, error) {
	snapshot := s.store.List()
	reordered, err := Reorder(snapshot, draggedID, targetSection, targetIndex)
	if err != nil {
		return nil, err
	}

	var tab models.TabCode
	for i := range reordered {
		if reordered[i].ID == draggedID {
			tab = reordered[i].TabCode
			break
		}
	}

	if err := s.store.ApplyReorder(reordered); err != nil {
		s.logger.WithFields(logrus.Fields{
			"guide_id": draggedID,
			"section":  targetSection,
		}).WithError(err).Warn("Reorder write failed, reloading authoritative order")
		return GroupBySection(s.store.List(), tab), err
	}

	s.logger.WithFields(logrus.Fields{
		"guide_id": draggedID,
		"section":  targetSection,
		"index":    targetIndex,
	}).Info("Guide items reordered")
	return GroupBySection(s.store.List(), tab), nil
}
