package services

import (
	"sort"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// Reorder computes the item list after a drag-and-drop move. The dragged
// item is reassigned to targetSection at targetIndex (clamped to the
// section bounds) and the whole target section is renumbered to a dense
// 1..N sequence. The item's tab never changes; cross-tab drops are not
// supported. Items outside the affected section pass through unchanged.
//
// The input slice is not mutated; for fixed inputs the output is exactly
// reproducible.
func Reorder(allItems []models.GuideItem, draggedID int, targetSection string, targetIndex int) ([]models.GuideItem, error) {
	draggedIdx := -1
	for i := range allItems {
		if allItems[i].ID == draggedID {
			draggedIdx = i
			break
		}
	}
	if draggedIdx < 0 {
		return nil, &models.NotFoundError{Resource: "guide", ID: draggedID}
	}
	if targetSection == "" {
		targetSection = models.DefaultSectionName
	}

	result := make([]models.GuideItem, len(allItems))
	copy(result, allItems)

	tab := result[draggedIdx].TabCode

	// Sibling positions in the target section, excluding the dragged item,
	// ordered the same way the sidebar displays them.
	var siblings []int
	for i := range result {
		if i == draggedIdx {
			continue
		}
		if result[i].TabCode == tab && result[i].SectionOrDefault() == targetSection {
			siblings = append(siblings, i)
		}
	}
	sort.SliceStable(siblings, func(a, b int) bool {
		return result[siblings[a]].SequenceNumber < result[siblings[b]].SequenceNumber
	})

	insertAt := targetIndex
	if insertAt < 0 {
		insertAt = 0
	}
	if insertAt > len(siblings) {
		insertAt = len(siblings)
	}

	ordered := make([]int, 0, len(siblings)+1)
	ordered = append(ordered, siblings[:insertAt]...)
	ordered = append(ordered, draggedIdx)
	ordered = append(ordered, siblings[insertAt:]...)

	for rank, i := range ordered {
		result[i].SectionName = targetSection
		result[i].SequenceNumber = rank + 1
	}
	return result, nil
}
