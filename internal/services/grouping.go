package services

import (
	"sort"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// GroupBySection partitions the items of one tab into named sections for
// the editor sidebar. Section order is the first-occurrence order of the
// section names; within a section items are sorted by sequence number
// (missing treated as zero) with the original relative order preserved on
// ties. Every section is expanded in the editor.
func GroupBySection(items []models.GuideItem, tab models.TabCode) []models.GuideSection {
	sections := groupItems(items, func(g *models.GuideItem) bool { return g.TabCode == tab })
	for i := range sections {
		sections[i].Expanded = true
	}
	return sections
}

// BuildTemplate builds the template-summary view over the whole guide.
// Unlike the sidebar it spans all tabs, and only the "Welcome" section
// starts expanded.
func BuildTemplate(items []models.GuideItem) models.GuideTemplate {
	sections := groupItems(items, func(*models.GuideItem) bool { return true })
	for i := range sections {
		sections[i].Expanded = sections[i].Name == "Welcome"
	}
	return models.GuideTemplate{
		ID:       "default",
		Name:     "Default Template",
		Sections: sections,
	}
}

func groupItems(items []models.GuideItem, keep func(*models.GuideItem) bool) []models.GuideSection {
	var order []string
	grouped := make(map[string][]models.GuideItem)

	for i := range items {
		if !keep(&items[i]) {
			continue
		}
		name := items[i].SectionOrDefault()
		if _, ok := grouped[name]; !ok {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], items[i])
	}

	sections := make([]models.GuideSection, 0, len(order))
	for _, name := range order {
		group := grouped[name]
		sort.SliceStable(group, func(a, b int) bool {
			return group[a].SequenceNumber < group[b].SequenceNumber
		})
		sections = append(sections, models.GuideSection{Name: name, Items: group})
	}
	return sections
}
