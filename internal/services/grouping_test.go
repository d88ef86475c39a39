package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

func homeItems() []models.GuideItem {
	return []models.GuideItem{
		{ID: 1, Title: "Welcome", TabCode: models.TabHome, SectionName: "Welcome", SequenceNumber: 1},
		{ID: 2, Title: "Wifi", TabCode: models.TabHome, SectionName: "Access", SequenceNumber: 2},
		{ID: 3, Title: "Access Code", TabCode: models.TabHome, SectionName: "Access", SequenceNumber: 1},
		{ID: 4, Title: "Concierge", TabCode: models.TabService, SectionName: "Guest Services", SequenceNumber: 1},
		{ID: 5, Title: "Reservation Info", TabCode: models.TabHome, SectionName: "Welcome", SequenceNumber: 2},
	}
}

func TestGroupBySection_FiltersToTab(t *testing.T) {
	sections := GroupBySection(homeItems(), models.TabHome)

	var ids []int
	for _, sec := range sections {
		for _, item := range sec.Items {
			ids = append(ids, item.ID)
		}
	}
	// Set equality with the tab-filtered input: nothing lost, nothing
	// duplicated, nothing from other tabs.
	assert.ElementsMatch(t, []int{1, 2, 3, 5}, ids)
}

func TestGroupBySection_FirstOccurrenceSectionOrder(t *testing.T) {
	sections := GroupBySection(homeItems(), models.TabHome)

	require.Len(t, sections, 2)
	assert.Equal(t, "Welcome", sections[0].Name)
	assert.Equal(t, "Access", sections[1].Name)
}

func TestGroupBySection_SortsWithinSectionBySequence(t *testing.T) {
	sections := GroupBySection(homeItems(), models.TabHome)

	access := sections[1]
	require.Len(t, access.Items, 2)
	assert.Equal(t, "Access Code", access.Items[0].Title)
	assert.Equal(t, "Wifi", access.Items[1].Title)

	for _, sec := range sections {
		for i := 1; i < len(sec.Items); i++ {
			assert.LessOrEqual(t, sec.Items[i-1].SequenceNumber, sec.Items[i].SequenceNumber)
		}
	}
}

func TestGroupBySection_MissingSequenceSortsFirstStably(t *testing.T) {
	items := []models.GuideItem{
		{ID: 1, Title: "b", TabCode: models.TabHome, SectionName: "S", SequenceNumber: 2},
		{ID: 2, Title: "no-seq-1", TabCode: models.TabHome, SectionName: "S"},
		{ID: 3, Title: "no-seq-2", TabCode: models.TabHome, SectionName: "S"},
	}

	sections := GroupBySection(items, models.TabHome)
	require.Len(t, sections, 1)

	got := sections[0].Items
	// Missing sequence is treated as zero; the tie keeps input order.
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestGroupBySection_EmptySectionNameFallsBackToGeneral(t *testing.T) {
	items := []models.GuideItem{
		{ID: 1, Title: "a", TabCode: models.TabHome},
	}

	sections := GroupBySection(items, models.TabHome)
	require.Len(t, sections, 1)
	assert.Equal(t, models.DefaultSectionName, sections[0].Name)
}

func TestGroupBySection_AllSectionsExpanded(t *testing.T) {
	sections := GroupBySection(homeItems(), models.TabHome)
	for _, sec := range sections {
		assert.True(t, sec.Expanded)
	}
}

func TestGroupBySection_NoItemsForTab(t *testing.T) {
	sections := GroupBySection(homeItems(), models.TabAddOn)
	assert.Empty(t, sections)
}

func TestBuildTemplate_OnlyWelcomeExpanded(t *testing.T) {
	template := BuildTemplate(homeItems())

	assert.Equal(t, "default", template.ID)
	require.NotEmpty(t, template.Sections)
	for _, sec := range template.Sections {
		assert.Equal(t, sec.Name == "Welcome", sec.Expanded, "section %q", sec.Name)
	}
}

func TestBuildTemplate_SpansAllTabs(t *testing.T) {
	template := BuildTemplate(homeItems())

	total := 0
	for _, sec := range template.Sections {
		total += len(sec.Items)
	}
	assert.Equal(t, len(homeItems()), total)
}
