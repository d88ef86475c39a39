package models

import (
	"strings"
	"time"
)

// TabCode identifies the top-level navigation tab a guide item belongs to.
type TabCode string

const (
	TabHome    TabCode = "home"
	TabAddOn   TabCode = "add-on"
	TabService TabCode = "service"
	TabMyInfo  TabCode = "my-info"
)

// Valid reports whether the tab code is one of the four known tabs.
func (t TabCode) Valid() bool {
	switch t {
	case TabHome, TabAddOn, TabService, TabMyInfo:
		return true
	}
	return false
}

// DefaultSectionName groups items whose section was never set.
const DefaultSectionName = "General"

// DefaultTenantID is the single operator account in this deployment.
const DefaultTenantID = 1

// GuideItem is one piece of guest-facing content with its own visibility
// rules and ordering within a tab section.
type GuideItem struct {
	ID               int     `json:"id"`
	TenantID         int     `json:"tenant_id"`
	Title            string  `json:"title"`
	ShortDescription string  `json:"short_description,omitempty"`
	Content          string  `json:"content"`
	IsHTMLContent    bool    `json:"is_html_content"`
	HeadImageURL     string  `json:"head_image_url,omitempty"`
	TabCode          TabCode `json:"tab_code"`
	SectionName      string  `json:"section_name"`
	Category         string  `json:"category,omitempty"`
	SequenceNumber   int     `json:"sequence_number"`

	// PurchaseSettings is only meaningful for add-on tab items.
	PurchaseSettings *PurchaseSettings `json:"purchase_settings,omitempty"`

	FilterByListingTags      PropertyFilter         `json:"filter_by_listing_tags"`
	FilterByReservationStage ReservationStageFilter `json:"filter_by_reservation_stage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectionOrDefault returns the item's section name, falling back to
// DefaultSectionName when none was assigned.
func (g *GuideItem) SectionOrDefault() string {
	if g.SectionName == "" {
		return DefaultSectionName
	}
	return g.SectionName
}

// HiddenFromGuests reports whether the item can never be shown to a guest
// because no reservation stage is selected. This is a legal state, but the
// operator must be warned about it.
func (g *GuideItem) HiddenFromGuests() bool {
	return len(g.FilterByReservationStage.Stages) == 0
}

// ApplyDefaults fills in every implicit default the editor relies on:
// tenant, section name, property targeting and reservation-stage targeting.
// All creation paths go through this so the defaults stay identical.
func (g *GuideItem) ApplyDefaults() {
	if g.TenantID == 0 {
		g.TenantID = DefaultTenantID
	}
	if g.SectionName == "" {
		g.SectionName = DefaultSectionName
	}
	if g.FilterByListingTags.Type == "" {
		g.FilterByListingTags = AllProperties()
	}
	g.FilterByListingTags.Normalize()
	if g.FilterByReservationStage.Stages == nil {
		// Empty means "visible to no guest" until the operator picks stages.
		g.FilterByReservationStage.Stages = []ReservationStage{}
	}
	if g.PurchaseSettings != nil {
		g.PurchaseSettings.Normalize()
	}
}

// Validate checks the invariants required before a guide item may be stored.
func (g *GuideItem) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(g.Content) == "" {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	if !g.TabCode.Valid() {
		return &ValidationError{Field: "tab_code", Message: "tab_code must be one of home, add-on, service, my-info"}
	}
	if err := g.FilterByListingTags.Validate(); err != nil {
		return err
	}
	if err := g.FilterByReservationStage.Validate(); err != nil {
		return err
	}
	if g.PurchaseSettings != nil {
		if err := g.PurchaseSettings.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GuideUpdate carries a partial update for a guide item. Nil fields are
// left untouched by the store.
type GuideUpdate struct {
	Title                    *string                 `json:"title"`
	ShortDescription         *string                 `json:"short_description"`
	Content                  *string                 `json:"content"`
	IsHTMLContent            *bool                   `json:"is_html_content"`
	HeadImageURL             *string                 `json:"head_image_url"`
	TabCode                  *TabCode                `json:"tab_code"`
	SectionName              *string                 `json:"section_name"`
	Category                 *string                 `json:"category"`
	SequenceNumber           *int                    `json:"sequence_number"`
	PurchaseSettings         *PurchaseSettings       `json:"purchase_settings"`
	FilterByListingTags      *PropertyFilter         `json:"filter_by_listing_tags"`
	FilterByReservationStage *ReservationStageFilter `json:"filter_by_reservation_stage"`
}

// GuideSection is a named sub-grouping of items within a tab, used for
// sidebar organization.
type GuideSection struct {
	Name     string      `json:"name"`
	Items    []GuideItem `json:"items"`
	Expanded bool        `json:"expanded"`
}

// GuideTemplate is the template-summary view over the whole guide.
type GuideTemplate struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Sections []GuideSection `json:"sections"`
}
