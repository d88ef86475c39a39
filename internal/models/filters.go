package models

// PropertyFilterType selects how an item is targeted across properties.
type PropertyFilterType string

const (
	PropertyFilterAll          PropertyFilterType = "all"
	PropertyFilterSpecialGroup PropertyFilterType = "special_group"
)

// PropertyFilter targets an item at all properties or at a set of special
// property groups. The guest-facing renderer consumes it; the editor only
// stores it.
type PropertyFilter struct {
	Type            PropertyFilterType `json:"type"`
	SpecialGroupIDs []string           `json:"special_group_ids,omitempty"`
}

// AllProperties is the default targeting for new items.
func AllProperties() PropertyFilter {
	return PropertyFilter{Type: PropertyFilterAll}
}

// Normalize drops group ids when the filter targets all properties.
func (f *PropertyFilter) Normalize() {
	if f.Type == PropertyFilterAll {
		f.SpecialGroupIDs = nil
	}
}

// Validate checks the filter type enumeration.
func (f *PropertyFilter) Validate() error {
	switch f.Type {
	case PropertyFilterAll, PropertyFilterSpecialGroup:
		return nil
	}
	return &ValidationError{Field: "filter_by_listing_tags.type", Message: "type must be all or special_group"}
}

// ReservationStage is the guest's temporal relationship to their stay.
type ReservationStage string

const (
	StageBeforeCheckIn  ReservationStage = "before_check_in"
	StageStaying        ReservationStage = "staying"
	StageBeforeCheckOut ReservationStage = "before_check_out"
	StagePostStay       ReservationStage = "post_stay"
)

// Valid reports whether the stage is one of the four known stages.
func (s ReservationStage) Valid() bool {
	switch s {
	case StageBeforeCheckIn, StageStaying, StageBeforeCheckOut, StagePostStay:
		return true
	}
	return false
}

// ReservationStageFilter limits an item's visibility to a set of stages.
// An empty set means "visible to no guest" and is never treated as "all".
type ReservationStageFilter struct {
	Stages []ReservationStage `json:"stages"`
}

// Validate checks every selected stage against the enumeration.
func (f *ReservationStageFilter) Validate() error {
	for _, s := range f.Stages {
		if !s.Valid() {
			return &ValidationError{Field: "filter_by_reservation_stage.stages", Message: "unknown reservation stage: " + string(s)}
		}
	}
	return nil
}
