package services

import (
	"strings"

	"github.com/pinkdoor/guestguide-backend/internal/models"
)

// catalog is the static variable catalog, in declaration order. Entries
// are grouped into categories for the picker widget; the renderer
// substitutes {{id}} tokens in guide content at display time.
var catalog = []models.Variable{
	// Guest Information
	{ID: "guest_first", Name: "Guest First Name", Description: "Primary guest's first name", Category: "guest", Example: "John"},
	{ID: "guest_last", Name: "Guest Last Name", Description: "Primary guest's last name", Category: "guest", Example: "Smith"},
	{ID: "guest_full_name", Name: "Guest Full Name", Description: "Primary guest's full name", Category: "guest", Example: "John Smith"},
	{ID: "guest_email", Name: "Guest Email", Description: "Primary guest's email address", Category: "guest", Example: "john.smith@email.com"},
	{ID: "guest_phone", Name: "Guest Phone", Description: "Primary guest's phone number", Category: "guest", Example: "+1 (555) 123-4567"},

	// Property Attributes
	{ID: "building_name", Name: "Building Name", Description: "Name of the building or property", Category: "property", Example: "The Pink Door"},
	{ID: "listing_address_city", Name: "City", Description: "City where the property is located", Category: "property", Example: "Springfield"},
	{ID: "listing_address", Name: "Full Address", Description: "Complete property address", Category: "property", Example: "742 Evergreen Terrace, Springfield, IL 62701"},
	{ID: "guide_link", Name: "Guide Link", Description: "Link to the property guide", Category: "property", Example: "https://example.com/guide/123"},
	{ID: "marketing_code", Name: "Marketing Code", Description: "Property marketing or reference code", Category: "property", Example: "PD-742"},
	{ID: "property_name", Name: "Property Name", Description: "Official name of the property", Category: "property", Example: "The Pink Door Apartment"},
	{ID: "property_review_link", Name: "Property Review Link", Description: "Link to property reviews", Category: "property", Example: "https://example.com/reviews/123"},

	// Reservation Details
	{ID: "checkin", Name: "Check-in Date", Description: "Guest's check-in date", Category: "reservation", Example: "March 15, 2024"},
	{ID: "checkout", Name: "Check-out Date", Description: "Guest's check-out date", Category: "reservation", Example: "March 18, 2024"},
	{ID: "checkin_time", Name: "Check-in Time", Description: "Check-in time", Category: "reservation", Example: "3:00 PM"},
	{ID: "checkout_time", Name: "Check-out Time", Description: "Check-out time", Category: "reservation", Example: "11:00 AM"},
	{ID: "reservation_number", Name: "Reservation Number", Description: "Unique reservation identifier", Category: "reservation", Example: "RES-2024-001234"},
	{ID: "nights_count", Name: "Number of Nights", Description: "Total nights in reservation", Category: "reservation", Example: "3"},

	// Access Information
	{ID: "access_code", Name: "Access Code", Description: "Property access code", Category: "access", Example: "1234"},
	{ID: "wifi_network", Name: "WiFi Network", Description: "WiFi network name", Category: "access", Example: "PinkDoor_Guest"},
	{ID: "wifi_password", Name: "WiFi Password", Description: "WiFi network password", Category: "access", Example: "welcome2024"},
	{ID: "parking_info", Name: "Parking Information", Description: "Parking details and instructions", Category: "access", Example: "Space #15 in underground garage"},

	// Contact Information
	{ID: "host_name", Name: "Host Name", Description: "Property host or manager name", Category: "contact", Example: "Sarah Johnson"},
	{ID: "host_phone", Name: "Host Phone", Description: "Host contact phone number", Category: "contact", Example: "+1 (555) 123-4567"},
	{ID: "host_email", Name: "Host Email", Description: "Host contact email", Category: "contact", Example: "host@pinkdoor.com"},
	{ID: "emergency_phone", Name: "Emergency Phone", Description: "Emergency contact number", Category: "contact", Example: "+1 (555) 911-0000"},
	{ID: "support_email", Name: "Support Email", Description: "Customer support email", Category: "contact", Example: "support@pinkdoor.com"},
}

// categoryOrder fixes the category display order for the picker.
var categoryOrder = []struct {
	ID   string
	Name string
}{
	{"guest", "Guest Information"},
	{"property", "Property Attributes"},
	{"reservation", "Reservation Details"},
	{"access", "Access Information"},
	{"contact", "Contact Information"},
}

// VariableService exposes the read-only variable catalog.
type VariableService struct{}

// NewVariableService creates a new variable service.
func NewVariableService() *VariableService {
	return &VariableService{}
}

// ListAll returns every catalog variable in declaration order.
func (s *VariableService) ListAll() []models.Variable {
	out := make([]models.Variable, len(catalog))
	copy(out, catalog)
	return out
}

// ListByCategory returns the catalog grouped into its fixed categories.
// Categories with no variables are still returned so the picker shows
// stable headings.
func (s *VariableService) ListByCategory() []models.VariableCategory {
	categories := make([]models.VariableCategory, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		cat := models.VariableCategory{ID: c.ID, Name: c.Name, Variables: []models.Variable{}}
		for _, v := range catalog {
			if v.Category == c.ID {
				cat.Variables = append(cat.Variables, v)
			}
		}
		categories = append(categories, cat)
	}
	return categories
}

// Search returns the variables whose id, name or description contains the
// query, case-insensitively. An empty query matches everything.
func (s *VariableService) Search(query string) []models.Variable {
	term := strings.ToLower(strings.TrimSpace(query))
	matches := make([]models.Variable, 0)
	for _, v := range catalog {
		if term == "" ||
			strings.Contains(strings.ToLower(v.ID), term) ||
			strings.Contains(strings.ToLower(v.Name), term) ||
			strings.Contains(strings.ToLower(v.Description), term) {
			matches = append(matches, v)
		}
	}
	return matches
}

// GetByID returns one catalog variable.
func (s *VariableService) GetByID(id string) (models.Variable, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return models.Variable{}, false
}

// Format returns the literal substitution token for a variable id. The id
// is not checked against the catalog; the renderer handles unknown tokens.
func (s *VariableService) Format(variableID string) string {
	return "{{" + variableID + "}}"
}

// CategoryName resolves a category id to its display name, falling back
// to the id itself for unknown categories.
func (s *VariableService) CategoryName(categoryID string) string {
	for _, c := range categoryOrder {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return categoryID
}
