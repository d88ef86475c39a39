package models

// Variable is a named placeholder token that can be substituted into guide
// content at guest-render time via the literal pattern {{variable_id}}.
// Catalog entries are immutable process-wide data.
type Variable struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Example     string `json:"example"`
}

// VariableCategory groups catalog variables for the picker widget.
type VariableCategory struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Variables []Variable `json:"variables"`
}

// UploadedFile describes a file held by the in-memory upload registry.
type UploadedFile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Type        string `json:"type"` // "image" or "video"
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
