package dto

// TemplateRequest payload for creating or updating a template.
type TemplateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Body        string `json:"body"`
}
