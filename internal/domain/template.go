package domain

import "time"

// Template is a reusable invoice layout owned by a vendor. Body content is
// stored opaquely; formatting is a client concern.
type Template struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
