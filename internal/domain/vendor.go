package domain

import "time"

// Vendor is the domain model for a registered tenant. ID and BusinessCode are
// generated external identifiers ("V-..." and "B-..."), distinct from any
// storage key. PasswordHash is never serialized.
type Vendor struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Telephone    string    `json:"telephone"`
	Address      string    `json:"address"`
	BusinessType string    `json:"business_type"`
	BusinessCode string    `json:"business_code"`
	GSTNo        string    `json:"gst_no"`
	Mobile       string    `json:"mobile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Summary returns the redacted shape exposed after login.
func (v *Vendor) Summary() VendorSummary {
	return VendorSummary{
		ID:       v.ID,
		Username: v.Username,
		Name:     v.Name,
		Email:    v.Email,
	}
}

// VendorSummary is the redacted vendor view returned alongside tokens.
type VendorSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}
