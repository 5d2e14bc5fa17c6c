package dto

// RegisterRequest payload for vendor registration.
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Telephone    string `json:"telephone"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type"`
	GSTNo        string `json:"gst_no"`
	Mobile       string `json:"mobile"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
