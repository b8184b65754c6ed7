package dto

// ContactRequest represents the payload of the contact form
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a received contact message
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
