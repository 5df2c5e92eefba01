package entities

// Scholarship and University are read-only directory records used to word
// notifications and address the email webhook.

type Scholarship struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	UniversityID string `json:"university_id"`
}

type University struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}
