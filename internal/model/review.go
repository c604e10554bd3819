package model

// Review keeps its rating as text ("1" through "5"); it is stored,
// validated and filtered as a string, never converted to a number.
type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Rating  string `json:"rating" validate:"required,rating_string"`
	Comment string `json:"comment" validate:"required"`
	Visible bool   `json:"visible"`
}
