package domain

// FAQ is a display-only frequently-asked-question entry served alongside the
// catalog.
type FAQ struct {
	ID       string `json:"id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}
