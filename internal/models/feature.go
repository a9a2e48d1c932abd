package models

// Feature is a marketing highlight shown on the home surface.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
