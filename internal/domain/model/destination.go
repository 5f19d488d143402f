package model

// Destination is a travel location the studio shoots at.
type Destination struct {
	ID          string `json:"id"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
