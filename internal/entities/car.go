package entities

// Car is a bookable unit of the fleet. The booking core only reads
// ID, PricePerDay and Available; the rest is catalog data for the UI.
type Car struct {
	ID           int     `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Category     string  `json:"category,omitempty"` // "car" or "van"
	Color        string  `json:"color,omitempty"`
	ReleaseYear  int     `json:"releaseYear,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Fuel         string  `json:"fuel,omitempty"`
	Seats        int     `json:"seats,omitempty"`
	Description  string  `json:"description,omitempty"`
	PricePerDay  float64 `json:"pricePerDay"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Available    bool    `json:"available"`
}
