package domain

type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DisplayName prefers the airport name and falls back to the city, then the code.
func (a Airport) DisplayName() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.City != "":
		return a.City
	default:
		return a.Code
	}
}
