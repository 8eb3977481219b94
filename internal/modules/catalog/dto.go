package catalog

// QuoteResponse is the instant estimate the quote calculator renders for a
// (device, issue) pair.
type QuoteResponse struct {
	ServiceSlug     string  `json:"service_slug"`
	ServiceName     string  `json:"service_name"`
	PriceMin        float64 `json:"price_min"`
	PriceMax        float64 `json:"price_max"`
	DurationMinutes int     `json:"duration_minutes"`
	DurationLabel   string  `json:"duration_label"`
}
