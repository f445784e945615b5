package models

// Hotel holds the raw data extracted from a single hotel detail page.
// Field values keep the site's original text formatting (Turkish locale
// prices, comma-joined feature lists); parsing happens in the scoring
// service. JSON keys match the export format of earlier runs, including
// the historical "recomended_hotel" spelling.
type Hotel struct {
	DetailPageURL      string  `json:"detail_page_url"`
	Name               string  `json:"hotel_name"`
	Price              string  `json:"price"`
	Location           string  `json:"location"`
	AccommodationTypes string  `json:"accommodation_types"`
	CheckinTime        string  `json:"checkin_time"`
	CheckoutTime       string  `json:"checkout_time"`
	Features           string  `json:"hotel_features"`
	CancelPolicy       string  `json:"cancel_policy"`
	RecommendedHotel   *string `json:"recomended_hotel"`
}

// ScoredHotel is a Hotel plus its computed final score. Embedding keeps the
// original field order in the JSON output, with final_score appended last.
type ScoredHotel struct {
	Hotel
	FinalScore float64 `json:"final_score"`
}
