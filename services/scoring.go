package services

import (
	"strconv"
	"strings"

	"github.com/emncan/jolly-scraper/models"
)

// ParsePrice converts a Turkish-format price string (e.g. "43.990,00 TL")
// into a float64 (43990.00). The currency suffix is stripped, commas act as
// decimal separators and dots as thousand separators. Malformed or empty
// input yields 0 — price parsing never fails a run.
func ParsePrice(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, " TL", ""))
	if raw == "" {
		return 0
	}

	raw = strings.ReplaceAll(raw, ",", ".")

	// Everything before the last dot is the integer part; the dots inside it
	// are thousand separators and are dropped.
	parts := strings.Split(raw, ".")
	cleaned := parts[0]
	if len(parts) > 1 {
		cleaned = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return val
}

// BaseScore computes the heuristic desirability score of a hotel. The
// contributions are additive and independent:
//
//	+1.0  cancellation policy mentions "Risksiz rezervasyon"
//	+1.0  the hotel carries a recommendation marker
//	+0.05 per comma-separated feature token
//	+2.0 … +0.3 depending on the accommodation plan
func BaseScore(h *models.Hotel) float64 {
	score := 0.0

	if strings.Contains(h.CancelPolicy, "Risksiz rezervasyon") {
		score += 1.0
	}

	if h.RecommendedHotel != nil {
		score += 1.0
	}

	if h.Features != "" {
		score += 0.05 * float64(len(strings.Split(h.Features, ",")))
	}

	// Most specific plan first: every "ultra her şey dahil" string also
	// contains "her şey dahil".
	accom := strings.ToLower(strings.TrimSpace(h.AccommodationTypes))
	switch {
	case strings.Contains(accom, "ultra her şey dahil"):
		score += 2.0
	case strings.Contains(accom, "her şey dahil"):
		score += 1.5
	case strings.Contains(accom, "yarım pansiyon"):
		score += 1.0
	case strings.Contains(accom, "oda kahvaltı"):
		score += 0.5
	case strings.Contains(accom, "sadece oda"):
		score += 0.3
	}

	return score
}

// FinalScore normalises the base score by price, so a cheaper hotel with the
// same amenities ranks higher. An unparsable or zero price falls back to a
// divisor of 1, which keeps the result finite and equal to the base score.
func FinalScore(h *models.Hotel) float64 {
	price := ParsePrice(h.Price)
	if price <= 0 {
		price = 1
	}
	return BaseScore(h) / price
}
