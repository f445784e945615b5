package storage

import "github.com/emncan/jolly-scraper/models"

// ResultWriter is the interface any ranked-result sink must satisfy. Write
// returns the path of the artifact it produced.
type ResultWriter interface {
	Write(destination string, hotels []*models.ScoredHotel) (string, error)
}
