package services

import (
	"sort"

	"github.com/emncan/jolly-scraper/models"
	"github.com/emncan/jolly-scraper/utils"
)

// DefaultTopN is how many hotels survive ranking unless configured otherwise.
const DefaultTopN = 10

// Ranker accumulates hotel records during a run and derives the ranked
// result set once the run is complete. It owns scoring and truncation;
// callers only Add records and Finalize at the end.
type Ranker struct {
	logger *utils.Logger
	topN   int
	hotels []*models.Hotel
}

// NewRanker creates a Ranker keeping at most topN records.
func NewRanker(logger *utils.Logger, topN int) *Ranker {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Ranker{logger: logger, topN: topN}
}

// Add stores one extracted hotel. Records are kept in arrival order, which
// is what breaks ties in Finalize.
func (r *Ranker) Add(h *models.Hotel) {
	r.hotels = append(r.hotels, h)
}

// Len returns the number of accumulated records.
func (r *Ranker) Len() int {
	return len(r.hotels)
}

// Finalize scores every accumulated hotel, sorts descending by final score
// (stable, so equal scores keep arrival order) and returns at most topN
// records. The accumulated set is left untouched, so Finalize is repeatable.
func (r *Ranker) Finalize() []*models.ScoredHotel {
	scored := make([]*models.ScoredHotel, 0, len(r.hotels))
	for _, h := range r.hotels {
		scored = append(scored, &models.ScoredHotel{
			Hotel:      *h,
			FinalScore: FinalScore(h),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	if len(scored) > r.topN {
		scored = scored[:r.topN]
	}

	r.logger.Info("[ranker] Scored %d hotels — keeping top %d", len(r.hotels), len(scored))
	return scored
}
