package main

import (
	"fmt"
	"os"

	"github.com/emncan/jolly-scraper/config"
	"github.com/emncan/jolly-scraper/scraper/jolly"
	"github.com/emncan/jolly-scraper/services"
	"github.com/emncan/jolly-scraper/storage"
	"github.com/emncan/jolly-scraper/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Debug)

	logger.Info("=== JollyTur Hotel Scoring run starting ===")
	logger.Info("Search — destination: %s | %s %s, days %s–%s | %d adults",
		cfg.Destination, cfg.TargetMonth, cfg.TargetYear,
		cfg.CheckinDay, cfg.CheckoutDay, cfg.AdultCount)

	writer, err := storage.NewJSONWriter(cfg.OutputDir)
	if err != nil {
		logger.Error("Failed to prepare output directory: %v", err)
		os.Exit(1)
	}

	jollyScraper := jolly.New(cfg, logger)
	hotels, err := jollyScraper.Scrape()
	if err != nil {
		logger.Error("Scrape failed: %v", err)
		os.Exit(1)
	}

	if len(hotels) == 0 {
		logger.Error("No hotels were extracted. Exiting.")
		os.Exit(1)
	}

	ranker := services.NewRanker(logger, cfg.TopN)
	for _, h := range hotels {
		ranker.Add(h)
	}
	top := ranker.Finalize()

	path, err := writer.Write(cfg.Destination, top)
	if err != nil {
		logger.Error("Failed to write ranked results: %v", err)
		os.Exit(1)
	}

	logger.Info("Scoring completed — top %d hotels written to %s", len(top), path)
	fmt.Printf("  Done. Ranked results → %s\n\n", path)
}
