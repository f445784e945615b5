package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emncan/jolly-scraper/models"
	"github.com/emncan/jolly-scraper/services"
)

func sampleScored() []*models.ScoredHotel {
	marker := "recommended"
	hotels := []*models.Hotel{
		{
			DetailPageURL:      "https://www.jollytur.com/oludeniz-resort",
			Name:               "Ölüdeniz Resort",
			Price:              "43.990,00 TL",
			Location:           "Ölüdeniz, Fethiye",
			AccommodationTypes: "Ultra Her Şey Dahil",
			Features:           "Wifi, Havuz, Plaj",
			CancelPolicy:       "Risksiz rezervasyon dahildir",
			RecommendedHotel:   &marker,
		},
		{
			DetailPageURL:      "https://www.jollytur.com/kemer-otel",
			Name:               "Kemer Otel",
			Price:              "12.500,00 TL",
			AccommodationTypes: "Oda Kahvaltı",
		},
	}

	scored := make([]*models.ScoredHotel, 0, len(hotels))
	for _, h := range hotels {
		scored = append(scored, &models.ScoredHotel{Hotel: *h, FinalScore: services.FinalScore(h)})
	}
	return scored
}

func TestJSONWriterRoundTrip(t *testing.T) {
	w, err := NewJSONWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}

	want := sampleScored()
	path, err := w.Write("Ölüdeniz", want)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var got []*models.ScoredHotel
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("record count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].FinalScore != want[i].FinalScore {
			t.Errorf("record %d final_score: got %v, want %v", i, got[i].FinalScore, want[i].FinalScore)
		}
		if got[i].Name != want[i].Name || got[i].Price != want[i].Price {
			t.Errorf("record %d fields changed across round trip", i)
		}
	}
}

func TestJSONWriterPathKeyedByDestination(t *testing.T) {
	dir := t.TempDir()
	w, err := NewJSONWriter(dir)
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}

	if got, want := w.Path("Kemer"), filepath.Join(dir, "Kemer_scored.json"); got != want {
		t.Errorf("Path: got %q, want %q", got, want)
	}
}

func TestJSONWriterPreservesNonASCII(t *testing.T) {
	w, err := NewJSONWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}

	path, err := w.Write("Ölüdeniz", sampleScored())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Ultra Her Şey Dahil") {
		t.Error("Turkish characters should be written literally, not escaped")
	}
}

func TestJSONWriterEmptyRunWritesEmptyArray(t *testing.T) {
	w, err := NewJSONWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONWriter: %v", err)
	}

	path, err := w.Write("Kemer", nil)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got []*models.ScoredHotel
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty JSON array, got %v", got)
	}
}

func TestJSONWriterFailsOnUnwritableDir(t *testing.T) {
	// A file standing where the output directory should be makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "output")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewJSONWriter(blocker); err == nil {
		t.Error("expected an error when the output dir cannot be created")
	}
}
