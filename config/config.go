package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxAdults is the largest party size the search form accepts.
const MaxAdults = 9

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Search form parameters. Month names must be in Turkish, exactly as
	// the site's date picker displays them (e.g. "Ağustos").
	Destination string
	TargetMonth string
	TargetYear  string
	CheckinDay  string
	CheckoutDay string
	AdultCount  int

	// Browser session
	Headless   bool
	ChromeBin  string
	UserAgents []string
	Proxies    []string
	MaxRetries int

	// Result-list loader tuning
	ScrollStepPx     int
	MaxScrolls       int
	MaxCalendarPages int

	// Output
	OutputDir string
	TopN      int

	Debug bool
}

// defaultUserAgents is used when USER_AGENT_LIST is not set.
var defaultUserAgents = []string{
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		Destination: getEnv("DESTINATION", "Ölüdeniz"),
		TargetMonth: getEnv("TARGET_MONTH", "Ağustos"),
		TargetYear:  getEnv("TARGET_YEAR", "2025"),
		CheckinDay:  getEnv("CHECKIN_DAY", "4"),
		CheckoutDay: getEnv("CHECKOUT_DAY", "8"),
		AdultCount:  getEnvInt("ADULT_COUNT", 3),

		Headless:   getEnvBool("HEADLESS", true),
		ChromeBin:  getEnv("CHROME_BIN", ""),
		UserAgents: getEnvList("USER_AGENT_LIST", defaultUserAgents),
		Proxies:    getEnvList("PROXY_LIST", nil),
		MaxRetries: getEnvInt("MAX_RETRIES", 3),

		ScrollStepPx:     getEnvInt("SCROLL_STEP_PX", 550),
		MaxScrolls:       getEnvInt("MAX_SCROLLS", 50),
		MaxCalendarPages: getEnvInt("MAX_CALENDAR_PAGES", 24),

		OutputDir: getEnv("OUTPUT_DIR", "./output"),
		TopN:      getEnvInt("TOP_N", 10),

		Debug: getEnvBool("DEBUG", false),
	}

	if cfg.AdultCount > MaxAdults {
		log.Printf("[config] ADULT_COUNT %d exceeds site limit, capping at %d", cfg.AdultCount, MaxAdults)
		cfg.AdultCount = MaxAdults
	}
	if cfg.AdultCount < 1 {
		cfg.AdultCount = 1
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

// getEnvList parses a comma-separated env var into a slice, dropping empty
// entries.
func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
