package adapters

import (
	"os"
	"time"
)

// DefaultPath is where the saved timetable page is expected, relative to the working directory.
const DefaultPath = "src/Tabliczka_ASG_HTML.html"

const defaultFetchTimeout = 15 * time.Second

// Config holds the location of the schedule page for the ingest and server commands.
// When URL is set the page is downloaded instead of read from Path.
type Config struct {
	Path    string
	URL     string
	Timeout time.Duration
}

// LoadConfig loads the schedule page location from environment variables.
func LoadConfig() Config {
	path := os.Getenv("SCHEDULE_HTML_PATH")
	if path == "" {
		path = DefaultPath
	}
	timeout, err := time.ParseDuration(os.Getenv("SCHEDULE_FETCH_TIMEOUT"))
	if err != nil || timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return Config{
		Path:    path,
		URL:     os.Getenv("SCHEDULE_HTML_URL"),
		Timeout: timeout,
	}
}
