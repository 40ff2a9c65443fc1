package tui

import (
	"os"
	"path/filepath"

	"ohmytheme.dev/ohmytheme/internal/cache"
)

// GetLogFilePath returns the path to the log file.
// If OMT_LOG_FILE is set, uses that path.
// Otherwise logs are kept under the omt cache directory.
func GetLogFilePath() string {
	if customPath := os.Getenv("OMT_LOG_FILE"); customPath != "" {
		return customPath
	}

	cacheDir, err := cache.DefaultDir()
	if err != nil {
		// Fallback to current directory if we can't resolve the cache dir
		return "omt.log"
	}

	return filepath.Join(cacheDir, "logs", "omt.log")
}
