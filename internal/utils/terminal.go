package utils

import (
	"io"
	"os"
	"strings"
)

// IsInteractive checks if we're in an interactive terminal
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("OMT_NON_INTERACTIVE") != "" || os.Getenv("OMT_TEST_NO_INTERACTIVE") != "" {
		return false
	}

	// Check if stdin is a terminal
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ReadFromStdin reads all content from standard input
func ReadFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}

	// If it's a terminal, we don't want to block waiting for input
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	// If it's a regular file and it's empty, return empty (don't block)
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	result := strings.TrimSpace(string(bytes))
	return result, nil
}
