// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Terminal and interactivity detection
//   - Reading piped standard input
//   - Opening URLs in the system browser
package utils
