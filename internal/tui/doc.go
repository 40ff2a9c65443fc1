// Package tui provides the terminal user interface for omt.
//
// It handles:
//   - Interactive prompts and selections (using survey and bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Opening the user's editor for hand edits
package tui
