// Package style provides terminal color and formatting helpers.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// OmtColors defines the color palette used to tint repository listings
var OmtColors = [][]int{
	{189, 147, 249}, // Purple
	{255, 121, 198}, // Pink
	{139, 233, 253}, // Cyan
	{80, 250, 123},  // Green
	{241, 250, 140}, // Yellow
	{255, 184, 108}, // Orange
	{255, 85, 85},   // Red
	{98, 114, 164},  // Slate
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// GetRepoColor returns a deterministic color for a repository URL
func GetRepoColor(url string) (lipgloss.Color, bool) {
	if url == "" {
		return lipgloss.Color(""), false
	}
	// Simple hash to select from OmtColors
	var hash uint32
	for i := 0; i < len(url); i++ {
		hash = uint32(url[i]) + (hash << 6) + (hash << 16) - hash
	}
	colorIndex := int(hash) % len(OmtColors)
	color := OmtColors[colorIndex]
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2])), true
}

// ColorRepoURL colors a repository URL deterministically, so the same
// repository keeps its tint across listings
func ColorRepoURL(url string) string {
	if color, ok := GetRepoColor(url); ok {
		return lipgloss.NewStyle().Foreground(color).Render(url)
	}
	return ColorDim(url)
}
