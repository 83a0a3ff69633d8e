package outwriter

import (
	"os"

	"github.com/trafficlens/trafficlens/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLabelWidth calculates the maximum width for axis labels in
// table output based on terminal width.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for value columns, borders, separators, and padding
	baseWidth := 40

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable label width
		return 15
	}
	if available > 60 {
		// Maximum label width to prevent overly long categories
		return 60
	}
	return available
}

// truncateLabel truncates a label to a maximum width with ellipsis suffix.
func truncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}
