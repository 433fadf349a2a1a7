package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	ErrorLabel = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)
