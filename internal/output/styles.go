package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: directory and file names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree connectors and descriptions.
	ColorDimGray = lipgloss.Color("240")

	// ColorIntroBg is the background of the session banner.
	ColorIntroBg = lipgloss.Color("6")

	// ColorIntroFg is the foreground of the session banner.
	ColorIntroFg = lipgloss.Color("0")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleSection styles prompt section headers such as [Godot].
	StyleSection = lipgloss.NewStyle().Bold(true).Underline(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleIntro styles the session banner.
	StyleIntro = lipgloss.NewStyle().Background(ColorIntroBg).Foreground(ColorIntroFg).Padding(0, 1)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatSection renders a section header.
func FormatSection(title string) string {
	return StyleSection.Render("[" + title + "]")
}

// FormatIntro renders the session banner.
func FormatIntro(title string) string {
	return StyleIntro.Render(title)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
