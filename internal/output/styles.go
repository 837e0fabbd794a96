package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: package names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "install" action (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "update" action and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "remove" action.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (package names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles user-visible warnings like missing binaries.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Action name constants.
const (
	ActionInstall = "install"
	ActionUpdate  = "update"
	ActionRemove  = "remove"
)

// ActionStyle returns the lipgloss style for a given action name.
// Unknown actions return an unstyled default.
func ActionStyle(action string) lipgloss.Style {
	switch action {
	case ActionInstall:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case ActionUpdate:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case ActionRemove:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatWarning renders a yellow package-scoped warning line.
func FormatWarning(name, msg string) string {
	return StyleWarning.Render(name) + " " + StyleWarning.Render(msg)
}
