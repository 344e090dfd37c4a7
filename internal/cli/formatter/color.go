package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColor switches styled output on or off for the whole process. Enabling
// restores the profile detected from stdout and the environment.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// StatusStyle returns the style for a curation status.
func StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusRecommended:
		return StyleGreen
	case domain.StatusConsider:
		return StyleBlue
	case domain.StatusReview:
		return StyleYellow
	case domain.StatusReject:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator such as "● RECOMMENDED".
func StatusPill(status domain.Status) string {
	switch status {
	case domain.StatusRecommended:
		return StyleGreen.Render("● RECOMMENDED")
	case domain.StatusConsider:
		return StyleBlue.Render("○ CONSIDER")
	case domain.StatusReview:
		return StyleYellow.Render("◐ REVIEW")
	case domain.StatusReject:
		return StyleRed.Render("✖ REJECT")
	default:
		return StyleDim.Render(string(status))
	}
}

// EditionPill returns a colored indicator for an edition's lifecycle state.
func EditionPill(status domain.EditionStatus) string {
	switch status {
	case domain.EditionPlanned:
		return StyleGreen.Render("● Planned")
	case domain.EditionCurated:
		return StyleBlue.Render("○ Curated")
	case domain.EditionDraft:
		return StyleDim.Render("… Draft")
	default:
		return StyleDim.Render(string(status))
	}
}

// ScoreText colors a brand score by the status band it falls in.
func ScoreText(score int) string {
	text := fmt.Sprintf("%3d", score)
	switch {
	case score >= 80:
		return StyleGreen.Render(text)
	case score >= 60:
		return StyleBlue.Render(text)
	case score >= 40:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
