package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/wildercal/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to at most n visible runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// HumanDate renders t as "Jan 2, 2006", or "Today" for the current day.
func HumanDate(t time.Time) string {
	return HumanDateFrom(t, time.Now())
}

// HumanDateFrom is HumanDate against a fixed reference time.
func HumanDateFrom(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.In(now.Location()).Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return t.In(now.Location()).Format("Jan 2, 2006")
}

// PriceLabel is the short price display: FREE, $, $$ or $$$.
func PriceLabel(tier domain.PriceTier) string {
	switch tier {
	case domain.Price5To10:
		return "$"
	case domain.Price10To15:
		return "$$"
	case domain.Price15Plus:
		return "$$$"
	default:
		return "FREE"
	}
}

// RatingLabel renders "4.7 (298)" or a dimmed dash when no rating is known.
func RatingLabel(e domain.Enrichment) string {
	if e.Rating == nil {
		return Dim("--")
	}
	if e.ReviewCount == nil {
		return fmt.Sprintf("%.1f", *e.Rating)
	}
	return fmt.Sprintf("%.1f (%d)", *e.Rating, *e.ReviewCount)
}

// Plural renders "1 place" or "3 places".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
