package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/harukimoto/meguri/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
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
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the lipgloss style for an experience category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryHotel:
		return StyleBlue
	case domain.CategoryRestaurant:
		return StyleRed
	case domain.CategoryCafe:
		return StyleYellow
	case domain.CategoryAttraction:
		return StyleGreen
	case domain.CategoryShop:
		return StylePurple
	case domain.CategoryOnsen:
		return StyleAqua
	default:
		return StyleDim
	}
}

// CategoryGlyph returns a one-character marker for an experience category.
func CategoryGlyph(c domain.Category) string {
	switch c {
	case domain.CategoryHotel:
		return "⌂"
	case domain.CategoryRestaurant:
		return "¥"
	case domain.CategoryCafe:
		return "c"
	case domain.CategoryAttraction:
		return "★"
	case domain.CategoryShop:
		return "$"
	case domain.CategoryOnsen:
		return "♨"
	default:
		return "·"
	}
}

// Dim renders text in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Header renders text in the header style.
func Header(s string) string { return StyleHeader.Render(s) }
