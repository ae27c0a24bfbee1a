package cli

import "github.com/harukimoto/meguri/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Route settings loaded at startup and kept current as the user
	// toggles them inside the TUI.
	Settings domain.RouteSettings

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content, accounting
// for the header (title + separator) and the footer help bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
