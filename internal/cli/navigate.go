package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harukimoto/meguri/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks all views on the stack to reload their data after a
// mutation made in a view above them.
type refreshViewMsg struct{}

// favoritePickedMsg carries the favorite chosen in the picker back to the
// board view, which starts a favorite-insertion session with it.
type favoritePickedMsg struct {
	experience *domain.Experience
}

// quitMsg asks the appModel to exit the program.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}
