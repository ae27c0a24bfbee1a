package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/planner"
	"github.com/harukimoto/meguri/internal/routing"
)

// routeReportView shows the optimizer's proposal for one day and lets the
// user apply it in place.
type routeReportView struct {
	state   *SharedState
	ctrl    *planner.Controller
	board   int
	plan    *routing.Plan
	applied bool
}

func newRouteReportView(state *SharedState, ctrl *planner.Controller, board int) *routeReportView {
	v := &routeReportView{state: state, ctrl: ctrl, board: board}
	v.recompute()
	return v
}

func (v *routeReportView) recompute() {
	boards := v.ctrl.Itinerary().Boards
	if v.board < 0 || v.board >= len(boards) {
		v.plan = &routing.Plan{}
		return
	}
	v.plan = routing.Optimize(boards[v.board].Items, routing.Options{
		Mode: v.state.Settings.TransportMode,
	})
}

func (v *routeReportView) ID() ViewID { return ViewRouteReport }

func (v *routeReportView) Title() string {
	return fmt.Sprintf("Route · Day %d", v.board+1)
}

func (v *routeReportView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
	if v.plan.WorthApplying && !v.applied {
		bindings = append([]key.Binding{
			key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply order")),
		}, bindings...)
	}
	return bindings
}

func (v *routeReportView) Init() tea.Cmd { return nil }

func (v *routeReportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			// Orders that don't clear the savings thresholds are shown
			// but never committed, matching the non-interactive command.
			if v.plan.WorthApplying && !v.applied {
				v.applied = v.ctrl.ApplyOptimizedRoute(v.board, v.plan.Optimized)
				if v.applied {
					return v, func() tea.Msg { return refreshViewMsg{} }
				}
			}
		case "esc", "q", "enter":
			return v, popView()
		}
	}
	return v, nil
}

func (v *routeReportView) View() string {
	out := formatter.RoutePlanReport(v.plan, v.board)
	if v.applied {
		out += "\n" + formatter.StyleGreen.Render("✓ applied")
	}
	return out
}
