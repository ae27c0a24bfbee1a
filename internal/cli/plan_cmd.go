package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harukimoto/meguri/internal/planner"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <itinerary>",
		Short: "Open the interactive day-board planner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("plan requires an interactive terminal")
			}
			ctx := cmd.Context()

			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Itineraries.GetByID(ctx, id)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			state := &SharedState{App: app, Settings: settings}
			ctrl := planner.NewController(it)
			board := newBoardView(state, ctrl, func(snap planner.Snapshot) error {
				return app.Itineraries.Save(ctx, snap)
			})

			model := newAppModel(state, board)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
