package cli

import (
	"github.com/harukimoto/meguri/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Itineraries service.ItineraryService
	Favorites   service.FavoriteService
	Settings    service.SettingsService

	// IsInteractive reports whether stdin is an interactive terminal,
	// gating the TUI and huh forms.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "meguri" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "meguri",
		Short: "Trip itinerary planner with day boards and route optimization",
	}

	root.AddCommand(
		newItineraryCmd(app),
		newFavoriteCmd(app),
		newRouteCmd(app),
		newOptimizeCmd(app),
		newMapCmd(app),
		newPlanCmd(app),
	)

	return root
}
