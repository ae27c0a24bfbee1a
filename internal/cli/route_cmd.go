package cli

import (
	"fmt"

	"github.com/harukimoto/meguri/internal/domain"
	"github.com/spf13/cobra"
)

func newRouteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Route settings: transport mode and display toggles",
	}

	cmd.AddCommand(
		newRouteShowCmd(app),
		newRouteModeCmd(app),
		newRouteToggleCmd(app, "distances", "Show distance indicators between stops",
			func(app *App) func(cmd *cobra.Command, on bool) error {
				return func(cmd *cobra.Command, on bool) error {
					return app.Settings.SetShowDistances(cmd.Context(), on)
				}
			}),
		newRouteToggleCmd(app, "optimizer", "Show route optimizer hints",
			func(app *App) func(cmd *cobra.Command, on bool) error {
				return func(cmd *cobra.Command, on bool) error {
					return app.Settings.SetShowOptimizer(cmd.Context(), on)
				}
			}),
	)

	return cmd
}

func newRouteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current route settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("transport mode: %s\n", s.TransportMode)
			fmt.Printf("distances:      %s\n", onOff(s.ShowDistances))
			fmt.Printf("optimizer:      %s\n", onOff(s.ShowOptimizer))
			return nil
		},
	}
}

func newRouteModeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mode <walking|cycling|transit|driving>",
		Short: "Set the transport mode used for travel-time estimates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Settings.SetTransportMode(cmd.Context(), domain.TransportMode(args[0]))
		},
	}
}

func newRouteToggleCmd(app *App, name, short string, set func(*App) func(*cobra.Command, bool) error) *cobra.Command {
	apply := set(app)
	return &cobra.Command{
		Use:   name + " <on|off>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "on":
				return apply(cmd, true)
			case "off":
				return apply(cmd, false)
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
