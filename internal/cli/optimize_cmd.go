package cli

import (
	"fmt"
	"strconv"

	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/planner"
	"github.com/harukimoto/meguri/internal/routing"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(app *App) *cobra.Command {
	var apply bool
	var start int

	cmd := &cobra.Command{
		Use:   "optimize <itinerary> <day>",
		Short: "Reorder a day's stops to shorten the walking route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[1])
			if err != nil || day < 1 {
				return fmt.Errorf("day must be a positive number, got %q", args[1])
			}
			day-- // days are 1-based on the command line

			it, err := app.Itineraries.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if day >= len(it.Boards) {
				return fmt.Errorf("itinerary %s has only %d days", it.DisplayID(), len(it.Boards))
			}

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			plan := routing.Optimize(it.Boards[day].Items, routing.Options{
				StartIndex: start,
				Mode:       settings.TransportMode,
			})
			fmt.Print(formatter.RoutePlanReport(plan, day))

			if !apply {
				return nil
			}
			if !plan.WorthApplying {
				fmt.Println("Not applying: the current order is close enough to optimal.")
				return nil
			}

			ctrl := planner.NewController(it)
			var saveErr error
			ctrl.OnBoardsChanged(func(snap planner.Snapshot) {
				saveErr = app.Itineraries.Save(ctx, snap)
			})
			if !ctrl.ApplyOptimizedRoute(day, plan.Optimized) {
				return fmt.Errorf("could not apply the optimized order (did the day change?)")
			}
			if saveErr != nil {
				return saveErr
			}
			fmt.Println("Applied.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "commit the optimized order")
	cmd.Flags().IntVar(&start, "start", 0, "index of the stop the tour starts from")

	return cmd
}
