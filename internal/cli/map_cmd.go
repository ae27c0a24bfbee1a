package cli

import (
	"fmt"
	"strconv"

	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// newMapCmd prints the per-board marker list consumed by an external map
// renderer: title, coordinates, category and price for every item that has
// valid coordinates.
func newMapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "map <itinerary> [day]",
		Short: "Print map markers for an itinerary (or one day)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := resolveItineraryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Itineraries.GetByID(ctx, id)
			if err != nil {
				return err
			}

			from, to := 0, len(it.Boards)
			if len(args) == 2 {
				day, err := strconv.Atoi(args[1])
				if err != nil || day < 1 || day > len(it.Boards) {
					return fmt.Errorf("day must be between 1 and %d", len(it.Boards))
				}
				from, to = day-1, day
			}

			skipped := 0
			for i := from; i < to; i++ {
				b := it.Boards[i]
				fmt.Printf("%s\n", formatter.Header(fmt.Sprintf("Day %d — %s",
					i+1, it.BoardDate(i).Format("Mon Jan 2"))))
				for _, item := range b.Items {
					e := item.Experience
					lat, lng, ok := e.LatLng()
					if !ok {
						skipped++
						continue
					}
					price := ""
					if e != nil && e.Price != nil {
						price = "  " + formatter.Yen(*e.Price)
					}
					fmt.Printf("  %.6f,%.6f  %s  %s%s\n",
						lat, lng, e.Category, e.Title, price)
				}
			}
			if skipped > 0 {
				fmt.Printf("\n%s\n", formatter.Dim(
					fmt.Sprintf("%d location(s) unavailable", skipped)))
			}
			return nil
		},
	}
}
