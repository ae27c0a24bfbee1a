package cli

import (
	"fmt"

	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/geo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newFavoriteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite",
		Aliases: []string{"fav"},
		Short:   "Manage saved experiences",
	}

	cmd.AddCommand(
		newFavoriteAddCmd(app),
		newFavoriteListCmd(app),
		newFavoriteRemoveCmd(app),
	)

	return cmd
}

// coordinateFromFlags builds a Coordinate only when both flags were set.
func coordinateFromFlags(flags *pflag.FlagSet, lng, lat float64) *domain.Coordinate {
	if !flags.Changed("lng") || !flags.Changed("lat") {
		return nil
	}
	return &domain.Coordinate{Lng: lng, Lat: lat}
}

func newFavoriteAddCmd(app *App) *cobra.Command {
	var title, category string
	var price, lng, lat float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new favorite experience",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := &domain.Experience{
				Title:    title,
				Category: domain.Category(category),
			}
			if cmd.Flags().Changed("price") {
				e.Price = &price
			}
			e.Location = coordinateFromFlags(cmd.Flags(), lng, lat)

			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				var err error
				e, err = runNewFavoriteForm()
				if err != nil {
					return err
				}
			}

			if err := app.Favorites.Add(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Printf("Saved %s (%s)\n", e.Title, e.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "experience title")
	cmd.Flags().StringVar(&category, "category", "attraction", "hotel|restaurant|cafe|attraction|shop|onsen")
	cmd.Flags().Float64Var(&price, "price", 0, "price in yen")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")

	return cmd
}

func newFavoriteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved favorites",
		RunE: func(cmd *cobra.Command, args []string) error {
			favorites, err := app.Favorites.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(favorites) == 0 {
				fmt.Println("No favorites yet. Save one with: meguri favorite add")
				return nil
			}
			for _, e := range favorites {
				price := formatter.Dim("price unknown")
				if e.Price != nil {
					price = formatter.Yen(*e.Price)
				}
				loc := formatter.Dim("no location")
				if lat, lng, ok := e.LatLng(); ok {
					loc = fmt.Sprintf("%.4f,%.4f", lat, lng)
				}
				short := e.ID
				if len(short) > 8 {
					short = short[:8]
				}
				fmt.Printf("%s  %s %s  %s  %s\n",
					formatter.Dim(short),
					formatter.CategoryStyle(e.Category).Render(formatter.CategoryGlyph(e.Category)),
					formatter.StyleBold.Render(e.Title),
					price,
					loc,
				)
			}
			return nil
		},
	}
}

func newFavoriteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			favorites, err := app.Favorites.List(cmd.Context())
			if err != nil {
				return err
			}
			var match string
			for _, e := range favorites {
				if e.ID == args[0] || (len(args[0]) >= 4 && len(e.ID) >= len(args[0]) && e.ID[:len(args[0])] == args[0]) {
					if match != "" {
						return fmt.Errorf("favorite ID prefix %q is ambiguous", args[0])
					}
					match = e.ID
				}
			}
			if match == "" {
				return fmt.Errorf("favorite not found: %q", args[0])
			}
			if err := app.Favorites.Remove(cmd.Context(), match); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}

// distanceLabel renders the hop between two experiences, or ok=false when
// either lacks coordinates.
func distanceLabel(a, b *domain.Experience, mode domain.TransportMode) (string, bool) {
	aLat, aLng, okA := a.LatLng()
	bLat, bLng, okB := b.LatLng()
	if !okA || !okB {
		return "", false
	}
	km := geo.Distance(aLat, aLng, bLat, bLng)
	t, _ := geo.EstimateTravelTime(&km, mode)
	return fmt.Sprintf("%s · %s", geo.FormatDistance(km), t), true
}
