package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/spf13/cobra"
)

// resolveItineraryID resolves user input (full UUID or unambiguous prefix)
// to an itinerary ID.
func resolveItineraryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("itinerary ID is required")
	}

	itineraries, err := app.Itineraries.List(ctx)
	if err != nil {
		return "", err
	}

	for _, it := range itineraries {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range itineraries {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("itinerary not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("itinerary ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newItineraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "itinerary",
		Short: "Manage itineraries",
	}

	cmd.AddCommand(
		newItineraryAddCmd(app),
		newItineraryListCmd(app),
		newItineraryShowCmd(app),
		newItineraryRemoveCmd(app),
	)

	return cmd
}

func newItineraryAddCmd(app *App) *cobra.Command {
	var title, start string
	var days int
	var private bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				var err error
				title, start, days, err = runNewItineraryForm()
				if err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("itinerary title is required (use --title)")
			}

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			it := &domain.Itinerary{
				Title:     title,
				StartDate: startDate,
				Private:   private,
			}
			if err := app.Itineraries.Create(cmd.Context(), it, days); err != nil {
				return err
			}

			fmt.Printf("Created itinerary %s (%s, %d days)\n", it.Title, it.DisplayID(), days)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "itinerary title")
	cmd.Flags().StringVar(&start, "start", time.Now().Format("2006-01-02"), "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 3, "number of travel days")
	cmd.Flags().BoolVar(&private, "private", false, "hide from shared views")

	return cmd
}

func newItineraryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List itineraries",
		RunE: func(cmd *cobra.Command, args []string) error {
			itineraries, err := app.Itineraries.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(itineraries) == 0 {
				fmt.Println("No itineraries yet. Create one with: meguri itinerary add")
				return nil
			}
			for _, it := range itineraries {
				flag := ""
				if it.Private {
					flag = "  " + formatter.Dim("(private)")
				}
				fmt.Printf("%s  %s  %s → %d days, %s%s\n",
					formatter.Dim(it.DisplayID()),
					formatter.StyleBold.Render(it.Title),
					it.StartDate.Format("2006-01-02"),
					it.TravelDays(),
					formatter.Yen(it.TotalBudget()),
					flag,
				)
			}
			return nil
		},
	}
}

func newItineraryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an itinerary's day boards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Itineraries.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s  %s\n", formatter.Header(it.Title), formatter.Dim(it.DisplayID()))
			for i, b := range it.Boards {
				fmt.Printf("\n%s  %s  %s\n",
					formatter.StyleBold.Render(fmt.Sprintf("Day %d", i+1)),
					it.BoardDate(i).Format("Mon Jan 2"),
					formatter.Dim(formatter.Yen(b.DailyBudget)),
				)
				if len(b.Items) == 0 {
					fmt.Printf("  %s\n", formatter.Dim("(empty)"))
					continue
				}
				for pos, item := range b.Items {
					title := "(missing experience)"
					var cat domain.Category
					if item.Experience != nil {
						title = item.Experience.Title
						cat = item.Experience.Category
					}
					fmt.Printf("  %d. %s %s\n",
						pos+1,
						formatter.CategoryStyle(cat).Render(formatter.CategoryGlyph(cat)),
						title,
					)
				}
			}
			fmt.Printf("\nTotal budget: %s\n", formatter.Yen(it.TotalBudget()))
			return nil
		},
	}
}

func newItineraryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an itinerary and all of its boards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveItineraryID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Itineraries.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
