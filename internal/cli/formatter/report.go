package formatter

import (
	"fmt"
	"strings"

	"github.com/harukimoto/meguri/internal/geo"
	"github.com/harukimoto/meguri/internal/routing"
)

// RoutePlanReport renders an optimizer plan as a printable report. day is
// the zero-based board index; the heading shows it 1-based.
func RoutePlanReport(plan *routing.Plan, day int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", Header(fmt.Sprintf("Route report — day %d", day+1)))

	if plan.ExcludedCount > 0 {
		fmt.Fprintf(&b, "  %s\n",
			Dim(fmt.Sprintf("%d stop(s) without locations excluded", plan.ExcludedCount)))
	}

	if !plan.Applicable {
		fmt.Fprintf(&b, "  %s\n", StyleGreen.Render("Nothing to optimize: two stops or fewer have locations."))
		return b.String()
	}

	fmt.Fprintf(&b, "  current    %s  (%s)\n",
		geo.FormatDistance(plan.OriginalKm), plan.OriginalTravelTime)
	fmt.Fprintf(&b, "  optimized  %s  (%s)\n",
		geo.FormatDistance(plan.OptimizedKm), plan.OptimizedTravelTime)

	if !plan.WorthApplying {
		fmt.Fprintf(&b, "\n  %s\n", StyleGreen.Render("This day is already well ordered."))
		return b.String()
	}

	fmt.Fprintf(&b, "  savings    %s (%.0f%%)\n",
		StyleYellow.Render(geo.FormatDistance(plan.SavingsKm)), plan.ImprovementPct)

	b.WriteString("\n  suggested order:\n")
	for i, item := range plan.Optimized {
		title := "(missing experience)"
		if item.Experience != nil {
			title = item.Experience.Title
		}
		fmt.Fprintf(&b, "    %2d. %s\n", i+1, title)
	}
	return b.String()
}
