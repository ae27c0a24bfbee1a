package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/domain"
)

// meguriHuhTheme adapts the huh base theme to the formatter palette.
func meguriHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number or leave blank")
	}
	return nil
}

// runNewItineraryForm collects title, start date and day count interactively.
func runNewItineraryForm() (title, start string, days int, err error) {
	start = time.Now().Format("2006-01-02")
	daysStr := "3"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trip title").
				Placeholder("Kyoto in autumn").
				Value(&title),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("Travel days").
				Value(&daysStr).
				Validate(validatePositiveInt),
		),
	).WithTheme(meguriHuhTheme()).WithShowHelp(false)

	if err = form.Run(); err != nil {
		return "", "", 0, err
	}
	days, _ = strconv.Atoi(strings.TrimSpace(daysStr))
	return title, start, days, nil
}

// runNewFavoriteForm collects a new favorite experience interactively.
func runNewFavoriteForm() (*domain.Experience, error) {
	var title, category, price, lng, lat string
	category = string(domain.CategoryAttraction)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Fushimi Inari Taisha").
				Value(&title),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("Attraction", string(domain.CategoryAttraction)),
					huh.NewOption("Restaurant", string(domain.CategoryRestaurant)),
					huh.NewOption("Cafe", string(domain.CategoryCafe)),
					huh.NewOption("Hotel", string(domain.CategoryHotel)),
					huh.NewOption("Shop", string(domain.CategoryShop)),
					huh.NewOption("Onsen", string(domain.CategoryOnsen)),
				).
				Value(&category),
			huh.NewInput().
				Title("Price in yen (blank if unknown)").
				Value(&price).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Longitude (blank if unknown)").
				Value(&lng).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Latitude (blank if unknown)").
				Value(&lat).
				Validate(validateOptionalFloat),
		),
	).WithTheme(meguriHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	e := &domain.Experience{
		Title:    strings.TrimSpace(title),
		Category: domain.Category(category),
	}
	if p, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err == nil && strings.TrimSpace(price) != "" {
		e.Price = &p
	}
	lngV, errLng := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	latV, errLat := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if errLng == nil && errLat == nil && strings.TrimSpace(lng) != "" && strings.TrimSpace(lat) != "" {
		e.Location = &domain.Coordinate{Lng: lngV, Lat: latV}
	}
	return e, nil
}
