package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/domain"
)

type favoritesLoadedMsg struct {
	favorites []*domain.Experience
	err       error
}

// favoritePickerView lists saved favorites so one can be placed on a board.
type favoritePickerView struct {
	state  *SharedState
	items  []*domain.Experience
	cursor int
	loaded bool
	err    error
}

func newFavoritePickerView(state *SharedState) *favoritePickerView {
	return &favoritePickerView{state: state}
}

func (v *favoritePickerView) ID() ViewID    { return ViewFavoritePicker }
func (v *favoritePickerView) Title() string { return "Favorites" }

func (v *favoritePickerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "navigate")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *favoritePickerView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		favorites, err := app.Favorites.List(context.Background())
		return favoritesLoadedMsg{favorites: favorites, err: err}
	}
}

func (v *favoritePickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case favoritesLoadedMsg:
		v.loaded = true
		v.items = msg.favorites
		v.err = msg.err
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.items) {
				picked := v.items[v.cursor]
				return v, tea.Batch(
					popView(),
					func() tea.Msg { return favoritePickedMsg{experience: picked} },
				)
			}
		case "esc", "q":
			return v, popView()
		}
	}
	return v, nil
}

func (v *favoritePickerView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("could not load favorites: "+v.err.Error())
	}
	if !v.loaded {
		return "\n  " + formatter.Dim("loading…")
	}
	if len(v.items) == 0 {
		return "\n  " + formatter.Dim("No favorites yet. Add one with `meguri favorite add`.")
	}

	out := ""
	for i, e := range v.items {
		glyph := formatter.CategoryStyle(e.Category).Render(formatter.CategoryGlyph(e.Category))
		price := formatter.Dim("—")
		if e.Price != nil {
			price = formatter.Yen(*e.Price)
		}
		loc := ""
		if e.Location == nil {
			loc = " " + formatter.Dim("(no location)")
		}
		line := fmt.Sprintf("%s %s  %s%s", glyph,
			formatter.PadRight(formatter.Truncate(e.Title, 32), 32), price, loc)
		if i == v.cursor {
			out += formatter.StyleHeader.Render("▸ "+line) + "\n"
		} else {
			out += "  " + line + "\n"
		}
	}
	return out
}
