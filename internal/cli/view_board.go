package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harukimoto/meguri/internal/cli/formatter"
	"github.com/harukimoto/meguri/internal/domain"
	"github.com/harukimoto/meguri/internal/planner"
	"github.com/harukimoto/meguri/internal/planner/session"
	"github.com/harukimoto/meguri/internal/routing"
)

const boardColWidth = 36

// boardView is the day-board screen: one column per travel day, a cursor
// over boards and items, and grab sessions for every reordering gesture.
type boardView struct {
	state *SharedState
	ctrl  *planner.Controller
	coord *session.Coordinator

	// cursorItem is -1 when the board header is selected. While an item
	// or favorite session is active it addresses insertion slots
	// 0..len(items) instead.
	cursorBoard int
	cursorItem  int

	// hints marks boards the optimizer considers worth reordering.
	hints   []bool
	saveErr error
	status  string
}

func newBoardView(state *SharedState, ctrl *planner.Controller, save func(planner.Snapshot) error) *boardView {
	v := &boardView{
		state:      state,
		ctrl:       ctrl,
		coord:      session.NewCoordinator(ctrl),
		cursorItem: -1,
	}
	ctrl.OnBoardsChanged(func(snap planner.Snapshot) {
		if save != nil {
			v.saveErr = save(snap)
		}
		v.refreshHints()
	})
	v.refreshHints()
	return v
}

func (v *boardView) ID() ViewID { return ViewBoard }

func (v *boardView) Title() string {
	it := v.ctrl.Itinerary()
	return fmt.Sprintf("%s — %d days — %s",
		it.Title, it.TravelDays(), formatter.Yen(it.TotalBudget()))
}

func (v *boardView) ShortHelp() []key.Binding {
	if v.coord.Active() != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			key.NewBinding(key.WithKeys("left"), key.WithHelp("←→↑↓", "aim")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←→↑↓", "navigate")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "add favorite")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "optimize day")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "distances")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *boardView) Init() tea.Cmd { return nil }

// refreshHints recomputes the per-board optimizer hint after a mutation.
func (v *boardView) refreshHints() {
	boards := v.ctrl.Itinerary().Boards
	v.hints = make([]bool, len(boards))
	if !v.state.Settings.ShowOptimizer {
		return
	}
	for i, b := range boards {
		plan := routing.Optimize(b.Items, routing.Options{Mode: v.state.Settings.TransportMode})
		v.hints[i] = plan.WorthApplying
	}
}

func (v *boardView) boards() []*domain.DayBoard { return v.ctrl.Itinerary().Boards }

func (v *boardView) currentBoard() *domain.DayBoard {
	boards := v.boards()
	if v.cursorBoard < 0 || v.cursorBoard >= len(boards) {
		return nil
	}
	return boards[v.cursorBoard]
}

// maxItemCursor is the largest valid cursorItem for the current board:
// the item count during an insertion-slot session, one less otherwise.
func (v *boardView) maxItemCursor() int {
	b := v.currentBoard()
	if b == nil {
		return -1
	}
	if s := v.coord.Active(); s != nil && s.Kind != session.KindBoardReorder {
		return len(b.Items)
	}
	return len(b.Items) - 1
}

func (v *boardView) clampCursor() {
	if n := len(v.boards()); n == 0 {
		v.cursorBoard, v.cursorItem = 0, -1
		return
	} else if v.cursorBoard >= n {
		v.cursorBoard = n - 1
	}
	if m := v.maxItemCursor(); v.cursorItem > m {
		v.cursorItem = m
	}
	if v.cursorItem < -1 {
		v.cursorItem = -1
	}
	if s := v.coord.Active(); s != nil && s.Kind != session.KindBoardReorder && v.cursorItem < 0 {
		v.cursorItem = 0
	}
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case favoritePickedMsg:
		v.status = ""
		if msg.experience != nil && v.coord.Begin(session.Session{
			Kind:     session.KindFavoriteInsert,
			Favorite: msg.experience,
		}) {
			v.cursorItem = 0
			v.clampCursor()
			v.status = "placing: " + msg.experience.Title
		}
		return v, nil

	case refreshViewMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *boardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := v.coord.Active()

	switch msg.String() {
	case "left", "h":
		if v.cursorBoard > 0 {
			v.cursorBoard--
			v.clampCursor()
		}
	case "right", "l":
		if v.cursorBoard < len(v.boards())-1 {
			v.cursorBoard++
			v.clampCursor()
		}
	case "up", "k":
		v.cursorItem--
		v.clampCursor()
	case "down", "j":
		v.cursorItem++
		v.clampCursor()

	case " ", "g":
		// A new grab is ignored while a session is in progress.
		if active != nil {
			return v, nil
		}
		v.grabAtCursor()

	case "enter":
		if active == nil {
			return v, nil
		}
		v.dropAtCursor()

	case "esc":
		if active != nil {
			v.coord.Cancel()
			v.status = ""
			v.clampCursor()
			return v, nil
		}
		return v, func() tea.Msg { return quitMsg{} }

	case "q":
		if active == nil {
			return v, func() tea.Msg { return quitMsg{} }
		}

	case "f":
		if active == nil {
			return v, pushView(newFavoritePickerView(v.state))
		}

	case "o":
		if active == nil {
			if b := v.currentBoard(); b != nil {
				return v, pushView(newRouteReportView(v.state, v.ctrl, v.cursorBoard))
			}
		}

	case "x":
		if active == nil && v.cursorItem >= 0 {
			v.ctrl.RemoveItem(v.cursorBoard, v.cursorItem)
			v.clampCursor()
		}

	case "X":
		if active == nil {
			v.ctrl.RemoveBoard(v.cursorBoard)
			v.clampCursor()
		}

	case "+":
		if active == nil {
			v.ctrl.AppendBoard()
		}

	case "d":
		if active == nil {
			v.state.Settings.ShowDistances = !v.state.Settings.ShowDistances
			_ = v.state.App.Settings.SetShowDistances(context.Background(), v.state.Settings.ShowDistances)
		}
	}
	return v, nil
}

// grabAtCursor starts a board-reorder session on a header, or an item-move
// session on an item.
func (v *boardView) grabAtCursor() {
	b := v.currentBoard()
	if b == nil {
		return
	}
	if v.cursorItem < 0 {
		if v.coord.Begin(session.Session{
			Kind:        session.KindBoardReorder,
			SourceBoard: v.cursorBoard,
		}) {
			v.status = fmt.Sprintf("moving day %d", v.cursorBoard+1)
		}
		return
	}
	if v.cursorItem >= len(b.Items) {
		return
	}
	item := b.Items[v.cursorItem]
	if v.coord.Begin(session.Session{
		Kind:        session.KindItemMove,
		SourceBoard: v.cursorBoard,
		SourceIndex: v.cursorItem,
	}) {
		title := "(missing experience)"
		if item.Experience != nil {
			title = item.Experience.Title
		}
		v.status = "moving: " + title
	}
}

// dropAtCursor ends the active session on the target under the cursor.
func (v *boardView) dropAtCursor() {
	s := v.coord.Active()
	if s == nil {
		return
	}
	target := session.DropTarget{Board: v.cursorBoard, Index: -1}
	if s.Kind != session.KindBoardReorder {
		slot := v.cursorItem
		if slot < 0 {
			slot = 0
		}
		target.Index = slot
	}
	v.coord.Drop(target)
	v.status = ""
	v.clampCursor()
}

// ── rendering ────────────────────────────────────────────────────────────────

var (
	boardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1)
	boardBorderActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(formatter.ColorHeader).
				Padding(0, 1)
)

func (v *boardView) View() string {
	boards := v.boards()
	if len(boards) == 0 {
		return "\n  " + formatter.Dim("No days yet. Press + to add one.")
	}

	perPage := v.state.Width / (boardColWidth + 2)
	if perPage < 1 {
		perPage = 1
	}
	first := 0
	if v.cursorBoard >= perPage {
		first = v.cursorBoard - perPage + 1
	}
	last := first + perPage
	if last > len(boards) {
		last = len(boards)
	}

	cols := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		col := v.renderBoard(i)
		if i == v.cursorBoard {
			cols = append(cols, boardBorderActive.Render(col))
		} else {
			cols = append(cols, boardBorder.Render(col))
		}
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	var footer []string
	if v.status != "" {
		footer = append(footer, " "+formatter.StyleYellow.Render("⇅ "+v.status))
	}
	if v.saveErr != nil {
		footer = append(footer, " "+formatter.StyleRed.Render("save failed: "+v.saveErr.Error()))
	}
	if len(footer) > 0 {
		out += "\n" + strings.Join(footer, "\n")
	}
	return out
}

func (v *boardView) renderBoard(i int) string {
	it := v.ctrl.Itinerary()
	b := it.Boards[i]
	selected := i == v.cursorBoard
	active := v.coord.Active()

	var lines []string

	header := formatter.Truncate(fmt.Sprintf("Day %d · %s · %s",
		i+1, it.BoardDate(i).Format("Mon 1/2"), formatter.Yen(b.DailyBudget)), boardColWidth-2)
	switch {
	case active != nil && active.Kind == session.KindBoardReorder && active.SourceBoard == i:
		header = formatter.StyleYellow.Render("⇅ " + header)
	case selected && v.cursorItem == -1:
		header = formatter.StyleHeader.Render("▸ " + header)
	default:
		header = formatter.StyleBold.Render("  " + header)
	}
	lines = append(lines, header)

	slotSession := active != nil && active.Kind != session.KindBoardReorder

	if len(b.Items) == 0 && !(slotSession && selected) {
		lines = append(lines, formatter.Dim("  (empty)"))
	}

	for pos, item := range b.Items {
		if slotSession && selected && pos == v.cursorItem {
			lines = append(lines, formatter.StyleYellow.Render("  ────── drop here ──────"))
		}
		lines = append(lines, v.renderItem(i, pos, item, selected))
		if v.state.Settings.ShowDistances && pos+1 < len(b.Items) {
			if label, ok := distanceLabel(item.Experience, b.Items[pos+1].Experience,
				v.state.Settings.TransportMode); ok {
				lines = append(lines, formatter.Dim("      ↓ "+label))
			}
		}
	}
	if slotSession && selected && v.cursorItem == len(b.Items) {
		lines = append(lines, formatter.StyleYellow.Render("  ────── drop here ──────"))
	}

	if i < len(v.hints) && v.hints[i] {
		lines = append(lines, formatter.StylePurple.Render("  ◎ route could be shorter (o)"))
	}

	return strings.Join(lines, "\n")
}

func (v *boardView) renderItem(board, pos int, item *domain.ScheduledItem, boardSelected bool) string {
	active := v.coord.Active()
	title := "(missing experience)"
	var cat domain.Category
	price := ""
	if item.Experience != nil {
		title = item.Experience.Title
		cat = item.Experience.Category
		if item.Experience.Price != nil {
			price = " " + formatter.Yen(*item.Experience.Price)
		}
	}

	glyph := formatter.CategoryStyle(cat).Render(formatter.CategoryGlyph(cat))
	line := fmt.Sprintf("%d %s %s%s", pos+1, glyph, formatter.Truncate(title, boardColWidth-10), price)

	grabbed := active != nil && active.Kind == session.KindItemMove &&
		active.SourceBoard == board && active.SourceIndex == pos
	slotSession := active != nil && active.Kind != session.KindBoardReorder

	switch {
	case grabbed:
		return formatter.StyleYellow.Render("⇅ " + line)
	case boardSelected && !slotSession && pos == v.cursorItem:
		return formatter.StyleHeader.Render("▸ " + line)
	default:
		return "  " + line
	}
}
