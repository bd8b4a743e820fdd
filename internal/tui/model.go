package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/davren/calgrid/internal/calendar"
	"github.com/davren/calgrid/internal/date"
	"github.com/davren/calgrid/internal/locale"
	"github.com/davren/calgrid/internal/marks"
	"github.com/davren/calgrid/internal/render"
)

// Options configures the interactive calendar.
type Options struct {
	Formatter     locale.Formatter
	WeekdayFormat locale.WeekdayFormat
	ShowLunar     bool
	Marks         *marks.Set
	Logger        *zap.Logger
}

// Run starts the interactive Bubble Tea UI around one controller.
func Run(ctrl *calendar.Controller, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	prog := tea.NewProgram(newModel(ctrl, opts), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

type model struct {
	ctrl        *calendar.Controller
	opts        Options
	width       int
	input       textinput.Model
	inputActive bool
	statusMsg   string
	today       date.Date
	multi       []date.Date
}

func newModel(ctrl *calendar.Controller, opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM or YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Prompt = "> "
	return model{
		ctrl:  ctrl,
		opts:  opts,
		input: ti,
		today: date.Today(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.inputActive {
			return m.handleInputKey(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left":
			m.moveCursor(-1)
		case "right":
			m.moveCursor(1)
		case "up":
			m.moveCursor(-7)
		case "down":
			m.moveCursor(7)
		case "[", "h":
			m.prevPage()
		case "]", "l":
			m.nextPage()
		case "enter":
			m.selectCursor()
		case " ":
			m.toggleCursor()
		case "x":
			m.clearSelection()
		case ".":
			m.jumpTo(m.today)
			m.statusMsg = ""
		case "g":
			m.inputActive = true
			m.input.SetValue("")
			m.input.CursorEnd()
			m.input.Focus()
			m.statusMsg = ""
		}
	}
	return m, nil
}

func (m *model) moveCursor(days int) {
	next := m.ctrl.Cursor().AddDays(days)
	m.ctrl.OnCursorChanged(next)
	m.opts.Logger.Debug("cursor moved", zap.String("cursor", next.String()))
	m.statusMsg = ""
}

func (m *model) nextPage() {
	if m.ctrl.IsNextDisabled() {
		m.statusMsg = "no later months available"
		return
	}
	m.ctrl.NextPage()
	m.opts.Logger.Debug("next page", zap.String("cursor", m.ctrl.Cursor().String()))
	m.statusMsg = ""
}

func (m *model) prevPage() {
	if m.ctrl.IsPrevDisabled() {
		m.statusMsg = "no earlier months available"
		return
	}
	m.ctrl.PrevPage()
	m.opts.Logger.Debug("prev page", zap.String("cursor", m.ctrl.Cursor().String()))
	m.statusMsg = ""
}

func (m *model) selectCursor() {
	d := m.ctrl.Cursor()
	if m.ctrl.IsDateDisabled(d) {
		m.statusMsg = d.String() + " is disabled"
		return
	}
	if m.ctrl.IsDateUnavailable(d) {
		m.statusMsg = d.String() + " is unavailable"
		return
	}
	m.ctrl.SetSelectedDate(&d)
	m.opts.Logger.Debug("selected", zap.String("date", d.String()))
	m.statusMsg = "selected " + d.String()
}

func (m *model) toggleCursor() {
	d := m.ctrl.Cursor()
	for i, s := range m.multi {
		if s.IsSameDay(d) {
			m.multi = append(m.multi[:i], m.multi[i+1:]...)
			m.ctrl.SetSelectedDates(m.multi)
			m.statusMsg = "removed " + d.String()
			return
		}
	}
	m.multi = append(m.multi, d)
	m.ctrl.SetSelectedDates(m.multi)
	m.opts.Logger.Debug("multi-select", zap.Int("count", len(m.multi)))
	m.statusMsg = "added " + d.String()
}

func (m *model) clearSelection() {
	m.multi = nil
	m.ctrl.SetSelectedDate(nil)
	m.ctrl.SetSelectedDates(nil)
	m.statusMsg = "selection cleared"
}

func (m *model) jumpTo(d date.Date) {
	if m.ctrl.IsOutsideVisibleView(d) {
		m.statusMsg = "jumped to " + d.String()
	}
	m.ctrl.OnCursorChanged(d)
	m.opts.Logger.Debug("jump", zap.String("cursor", d.String()))
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputActive = false
		m.input.Blur()
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if len(value) == 7 { // YYYY-MM
		value += "-01"
	}
	d, err := date.Parse(value)
	if err != nil {
		m.statusMsg = "enter a date as YYYY-MM or YYYY-MM-DD"
		return
	}
	m.inputActive = false
	m.input.Blur()
	m.statusMsg = ""
	m.jumpTo(d)
}

func (m model) View() string {
	if m.inputActive {
		return "go to month or date (enter to confirm, esc to cancel)\n\n" + m.input.View()
	}

	width := m.width
	if width <= 0 {
		width = 100
	}

	blocks := render.BuildBlocks(m.ctrl.VisibleMonths(), render.Options{
		Formatter:     m.opts.Formatter,
		WeekdayFormat: m.opts.WeekdayFormat,
		Today:         m.today,
		Cursor:        m.ctrl.Cursor(),
		ShowCursor:    true,
		ShowLunar:     m.opts.ShowLunar,
		States:        m.ctrl,
	})

	heading := m.ctrl.HeadingLabel(m.opts.Formatter)
	prevHint, nextHint := "◀", "▶"
	if m.ctrl.IsPrevDisabled() {
		prevHint = "⊘"
	}
	if m.ctrl.IsNextDisabled() {
		nextHint = "⊘"
	}

	var sb strings.Builder
	sb.WriteString(prevHint + " " + heading + " " + nextHint)
	sb.WriteString("\n\n")
	sb.WriteString(render.Layout(blocks, width))
	sb.WriteString("\n\n")
	sb.WriteString(render.HelpLine())

	status := m.statusMsg
	if label := m.opts.Marks.Label(m.ctrl.Cursor()); label != "" {
		if status != "" {
			status += "  "
		}
		status += m.ctrl.Cursor().String() + ": " + label
	}
	if status != "" {
		sb.WriteString("\n")
		sb.WriteString(status)
	}
	if m.ctrl.IsInvalidSelection() {
		sb.WriteString("\n")
		sb.WriteString(render.Warn("selection includes disabled or unavailable dates"))
	}
	return sb.String()
}
