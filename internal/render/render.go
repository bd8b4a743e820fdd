package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davren/calgrid/internal/calendar"
	"github.com/davren/calgrid/internal/date"
	"github.com/davren/calgrid/internal/locale"
	"github.com/davren/calgrid/internal/lunar"
	"github.com/davren/calgrid/internal/textwidth"
)

const blockGap = 2

var noColorMode bool

// SetNoColor disables all color output globally.
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	todayStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F472B6"))
	disabledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569")).Strikethrough(true)
	unavailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	cursorStyle      = lipgloss.NewStyle().Reverse(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
)

// States answers the per-date classification queries a rendered cell needs.
// *calendar.Controller satisfies it.
type States interface {
	IsDateDisabled(date.Date) bool
	IsDateUnavailable(date.Date) bool
	IsDateSelected(date.Date) bool
}

// Options controls how a window is rendered.
type Options struct {
	Formatter     locale.Formatter
	WeekdayFormat locale.WeekdayFormat
	Today         date.Date
	Cursor        date.Date
	ShowCursor    bool
	ShowLunar     bool
	States        States // nil renders every day as plain
}

// MonthBlock packages rendered lines with their visual dimensions.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks converts every grid in the window into a renderable block.
func BuildBlocks(window []calendar.MonthGrid, opts Options) []MonthBlock {
	blocks := make([]MonthBlock, len(window))
	for i, g := range window {
		blocks[i] = buildMonthBlock(g, opts)
	}
	return blocks
}

func buildMonthBlock(g calendar.MonthGrid, opts Options) MonthBlock {
	labels := weekdayLabels(g, opts)
	colWidth := columnWidth(g, labels, opts)
	totalWidth := colWidth * 7

	title := opts.Formatter.MonthName(g.Month) + " " + opts.Formatter.YearLabel(g.Month)
	title = textwidth.Center(title, totalWidth)
	if !noColorMode {
		title = titleStyle.Render(title)
	}

	header := make([]string, len(labels))
	for i, label := range labels {
		cell := textwidth.Center(label, colWidth)
		if !noColorMode {
			cell = headerStyle.Render(cell)
		}
		header[i] = cell
	}

	lines := []string{title, strings.Join(header, "")}
	for _, week := range g.Weeks() {
		dayRow := make([]string, len(week))
		lunarRow := make([]string, len(week))
		for i, d := range week {
			dayCell := textwidth.PadLeft(strconv.Itoa(d.Day()), colWidth-1) + " "
			dayRow[i] = styleDayCell(d, g.Month, dayCell, opts)
			if opts.ShowLunar {
				lunarCell := textwidth.Center(lunar.Label(d), colWidth)
				lunarRow[i] = styleDayCell(d, g.Month, lunarCell, opts)
			}
		}
		lines = append(lines, strings.Join(dayRow, ""))
		if opts.ShowLunar {
			lines = append(lines, strings.Join(lunarRow, ""))
		}
	}

	return MonthBlock{
		Lines:  lines,
		Width:  totalWidth,
		Height: len(lines),
	}
}

func weekdayLabels(g calendar.MonthGrid, opts Options) []string {
	return calendar.WeekdayLabels([]calendar.MonthGrid{g}, opts.Formatter, opts.WeekdayFormat)
}

// columnWidth sizes the cells so the widest weekday header and, when shown,
// the widest lunar label still fit.
func columnWidth(g calendar.MonthGrid, labels []string, opts Options) int {
	width := 4
	for _, label := range labels {
		width = max(width, textwidth.Width(label)+1)
	}
	if opts.ShowLunar {
		for _, d := range g.Dates {
			width = max(width, textwidth.Width(lunar.Label(d))+1)
		}
	}
	return width
}

// styleDayCell colors a pre-padded cell. Padding happens before styling so
// ANSI sequences never shift the columns.
func styleDayCell(d date.Date, month date.Date, cell string, opts Options) string {
	if noColorMode {
		return cell
	}
	if opts.ShowCursor && d.IsSameDay(opts.Cursor) {
		return cursorStyle.Render(cell)
	}
	if opts.States != nil {
		switch {
		case opts.States.IsDateSelected(d):
			return selectedStyle.Render(cell)
		case opts.States.IsDateDisabled(d):
			return disabledStyle.Render(cell)
		case opts.States.IsDateUnavailable(d):
			return unavailableStyle.Render(cell)
		}
	}
	if d.IsSameDay(opts.Today) {
		return todayStyle.Render(cell)
	}
	if !d.IsSameMonth(month) {
		return dimStyle.Render(cell)
	}
	return cell
}

// Layout packs blocks left to right, wrapping to a new band when the next
// block would overflow the terminal width.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}

	var bands [][]MonthBlock
	var band []MonthBlock
	used := 0
	for _, block := range blocks {
		needed := block.Width
		if len(band) > 0 {
			needed += blockGap
		}
		if len(band) > 0 && used+needed > width {
			bands = append(bands, band)
			band = nil
			used = 0
			needed = block.Width
		}
		band = append(band, block)
		used += needed
	}
	bands = append(bands, band)

	var out []string
	for bandIdx, band := range bands {
		height := 0
		for _, block := range band {
			height = max(height, block.Height)
		}
		for row := 0; row < height; row++ {
			var parts []string
			for i, block := range band {
				line := ""
				if row < len(block.Lines) {
					line = block.Lines[row]
				}
				if i != len(band)-1 {
					line = textwidth.PadRight(line, block.Width+blockGap)
				}
				parts = append(parts, line)
			}
			out = append(out, strings.TrimRight(strings.Join(parts, ""), " "))
		}
		if bandIdx != len(bands)-1 {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// HelpLine describes the interactive key bindings.
func HelpLine() string {
	help := "←/→/↑/↓ move  [/] page  enter select  space multi-select  . today  g go to  q quit"
	if noColorMode {
		return help
	}
	return helpStyle.Render(help)
}

// Warn styles an advisory message such as an invalid selection notice.
func Warn(msg string) string {
	if noColorMode {
		return msg
	}
	return warnStyle.Render(msg)
}
