package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/lstephensFederation/lolTasks/internal/storage"
	"github.com/lstephensFederation/lolTasks/internal/week"
)

// op is one draw instruction: styled text at a screen position.
type op struct {
	row   int
	col   int
	text  string
	style lipgloss.Style
}

// frame is a full screen's worth of draw instructions. Building one never
// mutates the inputs.
type frame struct {
	ops []op
}

func (f *frame) add(row, col int, text string, style lipgloss.Style) {
	f.ops = append(f.ops, op{row: row, col: col, text: text, style: style})
}

// frameInput is everything the render engine needs for one frame.
type frameInput struct {
	snap      storage.Snapshot
	prevKey   week.Key
	activeKey week.Key
	nextKey   week.Key
	selected  int
	scroll    int
	help      string
}

// buildFrame lays out the three-week board: previous week pinned to the top,
// active week in the middle, next week at the bottom, help bar on the last
// row.
func buildFrame(in frameInput, l layout) frame {
	var f frame

	prev := in.snap[in.prevKey]
	active := in.snap[in.activeKey]
	next := in.snap[in.nextKey]

	f.addTitle(prevTitleRow, in.prevKey, weekTitle(prev), styleDim, l)
	f.addRule(prevTitleRow+1, "─", styleDim, l)

	f.addTitle(activeTitleRow, in.activeKey, weekTitle(active), styleBold, l)
	f.addRule(activeTitleRow+1, "═", styleBold, l)

	f.addTitle(l.nextStartRow-2, in.nextKey, weekTitle(next), styleDim, l)
	f.addRule(l.nextStartRow-1, "─", styleDim, l)

	f.addWeekTasks(prev, weekPlacement{
		baseRow:  prevTasksRow,
		maxTasks: prevMaxTasks,
		maxRow:   activeTitleRow - 1,
	}, l)
	f.addWeekTasks(active, weekPlacement{
		baseRow:  activeTasksRow,
		active:   true,
		selected: in.selected,
		scroll:   in.scroll,
		maxTasks: -1,
		maxRow:   l.nextStartRow - 2,
	}, l)
	f.addWeekTasks(next, weekPlacement{
		baseRow:  l.nextStartRow,
		maxTasks: nextMaxTasks,
		maxRow:   l.height - 1,
	}, l)

	if in.help != "" {
		f.add(l.height-1, 0, truncate(in.help, l.width-1), styleDim)
	}
	return f
}

func weekTitle(w *storage.Week) string {
	if w == nil {
		return ""
	}
	return w.Title
}

func (f *frame) addTitle(row int, key week.Key, title string, style lipgloss.Style, l layout) {
	if row >= l.height {
		return
	}
	label := string(key) + " – " + title
	if utf8.RuneCountInString(label) > l.width-6 {
		label = truncate(label, l.width-9) + "..."
	}
	f.add(row, leftMargin, label, style)
}

func (f *frame) addRule(row int, glyph string, style lipgloss.Style, l layout) {
	if row >= l.height || l.width < 2 {
		return
	}
	f.add(row, 0, strings.Repeat(glyph, l.width-2), style)
}

// weekPlacement positions one week's task rows.
type weekPlacement struct {
	baseRow  int
	active   bool
	selected int
	scroll   int
	maxTasks int // -1 means bounded by rows only
	maxRow   int // exclusive; rows at or past it are off limits
}

func (f *frame) addWeekTasks(w *storage.Week, p weekPlacement, l layout) {
	if w == nil {
		return
	}
	maxRow := p.maxRow
	if maxRow > l.height-2 {
		maxRow = l.height - 2 // keep the help bar row clear
	}
	wrapWidth := l.wrapWidth()

	start := 0
	if p.active {
		start = p.scroll
	}
	end := len(w.Tasks)
	if p.maxTasks >= 0 && start+p.maxTasks < end {
		end = start + p.maxTasks
	}

	row := p.baseRow
	idx := start
	for idx < end && row < maxRow {
		t := w.Tasks[idx]
		selected := p.active && idx == p.selected
		style := taskStyle(t.State, selected, p.active)
		full := t.State.Symbol() + t.Text

		if selected && utf8.RuneCountInString(full) > wrapWidth {
			for _, line := range wrapTaskLine(full, wrapWidth) {
				if row >= maxRow {
					break
				}
				f.add(row, leftMargin, line, style)
				row++
			}
		} else {
			if utf8.RuneCountInString(full) > wrapWidth+5 {
				full = truncate(full, wrapWidth-3) + "..."
			}
			f.add(row, leftMargin, full, style)
			row++
		}
		idx++
	}

	if idx < len(w.Tasks) && row < maxRow {
		f.add(row, leftMargin, "... more", styleDim)
	}
}

// wrapTaskLine splits a prefixed task line at the last space before the
// width boundary, hard-splitting when none exists. Continuation lines are
// indented by the prefix width.
func wrapTaskLine(full string, width int) []string {
	if width <= storage.PrefixWidth {
		return []string{full}
	}
	var lines []string
	rem := []rune(full)
	for len(rem) > 0 {
		if len(rem) <= width {
			lines = append(lines, string(rem))
			break
		}
		split := lastSpace(rem[:width])
		// A split inside leading whitespace makes no progress; hard-split.
		if split <= 0 || strings.TrimSpace(string(rem[:split])) == "" {
			split = width
		}
		lines = append(lines, string(rem[:split]))
		rest := strings.TrimLeft(string(rem[split:]), " ")
		if rest == "" {
			break
		}
		rem = []rune(strings.Repeat(" ", storage.PrefixWidth) + rest)
	}
	return lines
}

func lastSpace(rs []rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == ' ' {
			return i
		}
	}
	return -1
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
