package ui

// Screen geometry. The previous week is pinned to the top, the next week to
// the bottom, and the active week owns the rows between its title and the
// next week's header.
const (
	prevTitleRow   = 0
	prevTasksRow   = 2
	activeTitleRow = 7
	activeTasksRow = 9

	leftMargin = 2

	prevMaxTasks = 4
	nextMaxTasks = 8

	// wrapMarginCols is reserved for the status prefix plus indent when
	// wrapping the selected task.
	wrapMarginCols = 16
)

// layout fixes the row positions for one frame of a given terminal size.
type layout struct {
	width  int
	height int

	nextStartRow int // first task row of the next week
	visibleRows  int // task rows available to the active week
}

func newLayout(width, height int) layout {
	nextStart := activeTasksRow + 12
	if height > 35 {
		nextStart = height - 12
	}
	return layout{
		width:        width,
		height:       height,
		nextStartRow: nextStart,
		visibleRows:  nextStart - activeTasksRow - 1,
	}
}

// wrapWidth is the column budget for task lines before wrap or truncation.
func (l layout) wrapWidth() int {
	return l.width - wrapMarginCols
}

// activeTaskRow maps an index in the visible window to its screen row.
func (l layout) activeTaskRow(index, scrollOffset int) int {
	return activeTasksRow + (index - scrollOffset)
}
