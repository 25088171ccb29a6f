package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lstephensFederation/lolTasks/internal/storage"
)

// stateStyles is indexed by storage.State, mirroring the storage package's
// exhaustive state table: red for open, blue for in-progress, green for done.
var stateStyles = [...]lipgloss.Style{
	storage.Todo:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	storage.Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	storage.Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

var (
	styleDefault = lipgloss.NewStyle()
	styleDim     = lipgloss.NewStyle().Faint(true)
	styleBold    = lipgloss.NewStyle().Bold(true)
)

// taskStyle resolves the style for one rendered task line.
func taskStyle(state storage.State, selected, activeWeek bool) lipgloss.Style {
	st := stateStyles[state]
	if selected {
		st = st.Reverse(true)
	}
	if !activeWeek {
		st = st.Faint(true)
	}
	return st
}
