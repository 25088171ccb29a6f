// Package ui drives the three-week board: the blocking event loop, the
// render engine and the global undo history.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/lstephensFederation/lolTasks/internal/config"
	"github.com/lstephensFederation/lolTasks/internal/editor"
	"github.com/lstephensFederation/lolTasks/internal/key"
	"github.com/lstephensFederation/lolTasks/internal/storage"
	"github.com/lstephensFederation/lolTasks/internal/week"
)

// selectTitle is the selection sentinel meaning the week title, not a task,
// is the edit target.
const selectTitle = -1

// Store is the persistence contract the controller drives.
type Store interface {
	Load() (storage.Snapshot, error)
	Save(storage.Snapshot) error
}

// Terminal is the drawing contract; term.Surface is the real one.
type Terminal interface {
	Size() (width, height int)
	MoveTo(row, col int)
	ClearLine()
	ClearScreen()
	WriteStyled(text string, style lipgloss.Style)
	SetCursorVisible(visible bool)
	Flush() error
}

// editRequest marks that the next frame should open an edit session.
type editRequest struct {
	atStart bool
}

// App owns all mutable interactive state: the in-memory snapshot, the active
// week, selection, scroll, mode flags and the undo ring.
type App struct {
	store Store
	cfg   config.Config

	term Terminal
	keys *key.Decoder

	snap      storage.Snapshot
	activeKey week.Key
	prevKey   week.Key
	nextKey   week.Key

	selected int
	scroll   int
	reorder  bool
	status   string

	history *boardHistory
	edit    *editRequest
	quit    bool
}

// New loads the board and seeds the undo history with it.
func New(store Store, cfg config.Config) (*App, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &App{
		store:     store,
		cfg:       cfg,
		snap:      snap,
		activeKey: week.Current(),
		selected:  selectTitle,
		history:   newBoardHistory(snap),
	}, nil
}

// Run is the event loop: draw a frame, then block for the next key. The
// loop, the snapshot and both undo stacks live on this one goroutine;
// nothing else touches them.
func (a *App) Run(t Terminal, src key.Source) error {
	a.term = t
	a.keys = key.NewDecoder(src)

	for !a.quit {
		a.prepare()
		w, h := t.Size()
		l := newLayout(w, h)
		if a.selected >= 0 {
			a.scroll = adjustScroll(a.selected, a.scroll, l.visibleRows)
		}
		a.draw(l)

		if a.edit != nil {
			a.runEditSession(l)
			continue
		}

		k, err := a.keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		a.dispatch(k)
	}
	return nil
}

// prepare recomputes the neighbor keys and materializes any of the three
// visible weeks that don't exist yet. Implicit week creation is saved but
// not pushed onto the undo ring; there is nothing to undo to.
func (a *App) prepare() {
	if k, err := week.Neighbor(a.activeKey, week.Previous); err == nil {
		a.prevKey = k
	}
	if k, err := week.Neighbor(a.activeKey, week.Next); err == nil {
		a.nextKey = k
	}

	created := false
	for _, k := range []week.Key{a.prevKey, a.activeKey, a.nextKey} {
		if _, ok := a.snap[k]; !ok {
			a.snap[k] = storage.NewWeek()
			created = true
		}
	}
	if created {
		if err := a.store.Save(a.snap); err != nil {
			a.status = err.Error()
		}
	}
	a.clampSelection()
}

func (a *App) active() *storage.Week {
	return a.snap[a.activeKey]
}

func (a *App) clampSelection() {
	n := 0
	if w := a.active(); w != nil {
		n = len(w.Tasks)
	}
	if a.selected >= n {
		a.selected = n - 1
	}
	if a.selected < selectTitle {
		a.selected = selectTitle
	}
}

// matches reports whether the key is the printable rune bound to binding.
// Bindings are case-insensitive, as in `q` quitting on `Q` too.
func matches(k key.Key, binding string) bool {
	return k.Kind == key.KindRune && binding != "" && strings.EqualFold(string(k.Rune), binding)
}

// matchesExact is for bindings where case is the point, like the vim-style
// uppercase I.
func matchesExact(k key.Key, binding string) bool {
	return k.Kind == key.KindRune && string(k.Rune) == binding
}

func (a *App) dispatch(k key.Key) {
	a.status = ""
	keys := a.cfg.Keys
	switch {
	case k.Kind == key.KindCtrl && k.Rune == 'u':
		a.undoBoard()
	case k.Kind == key.KindCtrl && k.Rune == 'r':
		a.redoBoard()
	case k.Kind == key.KindUp || matches(k, keys.Up):
		a.moveUp()
	case k.Kind == key.KindDown || matches(k, keys.Down):
		a.moveDown()
	case k.Kind == key.KindLeft || matches(k, keys.PrevWeek):
		a.gotoNeighborWeek(week.Previous)
	case k.Kind == key.KindRight || matches(k, keys.NextWeek):
		a.gotoNeighborWeek(week.Next)
	case k.Kind == key.KindTab:
		a.cycleState(true)
	case k.Kind == key.KindShiftTab:
		a.cycleState(false)
	case k.Kind == key.KindEnter:
		a.edit = &editRequest{atStart: false}
	case matchesExact(k, keys.EditStart):
		a.edit = &editRequest{atStart: true}
	case matches(k, keys.Add):
		a.addTask()
	case matches(k, keys.Delete):
		a.deleteTask()
	case matches(k, keys.ShiftNext):
		a.shiftTask(week.Next)
	case matches(k, keys.ShiftPrev):
		a.shiftTask(week.Previous)
	case matches(k, keys.Reorder):
		a.reorder = !a.reorder
	case matches(k, keys.Quit):
		a.persist()
		a.quit = true
	}
}

func (a *App) moveUp() {
	w := a.active()
	if a.reorder {
		if a.selected > 0 {
			w.Tasks[a.selected-1], w.Tasks[a.selected] = w.Tasks[a.selected], w.Tasks[a.selected-1]
			a.selected--
			a.commit("")
		}
		return
	}
	switch {
	case a.selected > 0:
		a.selected--
	case a.selected == selectTitle && len(w.Tasks) > 0:
		a.selected = len(w.Tasks) - 1
	}
}

func (a *App) moveDown() {
	w := a.active()
	if a.reorder {
		if a.selected >= 0 && a.selected < len(w.Tasks)-1 {
			w.Tasks[a.selected+1], w.Tasks[a.selected] = w.Tasks[a.selected], w.Tasks[a.selected+1]
			a.selected++
			a.commit("")
		}
		return
	}
	switch {
	case a.selected == selectTitle && len(w.Tasks) > 0:
		a.selected = 0
	case a.selected < len(w.Tasks)-1:
		a.selected++
	case a.selected == len(w.Tasks)-1:
		a.selected = selectTitle
	}
}

func (a *App) gotoNeighborWeek(dir week.Direction) {
	k, err := week.Neighbor(a.activeKey, dir)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.activeKey = k
	a.selected = selectTitle
	a.scroll = 0
}

func (a *App) cycleState(forward bool) {
	w := a.active()
	if a.selected < 0 || a.selected >= len(w.Tasks) {
		return
	}
	t := &w.Tasks[a.selected]
	if forward {
		t.State = t.State.Next()
	} else {
		t.State = t.State.Prev()
	}
	a.commit("")
}

func (a *App) addTask() {
	w := a.active()
	task := storage.Task{Text: "New task", State: storage.Todo}
	if a.selected < 0 || a.selected >= len(w.Tasks) {
		w.Tasks = append(w.Tasks, task)
		a.selected = len(w.Tasks) - 1
	} else {
		pos := a.selected + 1
		w.Tasks = append(w.Tasks[:pos], append([]storage.Task{task}, w.Tasks[pos:]...)...)
		a.selected = pos
	}
	a.commit("Added task")
	a.edit = &editRequest{atStart: false}
}

func (a *App) deleteTask() {
	w := a.active()
	if a.selected < 0 || a.selected >= len(w.Tasks) {
		return
	}
	w.Tasks = append(w.Tasks[:a.selected], w.Tasks[a.selected+1:]...)
	a.selected--
	a.clampSelection()
	a.commit("Deleted task")
}

func (a *App) shiftTask(dir week.Direction) {
	w := a.active()
	if a.selected < 0 || a.selected >= len(w.Tasks) {
		return
	}
	target, err := week.Neighbor(a.activeKey, dir)
	if err != nil {
		a.status = err.Error()
		return
	}
	task := w.Tasks[a.selected]
	w.Tasks = append(w.Tasks[:a.selected], w.Tasks[a.selected+1:]...)
	if _, ok := a.snap[target]; !ok {
		a.snap[target] = storage.NewWeek()
	}
	a.snap[target].Tasks = append(a.snap[target].Tasks, task)
	a.clampSelection()
	a.commit(fmt.Sprintf("Shifted task to %s", target))
}

// commit persists the mutated snapshot and records it on the undo ring.
// On a save failure the in-memory mutation is rolled back to the last good
// snapshot and the error lands in the status row.
func (a *App) commit(msg string) {
	if err := a.store.Save(a.snap); err != nil {
		a.snap = a.history.Current()
		a.clampSelection()
		a.status = err.Error()
		return
	}
	a.history.Push(a.snap)
	a.status = msg
}

// persist saves without touching the undo ring (quit, undo, redo).
func (a *App) persist() {
	if err := a.store.Save(a.snap); err != nil {
		a.status = err.Error()
	}
}

func (a *App) undoBoard() {
	snap, ok := a.history.Undo()
	if !ok {
		a.status = "Nothing to undo"
		return
	}
	a.snap = snap
	a.persist()
	a.clampSelection()
}

func (a *App) redoBoard() {
	snap, ok := a.history.Redo()
	if !ok {
		a.status = "Nothing to redo"
		return
	}
	a.snap = snap
	a.persist()
	a.clampSelection()
}

// draw applies one frame. Out-of-bounds instructions are clipped here so a
// single bad row can never take the frame down.
func (a *App) draw(l layout) {
	f := buildFrame(frameInput{
		snap:      a.snap,
		prevKey:   a.prevKey,
		activeKey: a.activeKey,
		nextKey:   a.nextKey,
		selected:  a.selected,
		scroll:    a.scroll,
		help:      a.helpLine(),
	}, l)

	a.term.ClearScreen()
	for _, o := range f.ops {
		if o.row < 0 || o.row >= l.height || o.col < 0 || o.col >= l.width {
			continue
		}
		a.term.MoveTo(o.row, o.col)
		a.term.WriteStyled(truncate(o.text, l.width-o.col), o.style)
	}
	a.term.Flush()
}

func (a *App) helpLine() string {
	if a.status != "" {
		return a.status
	}
	k := a.cfg.Keys
	mode := ""
	if a.reorder {
		mode = " [REORDER]"
	}
	hint := " (at end)"
	if w := a.active(); w != nil && a.selected >= 0 && a.selected < len(w.Tasks) {
		hint = " (after selected)"
	}
	return fmt.Sprintf("↑↓/%s%s:Move/Reorder%s | %s:Reorder | ←→/%s%s:Week | Tab/S-Tab:State | %s:Edit@start | %s:Add%s | ⏎:Edit | %s:Del | %s/%s:Shift | C-u:Undo | C-r:Redo | %s:Quit",
		k.Up, k.Down, mode, k.Reorder, k.PrevWeek, k.NextWeek, k.EditStart, k.Add, hint, k.Delete, k.ShiftNext, k.ShiftPrev, k.Quit)
}

// editTarget locates the edit row: the active week's title or the selected
// task's text, with the column where the text begins.
func (a *App) editTarget(l layout) (row, col int, text string) {
	w := a.active()
	if a.selected == selectTitle {
		col = leftMargin + utf8.RuneCountInString(string(a.activeKey)+" – ")
		return activeTitleRow, col, w.Title
	}
	row = l.activeTaskRow(a.selected, a.scroll)
	col = leftMargin + storage.PrefixWidth
	return row, col, w.Tasks[a.selected].Text
}

// runEditSession owns the terminal until the session commits or cancels.
// Only the edit row is redrawn per keystroke; the rest of the frame is
// already on screen.
func (a *App) runEditSession(l layout) {
	req := a.edit
	a.edit = nil

	row, col, original := a.editTarget(l)
	sess := editor.NewSession(original, req.atStart)
	width := l.width - col - 2

	a.term.SetCursorVisible(true)
	defer func() {
		a.term.SetCursorVisible(false)
		a.term.Flush()
	}()

	for {
		text, cursor := sess.Window(width)
		a.term.MoveTo(row, col)
		a.term.ClearLine()
		a.term.WriteStyled(text, styleDefault)
		a.term.MoveTo(row, col+cursor)
		a.term.Flush()

		k, err := a.keys.Next()
		if err != nil {
			a.quit = true
			return
		}
		cmd, r, ok := editor.Translate(k)
		if !ok {
			continue
		}
		done, committed := sess.Apply(cmd, r)
		if !done {
			continue
		}
		if committed {
			a.applyEditedText(sess.Text())
			a.commit("")
		}
		return
	}
}

func (a *App) applyEditedText(text string) {
	w := a.active()
	if a.selected == selectTitle {
		w.Title = text
		return
	}
	if a.selected >= 0 && a.selected < len(w.Tasks) {
		w.Tasks[a.selected].Text = text
	}
}
