package storage

import "github.com/lstephensFederation/lolTasks/internal/week"

// DefaultTitle seeds a week created implicitly by navigation.
const DefaultTitle = "Editable Title here for the week"

// Task is one list entry. Ordering within a week is positional and
// caller-controlled.
type Task struct {
	Text  string
	State State
}

// Week is one bucket: a title plus its ordered tasks.
type Week struct {
	Title string
	Tasks []Task
}

// NewWeek returns an empty week with the default editable title.
func NewWeek() *Week {
	return &Week{Title: DefaultTitle}
}

// Clone deep-copies the week.
func (w *Week) Clone() *Week {
	c := &Week{Title: w.Title}
	if len(w.Tasks) > 0 {
		c.Tasks = make([]Task, len(w.Tasks))
		copy(c.Tasks, w.Tasks)
	}
	return c
}

// Snapshot is the whole persisted data set. It is the unit the global undo
// history stores and the unit the store saves.
type Snapshot map[week.Key]*Week

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	for k, w := range s {
		c[k] = w.Clone()
	}
	return c
}
