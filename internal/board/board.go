// Package board holds the in-memory task collection for a session and the
// operations that transform it.
//
// Every operation is total: an unknown id leaves the collection as it was
// and the call reports false. Nothing here touches the network or disk.
package board

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/taskboard/internal/model"
)

// Board is the canonical, ordered task collection. Insertion order is
// display order. It is not safe for concurrent use; the dashboard only
// touches it from its event loop.
type Board struct {
	tasks []model.Task
	newID func() string
}

type Option func(*Board)

// WithIDGenerator replaces the uuid-based id source.
func WithIDGenerator(gen func() string) Option {
	return func(b *Board) { b.newID = gen }
}

// New returns an empty board.
func New(opts ...Option) *Board {
	b := &Board{
		tasks: []model.Task{},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Seed replaces the collection with tasks, typically the result of the
// startup fetch. A task with no id, or with an id an earlier task already
// holds, is kept under a freshly drawn id.
func (b *Board) Seed(tasks []model.Task) {
	taken := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t.ID != "" {
			taken[t.ID] = struct{}{}
		}
	}
	seen := make(map[string]struct{}, len(tasks))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup || t.ID == "" {
			t.ID = b.freshID(func(id string) bool {
				_, ok := taken[id]
				return ok
			})
			taken[t.ID] = struct{}{}
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	b.tasks = out
}

// Len is the size of the collection.
func (b *Board) Len() int { return len(b.tasks) }

// Tasks returns a copy of the collection in display order.
func (b *Board) Tasks() []model.Task {
	out := make([]model.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Get looks up a task by id.
func (b *Board) Get(id string) (model.Task, bool) {
	if i := b.index(id); i >= 0 {
		return b.tasks[i], true
	}
	return model.Task{}, false
}

// Add gives draft a fresh id, appends it and returns the stored task.
// Whatever id the draft carried is discarded.
func (b *Board) Add(draft model.Task) model.Task {
	draft.ID = b.freshID(func(id string) bool { return b.index(id) >= 0 })
	b.tasks = append(b.tasks, draft)
	return draft
}

// Update replaces the task with the same id, keeping its position.
func (b *Board) Update(task model.Task) bool {
	i := b.index(task.ID)
	if i < 0 {
		return false
	}
	b.tasks[i] = task
	return true
}

// Delete removes the task with the given id.
func (b *Board) Delete(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	out := make([]model.Task, 0, len(b.tasks)-1)
	out = append(out, b.tasks[:i]...)
	b.tasks = append(out, b.tasks[i+1:]...)
	return true
}

// SetStatus changes only the status of the task with the given id.
func (b *Board) SetStatus(id string, status model.Status) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.tasks[i].Status = status
	return true
}

// freshID draws ids until one is non-empty and not taken.
func (b *Board) freshID(taken func(string) bool) string {
	id := b.newID()
	for id == "" || taken(id) {
		id = b.newID()
	}
	return id
}

func (b *Board) index(id string) int {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
