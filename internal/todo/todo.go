// Package todo holds the state of a to-do list: an ordered set of tasks with
// auto-incrementing ids.
package todo

import "sync"

// Task is one list entry.
type Task struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// EventKind names a list mutation.
type EventKind string

const (
	Added   EventKind = "added"
	Removed EventKind = "removed"
	Toggled EventKind = "toggled"
	Edited  EventKind = "edited"
)

// Event is delivered to OnChange callbacks after a mutation.
type Event struct {
	Kind EventKind `json:"kind"`
	Task Task      `json:"task"`
}

// List is safe for concurrent use.
type List struct {
	mu        sync.Mutex
	next      int
	tasks     []Task
	listeners []func(Event)
}

// New returns an empty list whose first task gets id 1.
func New() *List { return &List{} }

// OnChange registers fn to be called after every mutation.
func (l *List) OnChange(fn func(Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

func (l *List) emit(fns []func(Event), e Event) {
	for _, fn := range fns {
		fn(e)
	}
}

// Add appends a new unchecked task.
func (l *List) Add(text string) Task {
	l.mu.Lock()
	l.next++
	t := Task{ID: l.next, Text: text}
	l.tasks = append(l.tasks, t)
	fns := l.listeners
	l.mu.Unlock()

	l.emit(fns, Event{Kind: Added, Task: t})
	return t
}

// Remove deletes the task with id. It reports whether the task existed.
func (l *List) Remove(id int) bool {
	l.mu.Lock()
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	fns := l.listeners
	l.mu.Unlock()

	l.emit(fns, Event{Kind: Removed, Task: t})
	return true
}

// Toggle flips the checked state of the task with id.
func (l *List) Toggle(id int) (Task, bool) {
	l.mu.Lock()
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		return Task{}, false
	}
	l.tasks[i].Checked = !l.tasks[i].Checked
	t := l.tasks[i]
	fns := l.listeners
	l.mu.Unlock()

	l.emit(fns, Event{Kind: Toggled, Task: t})
	return t, true
}

// SetText replaces the text of the task with id.
func (l *List) SetText(id int, text string) bool {
	l.mu.Lock()
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	l.tasks[i].Text = text
	t := l.tasks[i]
	fns := l.listeners
	l.mu.Unlock()

	l.emit(fns, Event{Kind: Edited, Task: t})
	return true
}

// Get returns the task with id.
func (l *List) Get(id int) (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.index(id); i >= 0 {
		return l.tasks[i], true
	}
	return Task{}, false
}

// Tasks returns a copy of the tasks in insertion order.
func (l *List) Tasks() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// index must be called with mu held.
func (l *List) index(id int) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
