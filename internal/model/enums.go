package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is where a task sits in its lifecycle. The values are the labels
// the remote service sends.
type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

// ParseStatus accepts the wire labels as well as identifier spellings
// such as "InProgress" or "in-progress".
func ParseStatus(s string) (Status, error) {
	switch fold(s) {
	case "todo":
		return StatusTodo, nil
	case "inprogress":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Valid reports whether s is one of Statuses.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Next returns the following status, wrapping around.
func (s Status) Next() Status { return Statuses[(s.index()+1)%len(Statuses)] }

// Prev returns the preceding status, wrapping around.
func (s Status) Prev() Status {
	return Statuses[(s.index()+len(Statuses)-1)%len(Statuses)]
}

func (s Status) index() int {
	for i, v := range Statuses {
		if s == v {
			return i
		}
	}
	return 0
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*s = ""
		return nil
	}
	v, err := ParseStatus(*raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func ParsePriority(s string) (Priority, error) {
	switch fold(s) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("priority: %w", err)
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*p = ""
		return nil
	}
	v, err := ParsePriority(*raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// fold lowercases s and drops separators: "In Progress" -> "inprogress".
func fold(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
