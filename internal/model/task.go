package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Task is the domain model for a tracked unit of work.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Status      Status   `json:"status" validate:"task_status"`
	Priority    Priority `json:"priority" validate:"task_priority"`
	Category    string   `json:"category" validate:"task_category"`
	DueDate     string   `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

// DateLayout is the form of Task.DueDate.
const DateLayout = "2006-01-02"

// Categories are the options offered by the task form.
var Categories = []string{"Work", "Personal", "Study", "Health", "Finance", "Other"}

// NewDraft returns an empty task carrying the add-form defaults.
func NewDraft() Task {
	return Task{
		Status:   StatusTodo,
		Priority: PriorityMedium,
		Category: "Work",
	}
}

// UnmarshalJSON accepts string or numeric ids and fills in defaults for
// fields the payload leaves out, so a decoded task is always complete.
func (t *Task) UnmarshalJSON(b []byte) error {
	type plain Task
	var w struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	id, err := decodeID(w.ID)
	if err != nil {
		return err
	}
	*t = Task(w.plain)
	t.ID = id
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	t.DueDate = normalizeDate(t.DueDate)
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return "", nil
	}
	if strings.HasPrefix(s, `"`) {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", fmt.Errorf("id: %w", err)
		}
		return id, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id: unsupported value %s", s)
	}
	return n.String(), nil
}

// normalizeDate trims a timestamp down to its calendar date. Values that
// are not recognisable dates are kept as they are.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{DateLayout, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.Format(DateLayout)
		}
	}
	return s
}
