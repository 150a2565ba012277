// Package stats derives read-only aggregates from a task collection
// snapshot. Everything here is a pure function of its input.
package stats

import (
	"math"

	"github.com/idilsaglam/taskboard/internal/model"
)

// Stats summarises a collection.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Todo       int
	// CompletionRate is Completed/Total*100, or 0 for an empty collection.
	// It is not rounded; see RoundedRate.
	CompletionRate float64
	// Categories are in the order each category first appears.
	Categories []CategoryStat
}

// CategoryStat is the completion breakdown for one category.
type CategoryStat struct {
	Category   string
	Completed  int
	Total      int
	Percentage float64
}

// Compute walks tasks once and returns their statistics.
func Compute(tasks []model.Task) Stats {
	s := Stats{Total: len(tasks), Categories: []CategoryStat{}}
	pos := map[string]int{}
	for _, t := range tasks {
		done := t.Status == model.StatusCompleted
		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusTodo:
			s.Todo++
		}

		i, ok := pos[t.Category]
		if !ok {
			i = len(s.Categories)
			pos[t.Category] = i
			s.Categories = append(s.Categories, CategoryStat{Category: t.Category})
		}
		s.Categories[i].Total++
		if done {
			s.Categories[i].Completed++
		}
	}

	s.CompletionRate = Percent(s.Completed, s.Total)
	for i := range s.Categories {
		c := &s.Categories[i]
		c.Percentage = Percent(c.Completed, c.Total)
	}
	return s
}

// Percent is part/total*100 with a zero guard on total.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Round rounds to the nearest integer, halves up.
func Round(v float64) int { return int(math.Floor(v + 0.5)) }

// RoundedRate is the overall completion rate as displayed.
func (s Stats) RoundedRate() int { return Round(s.CompletionRate) }

// Rounded is the category percentage as displayed.
func (c CategoryStat) Rounded() int { return Round(c.Percentage) }
