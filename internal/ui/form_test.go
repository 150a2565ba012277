package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/taskboard/internal/model"
)

func TestForm_DraftDefaults(t *testing.T) {
	f := NewForm(ThemeByName("classic"), nil)

	assert.False(t, f.Editing())
	assert.Equal(t, model.NewDraft(), f.Task())
}

func TestForm_PrefilledForEdit(t *testing.T) {
	task := model.Task{
		ID: "9", Title: "Dentist", Description: "bring card",
		Status: model.StatusCompleted, Priority: model.PriorityHigh,
		Category: "Health", DueDate: "2025-05-05",
	}
	f := NewForm(ThemeByName("classic"), &task)

	assert.True(t, f.Editing())
	assert.Equal(t, task, f.Task())
}

func TestForm_EditKeepsOverlongValues(t *testing.T) {
	task := model.Task{
		ID:          "r-1",
		Title:       strings.Repeat("t", 250),
		Description: strings.Repeat(strings.Repeat("notes from the long planning meeting ", 3)+"\n", 40),
		Status:      model.StatusTodo,
		Priority:    model.PriorityLow,
		Category:    "Work",
		DueDate:     "first week of May",
	}
	f := NewForm(ThemeByName("classic"), &task)

	assert.Equal(t, task, f.Task())

	f = pressForm(f, runes("x"))
	assert.Equal(t, task.Title, f.Task().Title, "title is already at its limit")
}

func TestForm_SelectorsWrap(t *testing.T) {
	f := NewForm(ThemeByName("mono"), nil)
	f = pressForm(f, keyTab, keyTab) // status
	f = pressForm(f, keyLeft)
	assert.Equal(t, model.StatusCompleted, f.Task().Status)

	f = pressForm(f, keyTab, keyRight, keyRight) // priority
	assert.Equal(t, model.PriorityLow, f.Task().Priority)

	f = pressForm(f, keyTab, keyLeft) // category
	assert.Equal(t, "Other", f.Task().Category)
}

func TestForm_FocusWrapsBackwards(t *testing.T) {
	f := NewForm(ThemeByName("mono"), nil)
	f = pressForm(f, keyShiftTab, runes("2025-01-31"))
	assert.Equal(t, "2025-01-31", f.Task().DueDate)
}

func TestForm_DescriptionKeepsEnter(t *testing.T) {
	f := NewForm(ThemeByName("mono"), nil)
	f = pressForm(f, runes("Plan"), keyTab, runes("line one"), keyEnter, runes("line two"))

	_, submitted := f.Submitted()
	assert.False(t, submitted, "enter inside the description adds a line")
	assert.Equal(t, "line one\nline two", f.Task().Description)

	f = pressForm(f, keyCtrlS)
	task, submitted := f.Submitted()
	require.True(t, submitted)
	assert.Equal(t, "Plan", task.Title)
}

func TestForm_ValidationBlocksSubmit(t *testing.T) {
	f := NewForm(ThemeByName("mono"), nil)
	f = pressForm(f, runes("Taxes"), keyShiftTab, runes("31/01/25"), keyEnter)

	_, submitted := f.Submitted()
	assert.False(t, submitted)
	assert.Equal(t, map[string]string{"DueDate": "use YYYY-MM-DD"}, f.Errors())
	assert.Contains(t, f.View(), "use YYYY-MM-DD")
}

func TestForm_UnknownCategoryMustBeReplaced(t *testing.T) {
	task := model.Task{ID: "4", Title: "Mow", Status: model.StatusTodo, Priority: model.PriorityLow, Category: "Garden"}
	f := NewForm(ThemeByName("mono"), &task)
	assert.Equal(t, "Garden", f.Task().Category)

	f = pressForm(f, keyEnter)
	_, submitted := f.Submitted()
	assert.False(t, submitted)
	assert.Contains(t, f.Errors(), "Category")

	f = pressForm(f, keyTab, keyTab, keyTab, keyTab, keyRight, keyEnter)
	got, submitted := f.Submitted()
	require.True(t, submitted)
	assert.Equal(t, "Work", got.Category)
	assert.Equal(t, "4", got.ID)
}

func TestForm_Cancel(t *testing.T) {
	f := pressForm(NewForm(ThemeByName("mono"), nil), runes("x"), keyEsc)
	assert.True(t, f.Canceled())
	_, submitted := f.Submitted()
	assert.False(t, submitted)
}
