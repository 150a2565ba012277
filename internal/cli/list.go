package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/taskboard/internal/board"
	"github.com/idilsaglam/taskboard/internal/client"
	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/stats"
	"github.com/idilsaglam/taskboard/internal/ui"
)

func newListCmd(flags *rootFlags, stdout, stderr io.Writer) *cobra.Command {
	var (
		status string
		group  bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the task list",
		Example: `  taskboard ls
  taskboard ls --status in-progress
  taskboard ls --group --fixture tasks.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := board.ViewAll
			if status != "" {
				s, err := model.ParseStatus(status)
				if err != nil {
					return fmt.Errorf("--status: %w", err)
				}
				view = board.ViewFor(s)
			}
			return withApp(flags, stdout, stderr, func(a *app) error {
				return runList(cmd.Context(), a, view, group)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only show todo, in-progress or completed tasks")
	cmd.Flags().BoolVar(&group, "group", false, "group output by status")
	return cmd
}

// load seeds a fresh board the same way the dashboard does.
func load(ctx context.Context, a *app) *board.Board {
	if ctx == nil {
		ctx = context.Background()
	}
	b := board.New()
	b.Seed(client.Load(ctx, a.source, a.logger).Tasks)
	return b
}

func runList(ctx context.Context, a *app, view board.View, group bool) error {
	b := load(ctx, a)
	t := a.theme
	tasks := b.View(view)
	s := stats.Compute(b.Tasks())

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("Tasks · "+view.String()),
		t.Success.Render(t.SymDone), s.Completed,
		t.Info.Render(t.SymActive), s.InProgress,
		t.Pending.Render(t.SymTodo), s.Todo,
		t.Accent.Render("Total"), s.Total,
	)

	lines := []string{header, progressLine(t, s), ""}
	if group {
		lines = append(lines, ui.GroupLines(t, tasks)...)
	} else {
		lines = append(lines, ui.TaskLines(t, tasks)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: run `taskboard` for the interactive dashboard"))
	fmt.Fprintln(a.stdout, ui.Panel(t, lines))
	return nil
}

// progressLine is the overall completion bar under list headers.
func progressLine(t ui.Theme, s stats.Stats) string {
	return ui.ProgressBar(t, s.Completed, s.Total, 28)
}

func runStats(cmd *cobra.Command, a *app) error {
	b := load(cmd.Context(), a)
	s := stats.Compute(b.Tasks())
	fmt.Fprintln(a.stdout, ui.SummaryCards(a.theme, s, 120))
	fmt.Fprintln(a.stdout, ui.StatsPanel(a.theme, s, 48))
	return nil
}
