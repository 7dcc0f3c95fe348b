package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"taskbar/backend/bridge"
	"taskbar/backend/models"
)

const barWidth = 20

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Width(28)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	barColorFull  = lipgloss.Color("#00FF00")
	barColorPart  = lipgloss.Color("#FFFF00")
	barColorEmpty = lipgloss.Color("#333333")
)

func statusCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's tasks and their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.withBridge(func(b *bridge.Bridge) error {
				renderStatus(cmd.OutOrStdout(), b.Tasks(), b.Sessions())
				return nil
			})
		},
	}
}

func renderStatus(w io.Writer, tasks []models.Task, overview models.SessionsOverview) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No tasks selected for today"))
		return
	}

	var lines []string
	lines = append(lines, headerStyle.Render("Today"))
	for _, t := range tasks {
		counts := fmt.Sprintf("%d/%d", t.Done, t.DueStart)
		if t.Completed {
			counts = doneStyle.Render(counts + " done")
		}
		lines = append(lines, nameStyle.Render(t.Name)+" "+progressBar(t.Progress)+" "+counts)
	}

	for _, s := range overview.Sessions {
		if !s.Active {
			continue
		}
		lines = append(lines, "", dimStyle.Render(fmt.Sprintf("Session %q: %.0f%% (%d/%d)",
			s.Name, s.Progress*100, s.Done, s.DueStart)))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

func progressBar(p float64) string {
	filled := int(p * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	color := barColorPart
	if filled == barWidth {
		color = barColorFull
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(barColorEmpty).Render(strings.Repeat("░", barWidth-filled))
	return bar + rest + fmt.Sprintf(" %5.1f%%", p*100)
}
