// Package render formats the aggregation report for the terminal:
// invalid-file warnings, the per-person results table, and the run
// totals footer with the completion ratio.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/reviewkit/peerscore/internal/domain"
	"github.com/reviewkit/peerscore/internal/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer is the terminal Renderer implementation.
type Renderer struct {
	warn   lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	footer lipgloss.Style
}

// New creates a Renderer with the default styles.
func New() *Renderer {
	return &Renderer{
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		border: lipgloss.NewStyle().Faint(true),
		footer: lipgloss.NewStyle().Faint(true),
	}
}

// Render writes the report: one warning line per invalid file, the
// results table in roster order, then the totals footer. Pure
// formatting; exit decisions stay with the caller.
func (r *Renderer) Render(w io.Writer, report domain.Report) error {
	var b strings.Builder

	for _, name := range report.Invalid {
		b.WriteString(r.warn.Render(fmt.Sprintf("warning: skipping invalid input file: %s", name)))
		b.WriteByte('\n')
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return r.header
			}
			return r.cell
		}).
		Headers("NAME", "GOALS", "SCORE", "STATUS")

	for _, res := range report.Results {
		t.Row(res.Name, goalsCell(res), scoreCell(res), statusCell(res))
	}
	b.WriteString(t.Render())
	b.WriteByte('\n')

	totals := report.Totals
	b.WriteString(r.footer.Render(fmt.Sprintf("goals: %d (%d main)", totals.Goals, totals.MainGoals)))
	b.WriteByte('\n')
	b.WriteString(r.footer.Render(fmt.Sprintf("completion: %d/%d (%.0f%%)",
		totals.ScoresCollected, totals.ScoresRequired, totals.Ratio()*100)))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// goalsCell formats the direct-goal count with its main subset.
func goalsCell(res domain.PersonResult) string {
	return fmt.Sprintf("%d (%d main)", res.DirectGoals, res.DirectMainGoals)
}

// scoreCell formats the final score, or N/A for a person nobody rated.
// The unrated check looks at the collected scores, not the sentinel
// value, so legitimate negative scores still render.
func scoreCell(res domain.PersonResult) string {
	if len(res.Scores) == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", res.Final)
}

// statusCell annotates completion: unrated, partial, or ok.
func statusCell(res domain.PersonResult) string {
	switch {
	case len(res.Scores) == 0:
		return "unrated"
	case res.Partial:
		return "partial"
	default:
		return "ok"
	}
}
