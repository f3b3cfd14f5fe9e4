package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"foldean/internal/organizer"
	"foldean/internal/services"
)

const dryRunFooter = "Dry run. No files were changed. Pass --apply to move files."

var moveColumns = []column{
	{title: "Source"},
	{title: "Category"},
	{title: "Destination"},
	{title: "Size", numeric: true},
	{title: "Status"},
}

func renderRunReport(out io.Writer, plan *organizer.Plan, summary organizer.Summary, colorize bool) {
	if len(summary.Outcomes) == 0 {
		fmt.Fprintf(out, "Nothing to organize in %s\n", plan.Root)
		return
	}

	title := "Planned moves"
	if summary.Apply {
		title = "Moves"
	}
	fmt.Fprintf(out, "%s (%d):\n", title, len(summary.Outcomes))

	if colorize {
		rows := make([][]string, 0, len(summary.Outcomes))
		for _, o := range summary.Outcomes {
			rows = append(rows, []string{
				relativeTo(plan.Root, o.Item.Source),
				o.Item.Category,
				destinationLabel(plan.Root, o.Item),
				humanize.IBytes(uint64(max(o.Item.Size, 0))),
				outcomeLabel(o, colorize),
			})
		}
		fmt.Fprintln(out, renderTable(moveColumns, rows))
	} else {
		for _, o := range summary.Outcomes {
			line := fmt.Sprintf("  %s -> %s", relativeTo(plan.Root, o.Item.Source), destinationLabel(plan.Root, o.Item))
			if o.Status == organizer.StatusFailed {
				line += "  [failed]"
			}
			fmt.Fprintln(out, line)
		}
	}

	for _, o := range summary.Outcomes {
		if o.Status == organizer.StatusFailed && o.Err != nil {
			fmt.Fprintln(out, colorizeText(fmt.Sprintf("  failed: %s: %v", relativeTo(plan.Root, o.Item.Source), o.Err), ansiRed, colorize))
		}
	}

	fmt.Fprintln(out, summaryLine(summary))
	if !summary.Apply {
		fmt.Fprintln(out, dryRunFooter)
	}
}

func summaryLine(summary organizer.Summary) string {
	var total int64
	for _, o := range summary.Outcomes {
		if o.Status != organizer.StatusFailed {
			total += o.Item.Size
		}
	}
	parts := []string{fmt.Sprintf("planned %d", summary.Planned)}
	if summary.Apply {
		parts = append(parts, fmt.Sprintf("moved %d", summary.Moved))
	}
	parts = append(parts,
		fmt.Sprintf("failed %d", summary.Failed),
		fmt.Sprintf("skipped %d", summary.Skipped),
	)
	return fmt.Sprintf("Summary: %s (%s)", strings.Join(parts, ", "), humanize.IBytes(uint64(max(total, 0))))
}

func outcomeLabel(o organizer.Outcome, colorize bool) string {
	switch o.Status {
	case organizer.StatusMoved:
		label := "moved"
		if o.Method == organizer.MethodCopy {
			label = "moved (copied)"
		}
		return colorizeText(label, ansiGreen, colorize)
	case organizer.StatusFailed:
		return colorizeText("failed", ansiRed, colorize)
	default:
		return colorizeText("planned", ansiBlue, colorize)
	}
}

func destinationLabel(root string, item organizer.Item) string {
	if item.Destination == "" {
		return "(unresolved)"
	}
	return relativeTo(root, item.Destination)
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

type runReport struct {
	RunID   string              `json:"run_id"`
	Root    string              `json:"root"`
	Apply   bool                `json:"apply"`
	Planned int                 `json:"planned"`
	Moved   int                 `json:"moved"`
	Failed  int                 `json:"failed"`
	Items   []itemReport        `json:"items"`
	Skipped []organizer.Skipped `json:"skipped"`
}

type itemReport struct {
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	Status      string `json:"status"`
	Method      string `json:"method,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorKind   string `json:"error_kind,omitempty"`
}

func newRunReport(runID string, plan *organizer.Plan, summary organizer.Summary) runReport {
	report := runReport{
		RunID:   runID,
		Root:    plan.Root,
		Apply:   summary.Apply,
		Planned: summary.Planned,
		Moved:   summary.Moved,
		Failed:  summary.Failed,
		Items:   make([]itemReport, 0, len(summary.Outcomes)),
		Skipped: plan.Skipped,
	}
	if report.Skipped == nil {
		report.Skipped = []organizer.Skipped{}
	}
	for _, o := range summary.Outcomes {
		item := itemReport{
			Source:      o.Item.Source,
			Destination: o.Item.Destination,
			Category:    o.Item.Category,
			Name:        o.Item.Name,
			Size:        o.Item.Size,
			Status:      string(o.Status),
			Method:      string(o.Method),
		}
		if o.Err != nil {
			item.Error = o.Err.Error()
			item.ErrorKind = services.Kind(o.Err)
		}
		report.Items = append(report.Items, item)
	}
	return report
}
