package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"application-sync/core/reconcile"
	"application-sync/feature/applications"
	"application-sync/feature/history/models"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format is an output format for command results.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output value. Empty picks table on a terminal and
// JSON when stdout is redirected.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return FormatTable, nil
		}
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml", s)
	}
}

func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// writeYAML goes through JSON first so that field names follow the json tags.
func writeYAML(w io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)

	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	table.Header(hdr...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

// actionLabel turns "skip_not_applied" into "Skip Not Applied".
func actionLabel(t reconcile.ActionType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}

// syncView is the serialized form of a sync result.
type syncView struct {
	RunID    string              `json:"run_id" yaml:"run_id"`
	Source   string              `json:"source" yaml:"source"`
	DryRun   bool                `json:"dry_run" yaml:"dry_run"`
	Summary  reconcile.Summary   `json:"summary" yaml:"summary"`
	Failures []reconcile.Outcome `json:"failures,omitempty" yaml:"failures,omitempty"`
}

func newSyncView(result *applications.Result) syncView {
	v := syncView{
		RunID:   result.RunID,
		Source:  result.Source,
		DryRun:  result.Report.DryRun,
		Summary: result.Report.Summary,
	}
	for _, o := range result.Report.Outcomes {
		if o.Failed() {
			v.Failures = append(v.Failures, o)
		}
	}
	return v
}

// renderSync prints the final summary block of a sync run.
func renderSync(w io.Writer, format Format, result *applications.Result) error {
	view := newSyncView(result)
	switch format {
	case FormatJSON:
		return writeJSON(w, view)
	case FormatYAML:
		return writeYAML(w, view)
	}

	s := view.Summary
	title := "Sync summary"
	if view.DryRun {
		title += " (dry run, nothing written)"
	}
	fmt.Fprintf(w, "%s - run %s\n", title, view.RunID)
	if err := writeTable(w, []string{"Created", "Updated", "Skipped", "Failed", "Total"}, [][]string{{
		strconv.Itoa(s.Created), strconv.Itoa(s.Updated), strconv.Itoa(s.Skipped),
		strconv.Itoa(s.Failed), strconv.Itoa(s.Total),
	}}); err != nil {
		return err
	}

	if len(view.Failures) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(view.Failures))
	for _, o := range view.Failures {
		rows = append(rows, []string{strconv.Itoa(o.Line), o.Key, string(o.Kind), o.Error})
	}
	fmt.Fprintln(w, "Failed records")
	return writeTable(w, []string{"Line", "Record", "Kind", "Error"}, rows)
}

// renderRuns prints a list of runs.
func renderRuns(w io.Writer, format Format, runs []models.Run) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, runs)
	case FormatYAML:
		return writeYAML(w, runs)
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		mode := "live"
		if r.DryRun {
			mode = "dry run"
		}
		rows = append(rows, []string{
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			mode,
			strconv.Itoa(r.Created),
			strconv.Itoa(r.Updated),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(r.Failed),
			r.Source,
		})
	}
	return writeTable(w, []string{"Run", "Started", "Mode", "Created", "Updated", "Skipped", "Failed", "Source"}, rows)
}

// renderRun prints one run with its records.
func renderRun(w io.Writer, format Format, run *models.Run) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, run)
	case FormatYAML:
		return writeYAML(w, run)
	}

	if err := renderRuns(w, format, []models.Run{*run}); err != nil {
		return err
	}
	rows := make([][]string, 0, len(run.Records))
	for _, r := range run.Records {
		outcome := actionLabel(reconcile.ActionType(r.Action))
		if r.ErrorKind != "" {
			outcome = "Failed: " + r.Error
		}
		rows = append(rows, []string{strconv.Itoa(r.Line), r.Key, outcome, r.ResultID})
	}
	return writeTable(w, []string{"Line", "Record", "Outcome", "Page"}, rows)
}
