package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"application-sync/core/config"
	"application-sync/core/reconcile"
	"application-sync/feature/applications"
	"application-sync/feature/history/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *applications.Result {
	return &applications.Result{
		RunID:  "run-1",
		Source: "export.csv",
		Report: &reconcile.Report{
			Summary: reconcile.Summary{Created: 2, Updated: 1, Skipped: 3, Failed: 1, Total: 6},
			Outcomes: []reconcile.Outcome{
				{Line: 2, Key: "Acme / Engineer", Action: reconcile.Action{Type: reconcile.ActionCreate}},
				{Line: 7, Key: "Hooli / Designer", Kind: reconcile.KindUnknownStatus, Error: `"ghosted": unknown status`, Err: reconcile.ErrUnknownStatus},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", " yaml "} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Contains(t, []Format{FormatTable, FormatJSON}, f)
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Skip Not Applied", actionLabel(reconcile.ActionSkipNotApplied))
	assert.Equal(t, "Create", actionLabel(reconcile.ActionCreate))
}

func TestRenderSync_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSync(&buf, FormatTable, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "run-1")
	assert.Contains(t, strings.ToLower(out), "created")
	assert.Contains(t, out, "Failed records")
	assert.Contains(t, out, "Hooli / Designer")
	assert.Contains(t, out, "unknown_status")
}

func TestRenderSync_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSync(&buf, FormatJSON, sampleResult()))

	var view struct {
		RunID    string            `json:"run_id"`
		Summary  reconcile.Summary `json:"summary"`
		Failures []map[string]any  `json:"failures"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "run-1", view.RunID)
	assert.Equal(t, 6, view.Summary.Total)
	require.Len(t, view.Failures, 1)
	assert.Equal(t, float64(7), view.Failures[0]["line"])
}

func TestRenderSync_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSync(&buf, FormatYAML, sampleResult()))

	var view map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "run-1", view["run_id"])
	summary := view["summary"].(map[string]any)
	assert.Equal(t, 2, summary["created"])
}

func TestRenderRun(t *testing.T) {
	run := &models.Run{
		ID:        "run-1",
		Source:    "export.csv",
		StartedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Created:   1,
		Records: []models.Record{
			{Line: 2, Key: "Acme / Engineer", Action: "create", ResultID: "page-1"},
			{Line: 3, Key: "Hooli / Designer", ErrorKind: "unknown_status", Error: "unknown status"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderRun(&buf, FormatTable, run))
	out := buf.String()
	assert.Contains(t, out, "page-1")
	assert.Contains(t, out, "Failed: unknown status")
}

func TestApplySyncFlags(t *testing.T) {
	cmd := &cobra.Command{}
	var dry bool
	var interval time.Duration
	var policy string
	cmd.Flags().BoolVar(&dry, "dry-run", false, "")
	cmd.Flags().DurationVar(&interval, "interval", 0, "")
	cmd.Flags().StringVar(&policy, "match-policy", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--dry-run", "--interval", "1s"}))

	syncDryRun, syncInterval, syncMatchPolicy = dry, interval, policy
	t.Cleanup(func() { syncDryRun, syncInterval, syncMatchPolicy = false, 0, "" })

	cfg := &config.Config{}
	cfg.Sync.IntervalMS = 400
	cfg.Sync.MatchPolicy = "first"
	applySyncFlags(cmd, cfg)

	assert.True(t, cfg.Sync.DryRun)
	assert.Equal(t, 1000, cfg.Sync.IntervalMS)
	assert.Equal(t, "first", cfg.Sync.MatchPolicy)
}
