package reconcile

import (
	"context"
	"fmt"
	"time"
)

// Spec defines the configuration for a sync run.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// Options controls dry-run behavior.
	Options Options

	// OnOutcome, when set, is called after each entry is processed.
	OnOutcome func(Outcome)
}

// Run processes entries strictly in order, one at a time. A failing entry is
// recorded and the run continues with the next one. Run returns an error only when
// ctx is done; the returned report still holds every outcome produced so far.
func Run(ctx context.Context, spec *Spec, entries []Entry) (*Report, error) {
	if spec == nil || spec.Adapter == nil {
		return nil, fmt.Errorf("reconcile: spec has no adapter")
	}

	report := &Report{
		Outcomes:  make([]Outcome, 0, len(entries)),
		DryRun:    spec.Options.DryRun,
		StartedAt: time.Now(),
	}
	reporter := &Reporter{}

	var runErr error
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		outcome := process(ctx, spec, entry)
		reporter.Record(outcome)
		report.Outcomes = append(report.Outcomes, outcome)
		if spec.OnOutcome != nil {
			spec.OnOutcome(outcome)
		}

		if outcome.Kind == KindInterrupted && ctx.Err() != nil {
			runErr = ctx.Err()
			break
		}
	}

	report.Summary = reporter.Summary()
	report.FinishedAt = time.Now()
	report.Interrupted = runErr != nil
	return report, runErr
}

// process plans and, when the action mutates, applies one entry.
func process(ctx context.Context, spec *Spec, entry Entry) Outcome {
	outcome := Outcome{Line: entry.Line, Key: entry.Key}

	if entry.Err != nil {
		return fail(outcome, entry.Err)
	}

	action, err := spec.Adapter.Plan(ctx, entry.Item)
	outcome.Action = action
	if err != nil {
		return fail(outcome, fmt.Errorf("plan: %w", err))
	}

	if !action.Type.Mutates() || spec.Options.DryRun {
		return outcome
	}

	id, err := spec.Adapter.Apply(ctx, entry.Item, action)
	if err != nil {
		return fail(outcome, fmt.Errorf("apply %s: %w", action.Type, err))
	}
	outcome.ResultID = id
	outcome.Applied = true
	return outcome
}

func fail(o Outcome, err error) Outcome {
	o.Err = err
	o.Error = err.Error()
	o.Kind = KindOf(err)
	return o
}
