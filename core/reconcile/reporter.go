package reconcile

// Reporter accumulates outcome counts for one run. It is owned by the goroutine
// that processes the run and is not safe for concurrent use.
type Reporter struct {
	summary Summary
}

// Record increments the counter matching the outcome.
func (r *Reporter) Record(o Outcome) {
	switch {
	case o.Failed():
		r.summary.Failed++
	case o.Action.Type == ActionCreate:
		r.summary.Created++
	case o.Action.Type == ActionUpdate:
		r.summary.Updated++
	case o.Action.Type.IsSkip():
		r.summary.Skipped++
	}
	r.summary.Total = r.summary.Created + r.summary.Updated + r.summary.Skipped
}

// Summary returns the counts recorded so far.
func (r *Reporter) Summary() Summary {
	return r.summary
}
