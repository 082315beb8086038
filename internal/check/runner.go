package check

import "context"

// Summary aggregates the outcomes of a run
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// OK reports whether the run had no failures. Skipped checks do not count
// as failures.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Runner executes checks one at a time, in registration order. Checks are
// independent: a failing check never stops the remaining ones from running
// and reporting.
type Runner struct {
	checks   []Check
	onResult func(Result)
}

// NewRunner creates a Runner. onResult, when non-nil, is invoked after each
// check completes, for progress reporting.
func NewRunner(onResult func(Result)) *Runner {
	return &Runner{onResult: onResult}
}

// Add registers checks to run
func (r *Runner) Add(checks ...Check) {
	r.checks = append(r.checks, checks...)
}

// Run executes all registered checks sequentially and returns every result
func (r *Runner) Run(ctx context.Context) []Result {
	results := make([]Result, 0, len(r.checks))

	for _, c := range r.checks {
		result := c.Run(ctx)
		result.Name = c.Name
		results = append(results, result)

		if r.onResult != nil {
			r.onResult(result)
		}
	}

	return results
}

// Summarize counts results by status
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			s.Passed++
		case StatusFail:
			s.Failed++
		case StatusSkip:
			s.Skipped++
		}
	}
	return s
}
