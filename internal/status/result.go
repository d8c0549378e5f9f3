package status

import (
	"context"
	"errors"
)

// ErrConflicted is returned by Solve when the transition was blocked by
// conflicts. Conflicts themselves are data, not errors; this only
// signals that there is nothing to execute.
var ErrConflicted = errors.New("status: transition has unresolved conflicts")

// Conflict describes one inconsistency between the requested transition
// and the document's current data. A conflict with a Solution can be
// worked around by the suggested auxiliary action; one without requires
// outside intervention.
type Conflict struct {
	Message  string
	Solution *Solution
}

// Solution is a suggested remedial action. Its Solve performs a
// different, auxiliary action (open a pre-filled creation form,
// navigate to an edit view); it never retries the original transition.
type Solution struct {
	Message string
	Solve   func(ctx context.Context) error
}

// Result is the outcome of Apply.
type Result struct {
	Conflicts []Conflict

	solve func(ctx context.Context) (*Solution, error)
}

// Solvable reports whether the transition can be executed directly.
func (r Result) Solvable() bool {
	return r.solve != nil
}

// Solve executes the transition: a no-op when the status already holds,
// otherwise the local mutation followed by the persistence call. For
// derived statuses it may instead return a Solution the user has to
// carry out. Calling Solve on a conflicted result returns
// ErrConflicted.
//
// The in-memory document is mutated before persistence completes and is
// not rolled back on failure; concurrency control and rollback policy
// stay with the caller.
func (r Result) Solve(ctx context.Context) (*Solution, error) {
	if r.solve == nil {
		return nil, ErrConflicted
	}
	return r.solve(ctx)
}

// Resolution returns the first conflict's suggested remedial action,
// if any conflict carries one.
func (r Result) Resolution() *Solution {
	for _, c := range r.Conflicts {
		if c.Solution != nil {
			return c.Solution
		}
	}
	return nil
}
