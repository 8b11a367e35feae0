// Package differ compares two follower lists.
//
// Direction comes from the raw row counts of both inputs, before any
// deduplication. Content comes from set difference over user ids.
package differ

import (
	"fmt"

	"github.com/dbsmedya/followdiff/internal/record"
)

// Direction classifies the change in follower count.
type Direction int

const (
	Neutral Direction = iota
	Increase
	Decrease
)

func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "neutral"
	}
}

// Result is the outcome of comparing a left (older) and right (newer) list.
type Result struct {
	Direction  Direction
	Delta      int // absolute difference of the row counts
	LeftCount  int
	RightCount int

	// Added holds right minus left. Set for Increase and Neutral.
	Added *record.Set
	// Removed holds left minus right. Set for Decrease and Neutral.
	Removed *record.Set
}

// Diff compares left and right. It never fails and does not modify its inputs.
func Diff(left, right []record.Record) *Result {
	leftSet := record.NewSet(left...)
	rightSet := record.NewSet(right...)

	res := &Result{
		LeftCount:  len(left),
		RightCount: len(right),
	}

	switch {
	case len(left) < len(right):
		res.Direction = Increase
		res.Delta = len(right) - len(left)
		res.Added = rightSet.Difference(leftSet)
	case len(left) > len(right):
		res.Direction = Decrease
		res.Delta = len(left) - len(right)
		res.Removed = leftSet.Difference(rightSet)
	default:
		res.Direction = Neutral
		res.Removed = leftSet.Difference(rightSet)
		res.Added = rightSet.Difference(leftSet)
	}

	return res
}

// Status returns the human-readable status label.
func (r *Result) Status() string {
	if r.Direction == Neutral {
		return r.Direction.String()
	}
	return fmt.Sprintf("%s %d following", r.Direction, r.Delta)
}

// Differences returns the sets to report, in reporting order.
// Neutral results carry left-minus-right first, then right-minus-left.
func (r *Result) Differences() []*record.Set {
	var sets []*record.Set
	if r.Removed != nil {
		sets = append(sets, r.Removed)
	}
	if r.Added != nil {
		sets = append(sets, r.Added)
	}
	return sets
}

// Changed reports whether any difference set holds a record.
func (r *Result) Changed() bool {
	for _, s := range r.Differences() {
		if s.Len() > 0 {
			return true
		}
	}
	return false
}
