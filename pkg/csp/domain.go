package csp

// domain.go: interval-list representation of finite integer domains

import (
	"fmt"
	"strings"
)

// interval is a closed integer range [lo, hi] with lo <= hi.
type interval struct {
	lo, hi int
}

// domain holds a nonempty finite set of integers as an ordered list of
// disjoint, non-touching intervals. The bounds of the whole set are
// cached so Min/Max queries are O(1).
//
// Invariants maintained by every operation:
//   - intervals[i].lo <= intervals[i].hi
//   - intervals[i].hi + 1 < intervals[i+1].lo
//   - min == intervals[0].lo and max == intervals[len-1].hi
type domain struct {
	min, max  int
	intervals []interval
}

// newDomain creates a domain covering the single interval [min, max].
func newDomain(min, max int) *domain {
	return &domain{
		min:       min,
		max:       max,
		intervals: []interval{{min, max}},
	}
}

// size returns the number of values in the domain.
func (d *domain) size() int {
	n := 0
	for _, iv := range d.intervals {
		n += iv.hi - iv.lo + 1
	}
	return n
}

// contains reports whether val is a member of the domain.
func (d *domain) contains(val int) bool {
	if val < d.min || val > d.max {
		return false
	}
	down, up := 0, len(d.intervals)
	for down < up {
		test := down + (up-down)/2
		iv := d.intervals[test]
		switch {
		case val < iv.lo:
			up = test
		case val > iv.hi:
			down = test + 1
		default:
			return true
		}
	}
	return false
}

// setMin raises the lower bound to min, dropping intervals that fall
// entirely below it. Requests below the current minimum are ignored;
// a request above the current maximum is a failure and leaves the
// domain unchanged.
func (d *domain) setMin(min int) error {
	if min < d.min {
		return nil
	}
	if min > d.max {
		return ErrInconsistent
	}
	for {
		iv := d.intervals[0]
		switch {
		case min < iv.lo:
			// landed in a hole: the next interval starts above min
			d.min = iv.lo
			return nil
		case min > iv.hi:
			d.intervals = d.intervals[1:]
		default:
			d.min = min
			d.intervals[0].lo = min
			return nil
		}
	}
}

// setMax lowers the upper bound to max; the mirror image of setMin.
func (d *domain) setMax(max int) error {
	if max > d.max {
		return nil
	}
	if max < d.min {
		return ErrInconsistent
	}
	for {
		iv := d.intervals[len(d.intervals)-1]
		switch {
		case max > iv.hi:
			d.max = iv.hi
			return nil
		case max < iv.lo:
			d.intervals = d.intervals[:len(d.intervals)-1]
		default:
			d.max = max
			d.intervals[len(d.intervals)-1].hi = max
			return nil
		}
	}
}

// remove deletes a single value from the domain. Values outside the
// bounds and values that fall in a hole are ignored. Removing the sole
// remaining value is a failure and leaves the domain unchanged.
func (d *domain) remove(val int) error {
	if val < d.min || val > d.max {
		return nil
	}
	if d.min == d.max {
		return ErrDomainEmpty
	}
	down, up := 0, len(d.intervals)
	var test int
search:
	for {
		test = down + (up-down)/2
		iv := d.intervals[test]
		switch {
		case val < iv.lo:
			if test == down {
				return nil // hole
			}
			up = test
		case val > iv.hi:
			if test == up-1 {
				return nil // hole
			}
			down = test + 1
		case iv.lo == iv.hi:
			d.intervals = append(d.intervals[:test], d.intervals[test+1:]...)
			break search
		case val == iv.lo:
			d.intervals[test].lo = val + 1
			break search
		case val == iv.hi:
			d.intervals[test].hi = val - 1
			break search
		default:
			// split the interval around val
			d.intervals = append(d.intervals, interval{})
			copy(d.intervals[test+2:], d.intervals[test+1:])
			d.intervals[test] = interval{iv.lo, val - 1}
			d.intervals[test+1] = interval{val + 1, iv.hi}
			break search
		}
	}
	d.min = d.intervals[0].lo
	d.max = d.intervals[len(d.intervals)-1].hi
	return nil
}

// String renders the domain as "(min, max) [lo..hi, lo..hi]".
func (d *domain) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d, %d) [", d.min, d.max)
	for i, iv := range d.intervals {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d..%d", iv.lo, iv.hi)
	}
	b.WriteString("]")
	return b.String()
}
