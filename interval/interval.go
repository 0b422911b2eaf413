// Package interval provides closed intervals of 64-bit addresses and the
// arithmetic needed to maintain ordered interval maps over them.
package interval

import "math"

// An Interval is a closed range of addresses [Lower, Upper]. The zero value
// is the empty interval. Because the bounds are inclusive, an interval can
// cover the whole address space, including the maximum address.
type Interval struct {
	lower, upper uint64
	nonEmpty     bool
}

// New returns the interval [lo, hi]. It panics if lo > hi.
func New(lo, hi uint64) Interval {
	if lo > hi {
		panic("interval: lower bound greater than upper bound")
	}
	return Interval{lower: lo, upper: hi, nonEmpty: true}
}

// Single returns the interval containing only addr.
func Single(addr uint64) Interval {
	return Interval{lower: addr, upper: addr, nonEmpty: true}
}

// BaseSize returns the interval starting at base and containing size
// addresses. A zero size yields the empty interval. An interval that would
// extend past the maximum address is clipped to end there.
func BaseSize(base, size uint64) Interval {
	if size == 0 {
		return Interval{}
	}
	if size-1 > math.MaxUint64-base {
		return New(base, math.MaxUint64)
	}
	return New(base, base+size-1)
}

// IsEmpty reports whether the interval contains no addresses.
func (iv Interval) IsEmpty() bool {
	return !iv.nonEmpty
}

// Lower returns the inclusive lower bound. Meaningless for empty intervals.
func (iv Interval) Lower() uint64 {
	return iv.lower
}

// Upper returns the inclusive upper bound. Meaningless for empty intervals.
func (iv Interval) Upper() uint64 {
	return iv.upper
}

// Size returns the number of addresses in the interval. The count wraps to
// zero for an interval covering the entire address space.
func (iv Interval) Size() uint64 {
	if !iv.nonEmpty {
		return 0
	}
	return iv.upper - iv.lower + 1
}

// Contains reports whether addr falls within the interval.
func (iv Interval) Contains(addr uint64) bool {
	return iv.nonEmpty && iv.lower <= addr && addr <= iv.upper
}

// ContainsInterval reports whether other lies entirely within the interval.
// An empty interval is contained in everything.
func (iv Interval) ContainsInterval(other Interval) bool {
	if other.IsEmpty() {
		return true
	}
	return iv.nonEmpty && iv.lower <= other.lower && other.upper <= iv.upper
}

// Overlaps reports whether the two intervals share at least one address.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.nonEmpty && other.nonEmpty &&
		iv.lower <= other.upper && other.lower <= iv.upper
}

// Intersection returns the interval of addresses present in both intervals,
// which is empty when they do not overlap.
func (iv Interval) Intersection(other Interval) Interval {
	if !iv.Overlaps(other) {
		return Interval{}
	}
	return New(max(iv.lower, other.lower), min(iv.upper, other.upper))
}

// Hull returns the smallest interval containing both intervals. The hull
// with an empty interval is the other interval.
func (iv Interval) Hull(other Interval) Interval {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	return New(min(iv.lower, other.lower), max(iv.upper, other.upper))
}

// IsLeftAdjacent reports whether the interval ends immediately before other
// begins. An interval ending at the maximum address is never left-adjacent
// to anything, so the test cannot wrap.
func (iv Interval) IsLeftAdjacent(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() || iv.upper == math.MaxUint64 {
		return false
	}
	return iv.upper+1 == other.lower
}

// IsAdjacent reports whether the two intervals touch without overlapping,
// in either order.
func (iv Interval) IsAdjacent(other Interval) bool {
	return iv.IsLeftAdjacent(other) || other.IsLeftAdjacent(iv)
}
