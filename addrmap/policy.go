package addrmap

import (
	"github.com/memtopo/memspace/interval"
)

// segmentMergePolicy keeps segment runs canonical: adjacent map entries
// coalesce exactly when they are one logical region of one buffer, and an
// entry divided at an address yields a right half whose buffer offset is
// advanced accordingly.
type segmentMergePolicy struct{}

// Merge reports whether two adjacent entries continue the same buffer
// region with the same accessibility.
func (segmentMergePolicy) Merge(leftIv interval.Interval, left Segment,
	rightIv interval.Interval, right Segment) bool {
	if leftIv.IsEmpty() || rightIv.IsEmpty() {
		panic("addrmap: merge with an empty interval")
	}
	if !leftIv.IsLeftAdjacent(rightIv) {
		panic("addrmap: merge with non-adjacent intervals")
	}

	return left.Accessibility == right.Accessibility &&
		left.Buffer == right.Buffer &&
		left.Offset+leftIv.Size() == right.Offset
}

// Split returns the segment for the right half of an entry divided at
// splitPoint. The left half keeps the original segment; its offset is
// already correct.
func (segmentMergePolicy) Split(iv interval.Interval, seg Segment, splitPoint uint64) Segment {
	if iv.IsEmpty() {
		panic("addrmap: split with an empty interval")
	}
	if !iv.Contains(splitPoint) {
		panic("addrmap: split point outside the interval")
	}

	right := seg
	right.Offset = seg.Offset + (splitPoint - iv.Lower())
	return right
}

// Truncate validates shrinking an entry from the right. The kept left
// portion's offset is unchanged, so there is nothing to do beyond the
// precondition checks.
func (segmentMergePolicy) Truncate(iv interval.Interval, _ Segment, splitPoint uint64) {
	if iv.IsEmpty() {
		panic("addrmap: truncate with an empty interval")
	}
	if !iv.Contains(splitPoint) {
		panic("addrmap: truncate point outside the interval")
	}
}
