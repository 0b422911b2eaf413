// Package addrmap maps a sparse 64-bit address space onto shared storage
// buffers.
//
// An AddressMap is an ordered collection of disjoint address intervals,
// each backed by a segment: a buffer, an offset into that buffer, and an
// accessibility mask. The map stays canonical at all times — adjacent
// intervals that continue the same buffer region with the same
// accessibility are coalesced into one entry, and inserting over part of an
// existing entry divides it at the boundaries.
//
// Reads and writes walk the mapped entries, check access permissions, and
// delegate the byte transfer to each entry's buffer. They copy as much as
// the mapping allows and report the extent actually transferred; an extent
// shorter than requested is the normal signal for reaching an unmapped gap,
// a permission boundary, or the end of a backing buffer, not an error.
//
//	data1 := []byte("---------------")
//	data2 := []byte("##########")
//	buf1 := buffer.NewStaticBuffer(data1)
//	buf2 := buffer.NewStaticBuffer(data2[:5])
//
//	m := addrmap.New()
//	m.Insert(interval.BaseSize(1000, 15), addrmap.NewSegment(buf1))
//	m.Insert(interval.BaseSize(1005, 5), addrmap.NewSegment(buf2))
//
//	// The write crosses both buffers; buf2 occludes the middle of buf1.
//	accessed := m.Write([]byte("bcdefghijklmn"), interval.BaseSize(1001, 13), 0, 0)
//	// accessed.Size() == 13
//	// data1 == "-bcde-----klmn-", data2 == "fghij#####"
//
//	// Remapping the middle back to buf1 recombines the three pieces into
//	// one entry, since they are consecutive regions of a single buffer.
//	m.Insert(interval.BaseSize(1005, 5), addrmap.Segment{Buffer: buf1, Offset: 5})
//	// m.NSegments() == 1
package addrmap

import (
	"github.com/memtopo/memspace/interval"
	"github.com/memtopo/memspace/rangemap"
)

// An AddressMap is an ordered mapping from disjoint address intervals to
// segments, with permission-aware read and write over the mapped storage.
//
// An AddressMap is not safe for concurrent mutation. Concurrent reads are
// safe while no mutation is in flight, provided the backing buffers' reads
// are reentrant.
type AddressMap struct {
	entries *rangemap.Map[Segment]
}

// New creates an empty address map.
func New() *AddressMap {
	return &AddressMap{
		entries: rangemap.New[Segment](segmentMergePolicy{}),
	}
}

// Copy returns a map with the same intervals mapped to the same buffers.
// The topology is duplicated, the buffers are not: mutating a buffer
// through one map is visible through the other.
func (m *AddressMap) Copy() *AddressMap {
	return &AddressMap{entries: m.entries.Copy()}
}

// NSegments returns the number of entries in the map.
func (m *AddressMap) NSegments() uint64 {
	return uint64(m.entries.Len())
}

// Insert maps iv to seg. Overlapped parts of existing entries are replaced;
// partially overlapped entries are divided at the boundary first. The new
// entry coalesces with each neighbor that continues the same buffer region
// with the same accessibility.
func (m *AddressMap) Insert(iv interval.Interval, seg Segment) {
	m.entries.Insert(iv, seg)
}

// Erase unmaps iv, dividing partially covered entries at the boundary.
func (m *AddressMap) Erase(iv interval.Interval) {
	m.entries.Erase(iv)
}

// Available returns the maximal interval beginning at start whose addresses
// are mapped, contiguous, and allowed by the access masks. The result is
// empty when start itself is unmapped or disallowed.
func (m *AddressMap) Available(start uint64, requiredAccess, prohibitedAccess uint32) interval.Interval {
	var ext interval.Interval

	m.entries.AscendFrom(start, func(n rangemap.Node[Segment]) bool {
		if !isAccessAllowed(n.Value.Accessibility, requiredAccess, prohibitedAccess) {
			return false
		}
		if ext.IsEmpty() {
			if !n.Interval.Contains(start) {
				return false
			}
		} else if !ext.IsLeftAdjacent(n.Interval) {
			return false
		}
		ext = interval.New(start, n.Interval.Upper())
		return true
	})

	return ext
}

// Read copies values from the mapped storage for the address range where
// into dst, which must hold at least where.Size() bytes. The read stops at
// the end of the range, the first unmapped gap, the first segment
// disallowed by the access masks, or the first short read from a backing
// buffer. It returns the interval of addresses actually copied, which is
// empty when where.Lower() itself is unmapped or disallowed.
func (m *AddressMap) Read(dst []byte, where interval.Interval,
	requiredAccess, prohibitedAccess uint32) interval.Interval {
	var ext interval.Interval
	if where.IsEmpty() {
		return ext
	}

	buf := dst
	m.entries.AscendFrom(where.Lower(), func(n rangemap.Node[Segment]) bool {
		if !isAccessAllowed(n.Value.Accessibility, requiredAccess, prohibitedAccess) {
			return false
		}
		part := where.Intersection(n.Interval)
		if part.IsEmpty() {
			return false
		}
		if ext.IsEmpty() {
			if part.Lower() != where.Lower() {
				return false
			}
		} else if !ext.IsLeftAdjacent(part) {
			return false
		}

		offset := part.Lower() - n.Interval.Lower() + n.Value.Offset
		want := part.Size()
		nread := n.Value.Buffer.Read(buf[:want], offset)
		if nread != want { // short read from the buffer
			ext = ext.Hull(interval.BaseSize(part.Lower(), nread))
			return false
		}

		buf = buf[want:]
		ext = ext.Hull(part)
		return true
	})

	return ext
}

// ReadAt reads up to len(dst) bytes starting at start and returns the
// number copied. It is the count projection of Read.
func (m *AddressMap) ReadAt(dst []byte, start uint64,
	requiredAccess, prohibitedAccess uint32) uint64 {
	where := interval.BaseSize(start, uint64(len(dst)))
	return m.Read(dst, where, requiredAccess, prohibitedAccess).Size()
}

// Write copies values from src into the mapped storage for the address
// range where; src must hold at least where.Size() bytes. The write stops
// at the end of the range, the first unmapped gap, the first segment
// disallowed by the access masks, or the first short write to a backing
// buffer. It returns the interval of addresses actually written, which is
// empty when where.Lower() itself is unmapped or disallowed.
func (m *AddressMap) Write(src []byte, where interval.Interval,
	requiredAccess, prohibitedAccess uint32) interval.Interval {
	var ext interval.Interval
	if where.IsEmpty() {
		return ext
	}

	buf := src
	m.entries.AscendFrom(where.Lower(), func(n rangemap.Node[Segment]) bool {
		if !isAccessAllowed(n.Value.Accessibility, requiredAccess, prohibitedAccess) {
			return false
		}
		part := where.Intersection(n.Interval)
		if part.IsEmpty() {
			return false
		}
		if ext.IsEmpty() {
			if part.Lower() != where.Lower() {
				return false
			}
		} else if !ext.IsLeftAdjacent(part) {
			return false
		}

		offset := part.Lower() - n.Interval.Lower() + n.Value.Offset
		want := part.Size()
		nwritten := n.Value.Buffer.Write(buf[:want], offset)
		if nwritten != want { // short write to the buffer
			ext = ext.Hull(interval.BaseSize(part.Lower(), nwritten))
			return false
		}

		buf = buf[want:]
		ext = ext.Hull(part)
		return true
	})

	return ext
}

// WriteAt writes up to len(src) bytes starting at start and returns the
// number copied. It is the count projection of Write.
func (m *AddressMap) WriteAt(src []byte, start uint64,
	requiredAccess, prohibitedAccess uint32) uint64 {
	where := interval.BaseSize(start, uint64(len(src)))
	return m.Write(src, where, requiredAccess, prohibitedAccess).Size()
}

// AscendSegments visits every entry in ascending address order until fn
// returns false.
func (m *AddressMap) AscendSegments(fn func(iv interval.Interval, seg Segment) bool) {
	m.entries.Ascend(func(n rangemap.Node[Segment]) bool {
		return fn(n.Interval, n.Value)
	})
}

// Intervals returns the mapped intervals in ascending order.
func (m *AddressMap) Intervals() []interval.Interval {
	ivs := make([]interval.Interval, 0, m.entries.Len())
	m.entries.Ascend(func(n rangemap.Node[Segment]) bool {
		ivs = append(ivs, n.Interval)
		return true
	})
	return ivs
}

// Segments returns the mapped segments in ascending address order.
func (m *AddressMap) Segments() []Segment {
	segs := make([]Segment, 0, m.entries.Len())
	m.entries.Ascend(func(n rangemap.Node[Segment]) bool {
		segs = append(segs, n.Value)
		return true
	})
	return segs
}
