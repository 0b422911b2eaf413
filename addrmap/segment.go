package addrmap

import "github.com/memtopo/memspace/buffer"

// A Segment describes how one mapped interval of the address space is
// backed: which buffer holds its bytes, where in that buffer they start,
// and how they may be accessed.
//
// Segments are value types and copy in O(1); the buffer is shared by
// reference, so duplicating a segment never duplicates storage. The same
// buffer may back segments at several addresses, in the same map or in
// different ones.
type Segment struct {
	// Buffer holds the segment's bytes.
	Buffer buffer.Buffer

	// Offset is the position within Buffer backing the first address of
	// the segment's interval. It is a buffer position, not an address.
	Offset uint64

	// Accessibility is the segment's access mask (Readable, Writable,
	// Executable, and caller-defined bits).
	Accessibility uint32
}

// NewSegment returns a segment backed by the whole of buf with no
// accessibility bits set.
func NewSegment(buf buffer.Buffer) Segment {
	return Segment{Buffer: buf}
}
