// Package buffer provides the storage backends that hold the bytes of a
// mapped address space.
//
// A Buffer is a linear run of bytes addressed from zero. Buffers are shared
// by reference: several segments, possibly in several address maps, may
// point into the same buffer, and a write through one of them is visible
// through all of them. Reads and writes transfer as many bytes as the
// buffer can satisfy and report the count; a short count is the normal
// signal for reaching the end of the buffer, never an error.
package buffer

// A Buffer is a bounded, byte-addressed storage object.
//
// Read and Write never touch positions at or beyond Available(address)
// past address, and are only ever short at the buffer's own end. A backend
// may refuse all writes by always returning 0.
type Buffer interface {
	// ID returns a stable identifier for this buffer, for diagnostics.
	ID() string

	// Available returns the number of bytes from address to the end of the
	// buffer, or 0 if address is at or past the end.
	Available(address uint64) uint64

	// Resize changes the buffer's size. Backends with fixed storage panic
	// when asked for any size other than the current one.
	Resize(size uint64)

	// Read copies up to len(dst) bytes starting at address into dst and
	// returns the number copied.
	Read(dst []byte, address uint64) uint64

	// Write copies up to len(src) bytes from src into the buffer starting
	// at address and returns the number copied.
	Write(src []byte, address uint64) uint64

	// Data returns the buffer's raw storage when it is contiguous and in
	// memory, otherwise nil. Mutating the returned slice mutates the
	// buffer.
	Data() []byte
}
