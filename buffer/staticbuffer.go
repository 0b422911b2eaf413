package buffer

import "github.com/rs/xid"

// A StaticBuffer wraps caller-owned storage. The buffer does not own the
// slice: the caller continues to see every write made through the buffer,
// and the buffer sees every mutation the caller makes.
type StaticBuffer struct {
	id   string
	data []byte
}

// NewStaticBuffer creates a fixed-size buffer over data.
func NewStaticBuffer(data []byte) *StaticBuffer {
	return &StaticBuffer{id: xid.New().String(), data: data}
}

// ID returns the buffer's identifier.
func (b *StaticBuffer) ID() string {
	return b.id
}

// Available returns the number of bytes from address to the end of the
// wrapped slice.
func (b *StaticBuffer) Available(address uint64) uint64 {
	if address >= uint64(len(b.data)) {
		return 0
	}
	return uint64(len(b.data)) - address
}

// Resize panics unless size equals the current size; static storage cannot
// grow or shrink.
func (b *StaticBuffer) Resize(size uint64) {
	if size != uint64(len(b.data)) {
		panic("buffer: cannot resize a static buffer")
	}
}

// Read copies up to len(dst) bytes starting at address into dst.
func (b *StaticBuffer) Read(dst []byte, address uint64) uint64 {
	n := min(uint64(len(dst)), b.Available(address))
	copy(dst[:n], b.data[address:])
	return n
}

// Write copies up to len(src) bytes from src into the slice at address.
func (b *StaticBuffer) Write(src []byte, address uint64) uint64 {
	n := min(uint64(len(src)), b.Available(address))
	copy(b.data[address:], src[:n])
	return n
}

// Data returns the wrapped slice.
func (b *StaticBuffer) Data() []byte {
	return b.data
}
