package buffer

import "github.com/rs/xid"

// A NullBuffer reports a size but stores nothing. It reserves a run of
// address space without backing storage: reads yield zero bytes and always
// succeed up to the reported size, writes never persist anything.
type NullBuffer struct {
	id   string
	size uint64
}

// NewNullBuffer creates a buffer that acts as if it holds size bytes.
func NewNullBuffer(size uint64) *NullBuffer {
	return &NullBuffer{id: xid.New().String(), size: size}
}

// ID returns the buffer's identifier.
func (b *NullBuffer) ID() string {
	return b.id
}

// Available returns the number of bytes from address to the recorded end.
func (b *NullBuffer) Available(address uint64) uint64 {
	if address >= b.size {
		return 0
	}
	return b.size - address
}

// Resize records the new size.
func (b *NullBuffer) Resize(size uint64) {
	b.size = size
}

// Read fills all of dst with zero bytes. The returned count is still
// bounded by Available(address), so callers that trust the count never
// observe the positions filled beyond it.
func (b *NullBuffer) Read(dst []byte, address uint64) uint64 {
	n := min(uint64(len(dst)), b.Available(address))
	clear(dst)
	return n
}

// Write always returns 0: writes through a null buffer never persist.
func (b *NullBuffer) Write(src []byte, address uint64) uint64 {
	return 0
}

// Data returns nil; a null buffer has no storage.
func (b *NullBuffer) Data() []byte {
	return nil
}
