package buffer

import "github.com/rs/xid"

const sparsePageSize = 4096

// A SparseBuffer is in-process storage that allocates lazily. The buffer is
// managed in fixed-size pages; a page is allocated the first time a write
// touches it, and pages never written read back as zero bytes. This keeps
// large, mostly-empty buffers cheap.
type SparseBuffer struct {
	id       string
	capacity uint64
	pages    map[uint64][]byte
}

// NewSparseBuffer creates an empty sparse buffer with the given capacity.
func NewSparseBuffer(capacity uint64) *SparseBuffer {
	return &SparseBuffer{
		id:       xid.New().String(),
		capacity: capacity,
		pages:    make(map[uint64][]byte),
	}
}

// ID returns the buffer's identifier.
func (b *SparseBuffer) ID() string {
	return b.id
}

// Available returns the number of bytes from address to the capacity.
func (b *SparseBuffer) Available(address uint64) uint64 {
	if address >= b.capacity {
		return 0
	}
	return b.capacity - address
}

// Resize changes the capacity. Pages entirely beyond the new capacity are
// released; a page straddling the boundary is kept, but the bytes past the
// capacity become unreachable.
func (b *SparseBuffer) Resize(size uint64) {
	b.capacity = size
	for base := range b.pages {
		if base >= size {
			delete(b.pages, base)
		}
	}
}

func (b *SparseBuffer) parseAddress(address uint64) (base, inPage uint64) {
	inPage = address % sparsePageSize
	base = address - inPage
	return base, inPage
}

// Read copies up to len(dst) bytes starting at address into dst. Pages that
// were never written contribute zero bytes.
func (b *SparseBuffer) Read(dst []byte, address uint64) uint64 {
	total := min(uint64(len(dst)), b.Available(address))

	done := uint64(0)
	for done < total {
		base, inPage := b.parseAddress(address + done)
		n := min(total-done, sparsePageSize-inPage)

		if page, ok := b.pages[base]; ok {
			copy(dst[done:done+n], page[inPage:inPage+n])
		} else {
			clear(dst[done : done+n])
		}
		done += n
	}

	return total
}

// Write copies up to len(src) bytes from src into the buffer at address,
// allocating pages as they are first touched.
func (b *SparseBuffer) Write(src []byte, address uint64) uint64 {
	total := min(uint64(len(src)), b.Available(address))

	done := uint64(0)
	for done < total {
		base, inPage := b.parseAddress(address + done)
		n := min(total-done, sparsePageSize-inPage)

		page, ok := b.pages[base]
		if !ok {
			page = make([]byte, sparsePageSize)
			b.pages[base] = page
		}
		copy(page[inPage:inPage+n], src[done:done+n])
		done += n
	}

	return total
}

// Data returns nil; sparse storage is not contiguous.
func (b *SparseBuffer) Data() []byte {
	return nil
}
