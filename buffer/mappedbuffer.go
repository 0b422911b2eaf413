package buffer

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"golang.org/x/sys/unix"
)

// MapMode selects how a MappedBuffer maps its file.
type MapMode int

const (
	// ReadOnly maps the file for shared read-only access.
	ReadOnly MapMode = iota

	// ReadWriteShared maps the file for read/write access; writes are
	// reflected in the underlying file.
	ReadWriteShared

	// ReadWritePrivate maps the file copy-on-write; writes are visible
	// through the buffer but never reach the underlying file.
	ReadWritePrivate
)

// A MappedBuffer is backed by a memory-mapped region of a file. The region
// is fixed at construction: the buffer cannot be resized, and it must be
// closed to release the mapping.
type MappedBuffer struct {
	id       string
	data     []byte // the caller-visible window
	mapped   []byte // the page-aligned mapping the window points into
	writable bool
	shared   bool
}

// NewMappedBuffer maps length bytes of the named file starting at offset.
// A length of 0 maps from offset to the end of the file. The offset does
// not need to be page aligned; the mapping is extended backwards to the
// preceding page boundary internally.
func NewMappedBuffer(path string, mode MapMode, offset int64, length uint64) (*MappedBuffer, error) {
	if offset < 0 {
		return nil, fmt.Errorf("mapping %s: negative offset %d", path, offset)
	}

	flag := os.O_RDONLY
	if mode == ReadWriteShared {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	defer f.Close()

	if length == 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", path, err)
		}
		if info.Size() < offset {
			return nil, fmt.Errorf("mapping %s: offset %d beyond end of file", path, offset)
		}
		length = uint64(info.Size() - offset)
	}

	prot := unix.PROT_READ
	if mode != ReadOnly {
		prot |= unix.PROT_WRITE
	}
	flags := unix.MAP_SHARED
	if mode == ReadWritePrivate {
		flags = unix.MAP_PRIVATE
	}

	// The mapped offset must be page aligned, the requested one need not
	// be: map from the preceding page boundary and expose a window.
	pageSize := int64(os.Getpagesize())
	outer := offset / pageSize * pageSize
	inner := uint64(offset - outer)

	mapped, err := unix.Mmap(int(f.Fd()), outer, int(inner+length), prot, flags)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: mmap: %w", path, err)
	}

	return &MappedBuffer{
		id:       xid.New().String(),
		data:     mapped[inner : inner+length],
		mapped:   mapped,
		writable: mode != ReadOnly,
		shared:   mode == ReadWriteShared,
	}, nil
}

// ID returns the buffer's identifier.
func (b *MappedBuffer) ID() string {
	return b.id
}

// Available returns the number of bytes from address to the end of the
// mapped region.
func (b *MappedBuffer) Available(address uint64) uint64 {
	if address >= uint64(len(b.data)) {
		return 0
	}
	return uint64(len(b.data)) - address
}

// Resize panics unless size equals the current size; a mapped region cannot
// be resized after construction.
func (b *MappedBuffer) Resize(size uint64) {
	if size != uint64(len(b.data)) {
		panic("buffer: cannot resize a mapped buffer")
	}
}

// Read copies up to len(dst) bytes starting at address into dst.
func (b *MappedBuffer) Read(dst []byte, address uint64) uint64 {
	n := min(uint64(len(dst)), b.Available(address))
	copy(dst[:n], b.data[address:])
	return n
}

// Write copies up to len(src) bytes from src into the mapped region at
// address. A read-only mapping refuses all writes and returns 0.
func (b *MappedBuffer) Write(src []byte, address uint64) uint64 {
	if !b.writable {
		return 0
	}
	n := min(uint64(len(src)), b.Available(address))
	copy(b.data[address:], src[:n])
	return n
}

// Data returns the mapped window.
func (b *MappedBuffer) Data() []byte {
	return b.data
}

// Sync flushes writes to the underlying file. Only meaningful for
// ReadWriteShared mappings; others return nil without doing anything.
func (b *MappedBuffer) Sync() error {
	if !b.shared || !b.writable || b.mapped == nil {
		return nil
	}
	if err := unix.Msync(b.mapped, unix.MS_SYNC); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	return nil
}

// Close syncs a shared writable mapping and unmaps the region. The buffer
// must not be used after Close.
func (b *MappedBuffer) Close() error {
	if b.mapped == nil {
		return nil
	}
	if err := b.Sync(); err != nil {
		return err
	}
	if err := unix.Munmap(b.mapped); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	b.mapped = nil
	b.data = nil
	return nil
}
