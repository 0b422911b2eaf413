package addrmap

// Accessibility bits for a segment. The low byte is reserved for this
// package; the remaining bits are free for callers to assign meaning to.
const (
	// Readable marks a segment as readable.
	Readable uint32 = 0x00000004

	// Writable marks a segment as writable.
	Writable uint32 = 0x00000002

	// Executable marks a segment as executable.
	Executable uint32 = 0x00000001

	// ReservedMask covers the accessibility bits reserved for this package.
	ReservedMask uint32 = 0x000000ff

	// UserDefinedMask covers the accessibility bits available to callers.
	UserDefinedMask uint32 = 0xffffff00
)

// isAccessAllowed reports whether an accessibility mask has every required
// bit set and every prohibited bit clear.
func isAccessAllowed(has, required, prohibited uint32) bool {
	return has&required == required && ^has&prohibited == prohibited
}
