package stream

import "github.com/blockberries/sfstream/internal/wire"

// ByteOrder selects how multi-byte values are laid out in the stream.
type ByteOrder = wire.Order

const (
	// HostEndian is the native byte order of the executing machine.
	HostEndian = wire.Host

	// BigEndian stores the most significant byte first (network order).
	BigEndian = wire.Big

	// LittleEndian stores the least significant byte first.
	LittleEndian = wire.Little
)

// ParseByteOrder converts "host", "big" or "little" (and common aliases)
// into a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	return wire.ParseOrder(s)
}

// All is the amount sentinel meaning "every remaining byte".
const All = -1

// Limits defines resource limits for a stream.
type Limits struct {
	// MaxCapacity is the largest backing buffer the stream may allocate.
	// Writes that would need more storage are truncated.
	// A value of 0 means no limit.
	MaxCapacity int

	// MaxFrameSize is the largest payload accepted by ReadFrame and WriteFrame.
	// A value of 0 means no limit.
	MaxFrameSize int
}

// DefaultLimits are the default resource limits.
var DefaultLimits = Limits{
	MaxCapacity:  1 << 30, // 1 GB
	MaxFrameSize: 64 * 1024 * 1024,
}

// SecureLimits are conservative limits for streams fed by untrusted peers.
var SecureLimits = Limits{
	MaxCapacity:  16 * 1024 * 1024,
	MaxFrameSize: 1 * 1024 * 1024,
}

// NoLimits disables all resource limits.
// Use with caution - only for trusted input.
var NoLimits = Limits{}

// Options configures stream behavior.
type Options struct {
	// Limits specifies resource limits.
	Limits Limits

	// MinGrowth is the smallest capacity allocated when an empty stream grows.
	MinGrowth int
}

// DefaultOptions are the default stream options.
var DefaultOptions = Options{
	Limits:    DefaultLimits,
	MinGrowth: 64,
}

// SecureOptions are conservative options for untrusted input.
var SecureOptions = Options{
	Limits:    SecureLimits,
	MinGrowth: 64,
}

// Version information, set by ldflags at build time.
var (
	// Version is the semantic version of the library.
	Version = "dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// VersionInfo returns a formatted version string.
func VersionInfo() string {
	return Version + " (" + GitCommit + ", " + BuildDate + ")"
}

// Size constants for fixed-width values.
const (
	ByteSize    = wire.Fixed8Size
	Uint16Size  = wire.Fixed16Size
	Uint32Size  = wire.Fixed32Size
	Uint64Size  = wire.Fixed64Size
	Float32Size = wire.Float32Size
	Float64Size = wire.Float64Size

	// MaxVarintLen64 is the maximum encoded size of a varint64.
	MaxVarintLen64 = wire.MaxVarintLen64
)
