package strwire

import "errors"

// Frame layout (little endian):
//
//	magic   [2]byte 0xFA 0x57
//	version byte
//	flags   byte
//	length  uint32  whole frame, CRC included
//	body    varint count, then varint length + raw bytes per item
//	crc     uint32  CRC32-IEEE over frame[2:len-4]
const (
	Magic0     = 0xFA
	Magic1     = 0x57
	VersionV1  = 1
	HeaderSize = 8
	CRCSize    = 4
)

const (
	FlagZstd byte = 1 << iota
)

var (
	ErrShortFrame = errors.New("frame too short")
	ErrBadMagic   = errors.New("bad frame magic")
	ErrVersion    = errors.New("unsupported frame version")
	ErrLength     = errors.New("frame length mismatch")
	ErrChecksum   = errors.New("crc mismatch")
	ErrTruncated  = errors.New("frame body truncated")
)

// Options controls encoding and decoding.
type Options struct {
	// Compress zstd-compresses the body on encode.
	Compress bool
	// ZeroCopy makes decoded items view the frame instead of copying.
	// Ignored for compressed frames. Caller must keep the frame alive and
	// unmodified while the items are in use.
	ZeroCopy bool
}

// Match locates one occurrence of a needle inside a decoded frame.
type Match struct {
	Item   int
	Offset int
}
