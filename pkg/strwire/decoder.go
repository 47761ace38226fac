package strwire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/faststring"
	"github.com/rawbytedev/faststring/internal/common"
)

// Decoder parses frames produced by Encoder. Not safe for concurrent use.
type Decoder struct {
	Opts Options
	raw  []byte
	zdec *zstd.Decoder
}

func NewDecoder(opts Options) *Decoder {
	return &Decoder{Opts: opts}
}

// Decode validates frame and returns its items in encoding order.
func (d *Decoder) Decode(frame []byte) ([]faststring.FastString, error) {
	if len(frame) < HeaderSize+CRCSize {
		return nil, ErrShortFrame
	}
	if frame[0] != Magic0 || frame[1] != Magic1 {
		return nil, ErrBadMagic
	}
	if frame[2] != VersionV1 {
		return nil, fmt.Errorf("%w: %d", ErrVersion, frame[2])
	}
	flags := frame[3]
	length := binary.LittleEndian.Uint32(frame[4:])
	if int(length) != len(frame) {
		return nil, fmt.Errorf("%w: header says %d, have %d", ErrLength, length, len(frame))
	}
	end := len(frame) - CRCSize
	want := binary.LittleEndian.Uint32(frame[end:])
	if crc32.ChecksumIEEE(frame[2:end]) != want {
		return nil, ErrChecksum
	}

	body := frame[HeaderSize:end]
	zeroCopy := d.Opts.ZeroCopy
	if flags&FlagZstd != 0 {
		dec, err := d.decoder()
		if err != nil {
			return nil, fmt.Errorf("strwire: zstd decoder: %w", err)
		}
		d.raw, err = dec.DecodeAll(body, d.raw[:0])
		if err != nil {
			return nil, fmt.Errorf("strwire: decompress: %w", err)
		}
		body = d.raw
		// d.raw is reused by the next call
		zeroCopy = false
	}
	return parseBody(body, zeroCopy)
}

// Find decodes frame and reports every occurrence of needle in every item,
// overlapping occurrences included.
func (d *Decoder) Find(frame []byte, needle faststring.FastString) ([]Match, error) {
	items, err := d.Decode(frame)
	if err != nil {
		return nil, err
	}
	var matches []Match
	for i, it := range items {
		for _, off := range it.Positions(needle) {
			matches = append(matches, Match{Item: i, Offset: off})
		}
	}
	return matches, nil
}

func parseBody(body []byte, zeroCopy bool) ([]faststring.FastString, error) {
	count, n := common.ReadVarUint(body)
	if n == 0 {
		return nil, fmt.Errorf("%w: item count", ErrTruncated)
	}
	p := n
	// every item needs at least its one-byte length prefix
	if count > uint64(len(body)-p) {
		return nil, fmt.Errorf("%w: %d items in %d bytes", ErrTruncated, count, len(body)-p)
	}
	items := make([]faststring.FastString, 0, count)
	for i := uint64(0); i < count; i++ {
		size, n := common.ReadVarUint(body[p:])
		if n == 0 {
			return nil, fmt.Errorf("%w: item %d length", ErrTruncated, i)
		}
		p += n
		if size > uint64(len(body)-p) {
			return nil, fmt.Errorf("%w: item %d wants %d bytes, %d left", ErrTruncated, i, size, len(body)-p)
		}
		b := body[p : p+int(size)]
		if zeroCopy {
			items = append(items, faststring.Wrap(b))
		} else {
			items = append(items, faststring.FromBytes(b))
		}
		p += int(size)
	}
	if p != len(body) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrLength, len(body)-p)
	}
	return items, nil
}

func (d *Decoder) decoder() (*zstd.Decoder, error) {
	if d.zdec != nil {
		return d.zdec, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	d.zdec = dec
	return dec, nil
}
