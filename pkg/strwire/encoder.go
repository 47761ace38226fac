package strwire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/faststring"
	"github.com/rawbytedev/faststring/internal/common"
)

// Encoder builds frames. It keeps a scratch body buffer between calls and
// is not safe for concurrent use.
type Encoder struct {
	Opts Options
	body []byte
	zenc *zstd.Encoder
}

func NewEncoder(opts Options) *Encoder {
	return &Encoder{Opts: opts}
}

// Encode serializes items into a new frame.
func (e *Encoder) Encode(items []faststring.FastString) ([]byte, error) {
	e.body = e.body[:0]
	e.body = common.WriteVarUintTo(e.body, uint64(len(items)))
	for _, it := range items {
		e.body = common.WriteVarUintTo(e.body, uint64(it.Len()))
		e.body = it.AppendTo(e.body)
	}

	var flags byte
	body := e.body
	if e.Opts.Compress {
		enc, err := e.encoder()
		if err != nil {
			return nil, fmt.Errorf("strwire: zstd encoder: %w", err)
		}
		body = enc.EncodeAll(e.body, nil)
		flags |= FlagZstd
	}

	total := HeaderSize + len(body) + CRCSize
	out := make([]byte, HeaderSize, total)
	out[0] = Magic0
	out[1] = Magic1
	out[2] = VersionV1
	out[3] = flags
	binary.LittleEndian.PutUint32(out[4:], uint32(total))
	out = append(out, body...)

	// crc over everything after the magic
	crc := crc32.ChecksumIEEE(out[2:])
	out = binary.LittleEndian.AppendUint32(out, crc)
	return out, nil
}

func (e *Encoder) encoder() (*zstd.Encoder, error) {
	if e.zenc != nil {
		return e.zenc, nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	e.zenc = enc
	return enc, nil
}
