// Package model implements the Bitcoin transaction wire format for the
// inputs-only transaction layout: CompactSize varints, outpoints, scripts,
// transaction inputs and whole transactions.
//
// Every decoder consumes a prefix of the supplied buffer and reports how many
// bytes it used, so the layers compose by advancing an offset. Decoding either
// returns a fully populated value or fails; no partial values are exposed.
package model

import (
	"encoding/binary"
	"io"

	"github.com/bsv-blockchain/go-txwire/errors"
)

// CompactSize is Bitcoin's variable-length unsigned integer. The encoded form
// is a discriminator byte followed by 0, 2, 4 or 8 little-endian value bytes.
type CompactSize uint64

func NewCompactSize(v uint64) CompactSize {
	return CompactSize(v)
}

// Length returns the number of bytes Bytes() will produce: 1, 3, 5 or 9.
func (c CompactSize) Length() int {
	switch {
	case c <= 0xfc:
		return 1
	case c <= 0xffff:
		return 3
	case c <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// Bytes returns the shortest encoding for the value. A longer form is never
// produced, even though the decoder accepts one.
func (c CompactSize) Bytes() []byte {
	b := make([]byte, 0, c.Length())

	switch {
	case c <= 0xfc:
		b = append(b, byte(c))
	case c <= 0xffff:
		b = append(b, 0xfd)
		b = binary.LittleEndian.AppendUint16(b, uint16(c))
	case c <= 0xffffffff:
		b = append(b, 0xfe)
		b = binary.LittleEndian.AppendUint32(b, uint32(c))
	default:
		b = append(b, 0xff)
		b = binary.LittleEndian.AppendUint64(b, uint64(c))
	}

	return b
}

// NewCompactSizeFromBytes decodes one CompactSize from the front of b and
// returns the value and the number of bytes consumed. All 256 discriminator
// values are legal, so the only failure mode is a truncated buffer.
func NewCompactSizeFromBytes(b []byte) (CompactSize, int, error) {
	if len(b) == 0 {
		return 0, 0, errors.NewInsufficientBytesError("compact size needs at least 1 byte")
	}

	switch b[0] {
	case 0xfd:
		if len(b) < 3 {
			return 0, 0, errors.NewInsufficientBytesError("compact size prefix 0xfd needs 2 more bytes, got %d", len(b)-1)
		}

		return CompactSize(binary.LittleEndian.Uint16(b[1:3])), 3, nil
	case 0xfe:
		if len(b) < 5 {
			return 0, 0, errors.NewInsufficientBytesError("compact size prefix 0xfe needs 4 more bytes, got %d", len(b)-1)
		}

		return CompactSize(binary.LittleEndian.Uint32(b[1:5])), 5, nil
	case 0xff:
		if len(b) < 9 {
			return 0, 0, errors.NewInsufficientBytesError("compact size prefix 0xff needs 8 more bytes, got %d", len(b)-1)
		}

		return CompactSize(binary.LittleEndian.Uint64(b[1:9])), 9, nil
	default:
		return CompactSize(b[0]), 1, nil
	}
}

// NewCompactSizeFromReader reads one CompactSize from r.
func NewCompactSizeFromReader(r io.Reader) (CompactSize, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, errors.NewInsufficientBytesError("compact size needs at least 1 byte", err)
	}

	var width int

	switch prefix[0] {
	case 0xfd:
		width = 2
	case 0xfe:
		width = 4
	case 0xff:
		width = 8
	default:
		return CompactSize(prefix[0]), nil
	}

	var value [8]byte
	if _, err := io.ReadFull(r, value[:width]); err != nil {
		return 0, errors.NewInsufficientBytesError("compact size prefix 0x%02x needs %d more bytes", prefix[0], width, err)
	}

	return CompactSize(binary.LittleEndian.Uint64(value[:])), nil
}
