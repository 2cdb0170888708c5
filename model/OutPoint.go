package model

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bsv-blockchain/go-txwire/errors"
)

// OutPointLen is the serialized length of an outpoint: a 32 byte txid
// followed by a 4 byte little-endian output index. There is no length prefix.
const OutPointLen = TxIDLen + 4

// OutPoint references a specific output of a previous transaction. The
// all-ones index used by coinbase inputs is not special-cased; it serializes
// like any other value.
type OutPoint struct {
	TxID TxID   `json:"txid"`
	Vout uint32 `json:"vout"`
}

func NewOutPoint(txid TxID, vout uint32) *OutPoint {
	return &OutPoint{
		TxID: txid,
		Vout: vout,
	}
}

func (o *OutPoint) Bytes() []byte {
	b := make([]byte, 0, OutPointLen)
	b = append(b, o.TxID[:]...)
	b = binary.LittleEndian.AppendUint32(b, o.Vout)

	return b
}

// NewOutPointFromBytes decodes an outpoint from the front of b. It consumes
// exactly OutPointLen bytes and only fails when fewer are available.
func NewOutPointFromBytes(b []byte) (*OutPoint, int, error) {
	if len(b) < OutPointLen {
		return nil, 0, errors.NewInsufficientBytesError("outpoint needs %d bytes, got %d", OutPointLen, len(b))
	}

	o := &OutPoint{
		Vout: binary.LittleEndian.Uint32(b[TxIDLen:OutPointLen]),
	}
	copy(o.TxID[:], b[:TxIDLen])

	return o, OutPointLen, nil
}

// NewOutPointFromReader reads an outpoint from r.
func NewOutPointFromReader(r io.Reader) (*OutPoint, error) {
	var buf [OutPointLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.NewInsufficientBytesError("outpoint needs %d bytes", OutPointLen, err)
	}

	o, _, err := NewOutPointFromBytes(buf[:])

	return o, err
}

func (o *OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxID.String(), o.Vout)
}
