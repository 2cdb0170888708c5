package model

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/bsv-blockchain/go-txwire/errors"
)

// Tx is an inputs-only transaction: version, the spending inputs in order,
// and the lock time. Outputs, witness data and the segwit marker bytes are
// not part of this layout. The input count is always derived from the Inputs
// slice, never stored separately.
type Tx struct {
	Version  uint32     `json:"version"`
	Inputs   []*TxInput `json:"inputs"`
	LockTime uint32     `json:"lockTime"`
}

func NewTx(version uint32, inputs []*TxInput, lockTime uint32) *Tx {
	return &Tx{
		Version:  version,
		Inputs:   inputs,
		LockTime: lockTime,
	}
}

func (tx *Tx) InputCount() int {
	return len(tx.Inputs)
}

// Size returns the serialized length without encoding.
func (tx *Tx) Size() int {
	size := 4 + NewCompactSize(uint64(len(tx.Inputs))).Length() + 4
	for _, in := range tx.Inputs {
		size += in.Size()
	}

	return size
}

// Bytes returns the wire form: version, CompactSize input count, each input
// in order, lock time.
func (tx *Tx) Bytes() []byte {
	b := make([]byte, 0, tx.Size())
	b = binary.LittleEndian.AppendUint32(b, tx.Version)
	b = append(b, NewCompactSize(uint64(len(tx.Inputs))).Bytes()...)

	for _, in := range tx.Inputs {
		b = append(b, in.Bytes()...)
	}

	b = binary.LittleEndian.AppendUint32(b, tx.LockTime)

	return b
}

// NewTxFromStream decodes a transaction from the front of b and returns it
// with the total number of bytes consumed. Trailing bytes are left for the
// caller. A count field that promises more inputs than the buffer holds
// surfaces as the input decoder's own insufficient bytes failure.
func NewTxFromStream(b []byte) (*Tx, int, error) {
	if len(b) < 4 {
		return nil, 0, errors.NewInsufficientBytesError("tx version needs 4 bytes, got %d", len(b))
	}

	tx := &Tx{
		Version: binary.LittleEndian.Uint32(b[:4]),
	}

	inputCount, countLen, err := NewCompactSizeFromBytes(b[4:])
	if err != nil {
		return nil, 0, err
	}

	offset := 4 + countLen

	for i := uint64(0); i < uint64(inputCount); i++ {
		input, consumed, err := NewTxInputFromBytes(b[offset:])
		if err != nil {
			return nil, 0, err
		}

		tx.Inputs = append(tx.Inputs, input)
		offset += consumed
	}

	if len(b) < offset+4 {
		return nil, 0, errors.NewInsufficientBytesError("tx lock time needs 4 bytes, got %d", len(b)-offset)
	}

	tx.LockTime = binary.LittleEndian.Uint32(b[offset : offset+4])

	return tx, offset + 4, nil
}

// NewTxFromBytes decodes a transaction from b, ignoring any trailing bytes.
func NewTxFromBytes(b []byte) (*Tx, error) {
	tx, _, err := NewTxFromStream(b)

	return tx, err
}

// NewTxFromString decodes a transaction from its hex form.
func NewTxFromString(str string) (*Tx, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.NewInvalidFormatError("tx is not valid hex", err)
	}

	return NewTxFromBytes(b)
}

// NewTxFromReader reads one transaction from r. Short reads surface as
// insufficient bytes failures.
func NewTxFromReader(r io.Reader) (*Tx, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.NewInsufficientBytesError("tx version needs 4 bytes", err)
	}

	tx := &Tx{
		Version: binary.LittleEndian.Uint32(buf[:]),
	}

	inputCount, err := NewCompactSizeFromReader(r)
	if err != nil {
		return nil, err
	}

	for i := uint64(0); i < uint64(inputCount); i++ {
		input, err := NewTxInputFromReader(r)
		if err != nil {
			return nil, err
		}

		tx.Inputs = append(tx.Inputs, input)
	}

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.NewInsufficientBytesError("tx lock time needs 4 bytes", err)
	}

	tx.LockTime = binary.LittleEndian.Uint32(buf[:])

	return tx, nil
}

// String renders a multi-line human-readable form of the transaction. It is
// diagnostic output only and is not used for round-tripping.
func (tx *Tx) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Version: %d\n", tx.Version)

	for i, in := range tx.Inputs {
		script := in.UnlockingScript
		if script == nil {
			script = NewScript(nil)
		}

		fmt.Fprintf(&sb, "Input #%d\n", i)
		fmt.Fprintf(&sb, "  Previous Output TxID: %s\n", in.PreviousOutPoint.TxID.String())
		fmt.Fprintf(&sb, "  Previous Output Vout: %d\n", in.PreviousOutPoint.Vout)
		fmt.Fprintf(&sb, "  Unlocking Script (%d bytes): %s\n", len(*script), script.String())
		fmt.Fprintf(&sb, "  Sequence: %d\n", in.Sequence)
	}

	fmt.Fprintf(&sb, "Lock Time: %d\n", tx.LockTime)

	return sb.String()
}
