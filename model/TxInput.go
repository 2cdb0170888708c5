package model

import (
	"encoding/binary"
	"io"

	"github.com/bsv-blockchain/go-txwire/errors"
)

// TxInput spends one previous output: the outpoint being spent, the
// unlocking script and the 4 byte sequence number. Neither the script nor
// the sequence are validated semantically.
type TxInput struct {
	PreviousOutPoint OutPoint `json:"previousOutPoint"`
	UnlockingScript  *Script  `json:"unlockingScript"`
	Sequence         uint32   `json:"sequence"`
}

func NewTxInput(previousOutPoint *OutPoint, unlockingScript *Script, sequence uint32) *TxInput {
	if unlockingScript == nil {
		unlockingScript = NewScript(nil)
	}

	return &TxInput{
		PreviousOutPoint: *previousOutPoint,
		UnlockingScript:  unlockingScript,
		Sequence:         sequence,
	}
}

// Size returns the serialized length without encoding.
func (in *TxInput) Size() int {
	scriptLen := 0
	if in.UnlockingScript != nil {
		scriptLen = len(*in.UnlockingScript)
	}

	return OutPointLen + NewCompactSize(uint64(scriptLen)).Length() + scriptLen + 4
}

func (in *TxInput) Bytes() []byte {
	script := in.UnlockingScript
	if script == nil {
		script = NewScript(nil)
	}

	b := make([]byte, 0, in.Size())
	b = append(b, in.PreviousOutPoint.Bytes()...)
	b = append(b, script.Bytes()...)
	b = binary.LittleEndian.AppendUint32(b, in.Sequence)

	return b
}

// NewTxInputFromBytes decodes an input from the front of b: outpoint, then
// script, then sequence. Failures from the outpoint and script decoders
// propagate unchanged; the consumed count is the sum of the three parts.
func NewTxInputFromBytes(b []byte) (*TxInput, int, error) {
	previousOutPoint, offset, err := NewOutPointFromBytes(b)
	if err != nil {
		return nil, 0, err
	}

	unlockingScript, scriptLen, err := NewScriptFromBytes(b[offset:])
	if err != nil {
		return nil, 0, err
	}

	offset += scriptLen

	if len(b) < offset+4 {
		return nil, 0, errors.NewInsufficientBytesError("input sequence needs 4 bytes, got %d", len(b)-offset)
	}

	return &TxInput{
		PreviousOutPoint: *previousOutPoint,
		UnlockingScript:  unlockingScript,
		Sequence:         binary.LittleEndian.Uint32(b[offset : offset+4]),
	}, offset + 4, nil
}

// NewTxInputFromReader reads one input from r.
func NewTxInputFromReader(r io.Reader) (*TxInput, error) {
	previousOutPoint, err := NewOutPointFromReader(r)
	if err != nil {
		return nil, err
	}

	unlockingScript, err := NewScriptFromReader(r)
	if err != nil {
		return nil, err
	}

	var sequence [4]byte
	if _, err := io.ReadFull(r, sequence[:]); err != nil {
		return nil, errors.NewInsufficientBytesError("input sequence needs 4 bytes", err)
	}

	return &TxInput{
		PreviousOutPoint: *previousOutPoint,
		UnlockingScript:  unlockingScript,
		Sequence:         binary.LittleEndian.Uint32(sequence[:]),
	}, nil
}
