package model

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/bsv-blockchain/go-txwire/errors"
)

// Script is an opaque script payload. The codec does not interpret opcodes;
// the wire form is a CompactSize length prefix followed by the raw bytes.
// An empty script is valid and serializes as the single byte 0x00.
type Script []byte

func NewScript(b []byte) *Script {
	s := Script(b)

	return &s
}

func NewScriptFromString(str string) (*Script, error) {
	b, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.NewInvalidFormatError("script %q is not valid hex", str, err)
	}

	return NewScript(b), nil
}

// Bytes returns the wire form: CompactSize(len) followed by the script body.
func (s *Script) Bytes() []byte {
	length := NewCompactSize(uint64(len(*s)))

	b := make([]byte, 0, length.Length()+len(*s))
	b = append(b, length.Bytes()...)
	b = append(b, *s...)

	return b
}

// NewScriptFromBytes decodes a length-prefixed script from the front of b and
// returns it with the number of bytes consumed, prefix included.
func NewScriptFromBytes(b []byte) (*Script, int, error) {
	length, prefixLen, err := NewCompactSizeFromBytes(b)
	if err != nil {
		return nil, 0, err
	}

	// compare in uint64 space, the declared length may not fit an int
	if uint64(len(b)-prefixLen) < uint64(length) {
		return nil, 0, errors.NewInsufficientBytesError("script declares %d bytes, only %d remain", uint64(length), len(b)-prefixLen)
	}

	s := make(Script, length)
	copy(s, b[prefixLen:prefixLen+int(length)])

	return &s, prefixLen + int(length), nil
}

// scriptReadChunk bounds how much NewScriptFromReader allocates ahead of the
// bytes actually arriving.
const scriptReadChunk = 32 * 1024

// NewScriptFromReader reads a length-prefixed script from r. The declared
// length is untrusted until the body arrives, so the read is chunked rather
// than allocated up front.
func NewScriptFromReader(r io.Reader) (*Script, error) {
	length, err := NewCompactSizeFromReader(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	remaining := uint64(length)
	for remaining > 0 {
		chunk := uint64(scriptReadChunk)
		if remaining < chunk {
			chunk = remaining
		}

		if _, err := io.CopyN(&buf, r, int64(chunk)); err != nil {
			return nil, errors.NewInsufficientBytesError("script declares %d bytes, got %d", uint64(length), buf.Len(), err)
		}

		remaining -= chunk
	}

	s := Script(buf.Bytes())

	return &s, nil
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}

func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Script) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.NewInvalidFormatError("script must be a json string", err)
	}

	raw, err := hex.DecodeString(str)
	if err != nil {
		return errors.NewInvalidFormatError("script %q is not valid hex", str, err)
	}

	*s = raw

	return nil
}
