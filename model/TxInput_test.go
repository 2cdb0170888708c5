package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsv-blockchain/go-txwire/errors"
)

func testOutPoint(t *testing.T) *OutPoint {
	t.Helper()

	id, err := NewTxIDFromString("b2d725550ba419ef7452626f75faa8538bca695ab9284127b2210368455137d1")
	require.NoError(t, err)

	return NewOutPoint(*id, 1)
}

func TestTxInputBytes(t *testing.T) {
	t.Run("empty script", func(t *testing.T) {
		in := NewTxInput(testOutPoint(t), nil, 0xffffffff)

		b := in.Bytes()
		require.Len(t, b, OutPointLen+1+4)
		assert.Equal(t, byte(0x00), b[OutPointLen])
		assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, b[OutPointLen+1:])
		assert.Equal(t, len(b), in.Size())
	})

	t.Run("script body sits between outpoint and sequence", func(t *testing.T) {
		in := NewTxInput(testOutPoint(t), NewScript([]byte{0x51, 0x52}), 7)

		b := in.Bytes()
		require.Len(t, b, OutPointLen+3+4)
		assert.Equal(t, []byte{0x02, 0x51, 0x52}, b[OutPointLen:OutPointLen+3])
		assert.Equal(t, []byte{0x07, 0x00, 0x00, 0x00}, b[OutPointLen+3:])
	})
}

func TestNewTxInputFromBytes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := NewTxInput(testOutPoint(t), NewScript([]byte{0x51, 0x52, 0x53}), 0xfffffffe)
		encoded := in.Bytes()

		decoded, consumed, err := NewTxInputFromBytes(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), consumed)
		assert.Equal(t, in, decoded)
	})

	t.Run("outpoint failure propagates", func(t *testing.T) {
		_, _, err := NewTxInputFromBytes(make([]byte, 10))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	})

	t.Run("script failure propagates", func(t *testing.T) {
		b := make([]byte, OutPointLen)
		b = append(b, 0x05, 0x51) // declares 5 script bytes, supplies 1

		_, _, err := NewTxInputFromBytes(b)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	})

	t.Run("missing sequence", func(t *testing.T) {
		b := make([]byte, OutPointLen)
		b = append(b, 0x00)       // empty script
		b = append(b, 0x01, 0x02) // only 2 of the 4 sequence bytes

		_, _, err := NewTxInputFromBytes(b)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	})

	t.Run("trailing bytes are left alone", func(t *testing.T) {
		in := NewTxInput(testOutPoint(t), nil, 1)
		encoded := append(in.Bytes(), 0xde, 0xad)

		decoded, consumed, err := NewTxInputFromBytes(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded)-2, consumed)
		assert.Equal(t, uint32(1), decoded.Sequence)
	})
}

func TestNewTxInputFromReader(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := NewTxInput(testOutPoint(t), NewScript([]byte{0x51}), 3)

		decoded, err := NewTxInputFromReader(bytes.NewReader(in.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	})

	t.Run("truncated sequence", func(t *testing.T) {
		in := NewTxInput(testOutPoint(t), nil, 3)
		encoded := in.Bytes()

		_, err := NewTxInputFromReader(bytes.NewReader(encoded[:len(encoded)-1]))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBytes))
	})
}
