package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsv-blockchain/go-txwire/errors"
)

func TestNewTxIDFromBytes(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		b := make([]byte, TxIDLen)
		b[0] = 0xde
		b[31] = 0xad

		id, err := NewTxIDFromBytes(b)
		require.NoError(t, err)
		assert.Equal(t, b, id.CloneBytes())
	})

	t.Run("wrong length", func(t *testing.T) {
		for _, n := range []int{0, 31, 33} {
			_, err := NewTxIDFromBytes(make([]byte, n))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
		}
	})
}

func TestTxIDString(t *testing.T) {
	t.Run("all zero bytes", func(t *testing.T) {
		var id TxID
		assert.Equal(t, strings.Repeat("0", 64), id.String())
	})

	t.Run("round trip", func(t *testing.T) {
		const s = "6a6c0ec8d4adfe242b17153b4f2723b0cb6f783b1ca0f1e17cbdaf699a813316"

		id, err := NewTxIDFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, id.String())
	})
}

func TestNewTxIDFromString(t *testing.T) {
	t.Run("63 characters", func(t *testing.T) {
		_, err := NewTxIDFromString(strings.Repeat("0", 63))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})

	t.Run("64 hex characters but 31 bytes plus junk", func(t *testing.T) {
		_, err := NewTxIDFromString(strings.Repeat("0", 62) + "zz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})

	t.Run("not hex", func(t *testing.T) {
		_, err := NewTxIDFromString("not-a-txid")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})

	t.Run("128 characters", func(t *testing.T) {
		_, err := NewTxIDFromString(strings.Repeat("0", 128))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})
}

func TestTxIDEqual(t *testing.T) {
	a, err := NewTxIDFromString(strings.Repeat("ab", 32))
	require.NoError(t, err)

	b, err := NewTxIDFromString(strings.Repeat("ab", 32))
	require.NoError(t, err)

	c, err := NewTxIDFromString(strings.Repeat("cd", 32))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestTxIDJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		var id TxID

		b, err := json.Marshal(id)
		require.NoError(t, err)
		assert.Equal(t, `"`+strings.Repeat("0", 64)+`"`, string(b))
	})

	t.Run("round trip", func(t *testing.T) {
		id, err := NewTxIDFromString("6a6c0ec8d4adfe242b17153b4f2723b0cb6f783b1ca0f1e17cbdaf699a813316")
		require.NoError(t, err)

		b, err := json.Marshal(id)
		require.NoError(t, err)

		var decoded TxID
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.True(t, id.Equal(&decoded))
	})

	t.Run("unmarshal bad hex", func(t *testing.T) {
		var decoded TxID

		err := json.Unmarshal([]byte(`"zz"`), &decoded)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})

	t.Run("unmarshal non-string", func(t *testing.T) {
		var decoded TxID

		err := json.Unmarshal([]byte(`42`), &decoded)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidFormat))
	})
}
