package model

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bsv-blockchain/go-txwire/errors"
)

// TxIDLen is the length of a transaction id in bytes.
const TxIDLen = 32

// TxID is a transaction identifier. Any 32 bytes are a valid id; there is no
// internal structure. The text form is 64 lowercase hex characters in raw
// byte order, with no prefix or separators.
type TxID [TxIDLen]byte

func NewTxIDFromBytes(b []byte) (*TxID, error) {
	if len(b) != TxIDLen {
		return nil, errors.NewInvalidFormatError("txid must be %d bytes, got %d", TxIDLen, len(b))
	}

	var id TxID
	copy(id[:], b)

	return &id, nil
}

func NewTxIDFromString(s string) (*TxID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewInvalidFormatError("txid %q is not valid hex", s, err)
	}

	return NewTxIDFromBytes(b)
}

// CloneBytes returns a copy of the id bytes.
func (id *TxID) CloneBytes() []byte {
	b := make([]byte, TxIDLen)
	copy(b, id[:])

	return b
}

func (id *TxID) Equal(other *TxID) bool {
	if id == nil || other == nil {
		return id == other
	}

	return *id == *other
}

func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

func (id TxID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *TxID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.NewInvalidFormatError("txid must be a json string", err)
	}

	decoded, err := NewTxIDFromString(s)
	if err != nil {
		return err
	}

	*id = *decoded

	return nil
}
