package cltype

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"math/big"

	"cspr/bytesrepr"
)

// CLValue is a value in its binary encoding together with its type. Bytes
// holds exactly the encoding of a value of Type.
type CLValue struct {
	Type  CLType
	Bytes []byte
}

type clValueJSON struct {
	CLType CLType `json:"cl_type"`
	Bytes  string `json:"bytes"`
}

func NewU512(v *big.Int) (CLValue, error) {
	var buf bytes.Buffer
	if err := bytesrepr.EncodeBigUint(&buf, v, bytesrepr.U512Width); err != nil {
		return CLValue{}, err
	}
	return CLValue{Type: U512, Bytes: buf.Bytes()}, nil
}

func NewString(s string) CLValue {
	var buf bytes.Buffer
	// writes to a bytes.Buffer never fail
	_ = bytesrepr.EncodeField(&buf, s)
	return CLValue{Type: String, Bytes: buf.Bytes()}
}

func (v CLValue) Hex() string {
	return hex.EncodeToString(v.Bytes)
}

func (v CLValue) Equal(other CLValue) bool {
	return v.Type.Equal(other.Type) && bytes.Equal(v.Bytes, other.Bytes)
}

// Encode writes the length-prefixed value bytes followed by the type.
func (v CLValue) Encode(w io.Writer) error {
	return bytesrepr.EncodeFields(w, v.Bytes, v.Type)
}

func (v *CLValue) Decode(r io.Reader) error {
	return bytesrepr.DecodeFields(r, &v.Bytes, &v.Type)
}

func (v CLValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(clValueJSON{
		CLType: v.Type,
		Bytes:  v.Hex(),
	})
}

func (v *CLValue) UnmarshalJSON(b []byte) error {
	var raw clValueJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(raw.Bytes)
	if err != nil {
		return err
	}
	v.Type = raw.CLType
	v.Bytes = decoded
	return nil
}
