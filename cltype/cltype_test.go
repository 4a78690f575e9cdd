package cltype

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCLType_JSON(t *testing.T) {
	tests := []struct {
		json  string
		typ   CLType
		str   string
		bytes string
	}{
		{`"Bool"`, Bool, "Bool", "00"},
		{`"U512"`, U512, "U512", "08"},
		{`"PublicKey"`, PublicKey, "PublicKey", "16"},
		{`"Any"`, Any, "Any", "15"},
		{`{"Option":"U8"}`, Option(U8), "Option(U8)", "0d03"},
		{`{"List":{"Option":"String"}}`, List(Option(String)), "List(Option(String))", "0e0d0a"},
		{`{"ByteArray":32}`, ByteArray(32), "ByteArray(32)", "0f20000000"},
		{`{"Result":{"err":"String","ok":"Bool"}}`, Result(Bool, String), "Result { ok: Bool, err: String }", "10000a"},
		{`{"Map":{"key":"String","value":"U64"}}`, Map(String, U64), "Map { key: String, value: U64 }", "110a05"},
		{`{"Tuple1":["Key"]}`, Tuple1(Key), "Tuple1([Key])", "120b"},
		{`{"Tuple2":["URef","I32"]}`, Tuple2(URef, I32), "Tuple2([URef, I32])", "130c01"},
		{`{"Tuple3":["Bool","Unit","I64"]}`, Tuple3(Bool, Unit, I64), "Tuple3([Bool, Unit, I64])", "14000902"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			var typ CLType
			require.NoError(t, json.Unmarshal([]byte(tt.json), &typ))
			require.True(t, tt.typ.Equal(typ))
			require.Equal(t, tt.str, typ.String())

			out, err := json.Marshal(typ)
			require.NoError(t, err)
			require.JSONEq(t, tt.json, string(out))

			var buf bytes.Buffer
			require.NoError(t, typ.Encode(&buf))
			require.Equal(t, tt.bytes, hex.EncodeToString(buf.Bytes()))

			var decoded CLType
			require.NoError(t, decoded.Decode(bytes.NewReader(buf.Bytes())))
			require.True(t, typ.Equal(decoded))
		})
	}
}

func TestCLType_JSONErrors(t *testing.T) {
	tests := []struct {
		json string
		err  error
	}{
		{`"bool"`, ErrUnknownType},
		{`"Float"`, ErrUnknownType},
		{`{"Array":"U8"}`, ErrUnknownType},
		{`{"Option":"u8"}`, ErrUnknownType},
		{`{"Option":"U8","List":"U8"}`, ErrInvalidTypeShape},
		{`{}`, ErrInvalidTypeShape},
		{`12`, ErrInvalidTypeShape},
		{`{"ByteArray":-1}`, ErrInvalidTypeShape},
		{`{"Result":{"ok":"Bool"}}`, ErrInvalidTypeShape},
		{`{"Map":{"value":"Bool"}}`, ErrInvalidTypeShape},
		{`{"Tuple2":["Bool"]}`, ErrInvalidTypeShape},
	}
	for _, tt := range tests {
		var typ CLType
		err := json.Unmarshal([]byte(tt.json), &typ)
		require.Error(t, err, tt.json)
		require.Equal(t, tt.err, errors.Cause(err), tt.json)
	}

	var typ CLType
	err := json.Unmarshal([]byte(`"Float"`), &typ)
	require.Contains(t, err.Error(), "expected one of: Bool, I32, I64, U8, U32, U64, U128, U256, U512, Unit, String, Key, URef, PublicKey, Option, List, ByteArray, Result, Map, Tuple1, Tuple2, Tuple3, Any")
}

func TestCLType_Equal(t *testing.T) {
	require.True(t, Map(String, List(U8)).Equal(Map(String, List(U8))))
	require.False(t, Map(String, List(U8)).Equal(Map(String, List(U32))))
	require.False(t, ByteArray(32).Equal(ByteArray(33)))
	require.False(t, Tuple1(Bool).Equal(Option(Bool)))
	require.Panics(t, func() {
		Bool.Inner()
	})
}

func TestRuntimeArgs(t *testing.T) {
	var args RuntimeArgs
	require.True(t, args.IsEmpty())
	out, err := json.Marshal(args)
	require.NoError(t, err)
	require.Equal(t, "[]", string(out))

	args.Insert("a", CLValue{Type: U8, Bytes: []byte{0x07}})
	args.Insert("a", NewString("x"))
	require.Equal(t, 2, args.Len())
	first, ok := args.Get("a")
	require.True(t, ok)
	require.True(t, U8.Equal(first.Type))

	var buf bytes.Buffer
	require.NoError(t, args.Encode(&buf))
	require.Equal(t,
		"02000000"+
			"0100000061"+"0100000007"+"03"+
			"0100000061"+"050000000100000078"+"0a",
		hex.EncodeToString(buf.Bytes()),
	)

	var decoded RuntimeArgs
	require.NoError(t, decoded.Decode(bytes.NewReader(buf.Bytes())))
	require.Equal(t, args.Len(), decoded.Len())
	for i, arg := range args.Args() {
		require.Equal(t, arg.Name, decoded.Args()[i].Name)
		require.True(t, arg.Value.Equal(decoded.Args()[i].Value))
	}

	out, err = json.Marshal(args)
	require.NoError(t, err)
	require.JSONEq(t, `[["a",{"cl_type":"U8","bytes":"07"}],["a",{"cl_type":"String","bytes":"0100000078"}]]`, string(out))

	var fromJSON RuntimeArgs
	require.NoError(t, json.Unmarshal(out, &fromJSON))
	require.Equal(t, 2, fromJSON.Len())
	require.True(t, args.Args()[1].Value.Equal(fromJSON.Args()[1].Value))
}

func TestNewU512(t *testing.T) {
	v, err := NewU512(big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, "02e803", v.Hex())

	_, err = NewU512(big.NewInt(-1))
	require.Error(t, err)
}
