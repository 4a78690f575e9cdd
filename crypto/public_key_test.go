package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	ed25519Hex   = "01d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	secp256k1Hex = "02039290c106db5e2167d3234a5c514ec0b5d45a8391e29827a07fe41810cdbb9171"
)

func TestNewPublicKeyFromHex(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		alg         Algorithm
		accountHash string
		err         string
	}{
		{
			"ed25519",
			ed25519Hex,
			AlgorithmEd25519,
			"b6c0e5c9ee25f43f57e577b5821688b9ac164eb7c4c08a24d43d1806ac721342",
			"",
		},
		{
			"secp256k1",
			secp256k1Hex,
			AlgorithmSecp256k1,
			"4383908ece97c01575e3c4c0d4b9f1d7ccb72c6ea2f8ab82b65367f79e2b6bd9",
			"",
		},
		{
			"system",
			"00",
			AlgorithmSystem,
			"6174cf2e6f8fed1715c9a3bace9c50bfe572eecb763b0ed3f644532616452008",
			"",
		},
		{"empty", "", 0, "", "public key hex is empty"},
		{"bad hex", "01zz", 0, "", "invalid public key hex"},
		{"unknown tag", "03aa", 0, "", "invalid public key tag 3"},
		{"short ed25519", "01d75a98", 0, "", "ed25519 public key must be 32 bytes, got 3"},
		{"ed25519 off curve", "010200000000000000000000000000000000000000000000000000000000000000", 0, "", "invalid ed25519 public key"},
		{"secp256k1 bad prefix", "0205" + secp256k1Hex[4:], 0, "", "invalid secp256k1 public key"},
		{"system with bytes", "0001", 0, "", "system public key must not carry key bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub, err := NewPublicKeyFromHex(tt.in)
			if tt.err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.alg, pub.Algorithm())
			require.Equal(t, tt.in, pub.Hex())
			require.Equal(t, tt.accountHash, pub.AccountHash().String())
		})
	}
}

func TestPublicKey_EncodeDecode(t *testing.T) {
	for _, in := range []string{ed25519Hex, secp256k1Hex, "00"} {
		pub, err := NewPublicKeyFromHex(in)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, pub.Encode(&buf))
		require.Equal(t, pub.Bytes(), buf.Bytes())

		var decoded PublicKey
		require.NoError(t, decoded.Decode(bytes.NewReader(buf.Bytes())))
		require.True(t, pub.Equal(decoded))
	}
}
