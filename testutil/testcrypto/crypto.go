package testcrypto

import (
	"encoding/hex"
	"testing"

	"cspr/crypto"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"
)

// Ed25519PublicKeyHex is the public key from the first RFC 8032 test vector.
const Ed25519PublicKeyHex = "01d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"

func FixedKey(t *testing.T) (*btcec.PrivateKey, *btcec.PublicKey) {
	data, err := hex.DecodeString("86d4da79175bf6984ef62676a20069d35527c45ccc398d46b7fdb9b0783cccf7")
	require.NoError(t, err)
	return btcec.PrivKeyFromBytes(btcec.S256(), data)
}

func FixedSecp256k1PublicKey(t *testing.T) crypto.PublicKey {
	_, pub := FixedKey(t)
	return crypto.NewSecp256k1PublicKey(pub)
}

func FixedEd25519PublicKey(t *testing.T) crypto.PublicKey {
	pub, err := crypto.NewPublicKeyFromHex(Ed25519PublicKeyHex)
	require.NoError(t, err)
	return pub
}
