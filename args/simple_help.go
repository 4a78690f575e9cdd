package args

import (
	"encoding/hex"
	"fmt"
	"strings"

	"cspr/crypto"
	"cspr/types"
)

const exampleEd25519PublicKey = "0119bf44096984cdfe8541bac167dc3b96c85086aa30b6b6cb0c5c38ad703166e1"

const simpleArgExamplesTemplate = `"name_01:bool='false'"
"name_02:i32='-1'"
"name_03:i64='-2'"
"name_04:u8='3'"
"name_05:u32='4'"
"name_06:u64='5'"
"name_07:u128='6'"
"name_08:u256='7'"
"name_09:u512='8'"
"name_10:unit=''"
"name_11:string='a value'"
"key_account_name:key='%s'"
"key_hash_name:key='%s'"
"key_uref_name:key='%s'"
"account_hash_name:account_hash='%s'"
"uref_name:uref='%s'"
"public_key_name:public_key='%s'"
"byte_list_name:byte_list='010203'"            # variable-length list of bytes, i.e. List(U8)
"byte_array_5_name:byte_array_5='0102030405'"  # fixed-length array of bytes, in this example ByteArray(5)
"byte_array_32_name:byte_array_32='%s'"

Optional values of all of these types can also be specified.
Prefix the type with "opt_" and use the term "null" without quotes to specify a None value:
"name_01:opt_bool='true'"       # Some(true)
"name_02:opt_bool='false'"      # Some(false)
"name_03:opt_bool=null"         # None
"name_04:opt_i32='-1'"          # Some(-1)
"name_05:opt_i32=null"          # None
"name_06:opt_unit=''"           # Some(())
"name_07:opt_unit=null"         # None
"name_08:opt_string='a value'"  # Some("a value")
"name_09:opt_string='null'"     # Some("null")
"name_10:opt_string=null"       # None
`

// SimpleTypeList returns the supported simple type names as a single comma
// separated line.
func SimpleTypeList() string {
	return strings.Join(SupportedSimpleTypes(), ", ")
}

// SimpleArgExamples returns one example simple arg per supported type,
// followed by examples of optional values.
func SimpleArgExamples() string {
	var addr [crypto.HashLen]byte
	for i := range addr {
		addr[i] = byte(i + 1)
	}
	account := types.AccountHash(addr)

	// the example key is a constant, well-formed ed25519 key
	pub, err := crypto.NewPublicKeyFromHex(exampleEd25519PublicKey)
	if err != nil {
		panic(err)
	}

	return fmt.Sprintf(
		simpleArgExamplesTemplate,
		types.NewAccountKey(account),
		types.NewHashKey(addr),
		types.NewURefKey(types.URef{Addr: addr, Rights: types.AccessNone}),
		account,
		types.URef{Addr: addr, Rights: types.AccessReadAddWrite},
		pub.Hex(),
		hex.EncodeToString(addr[:]),
	)
}
