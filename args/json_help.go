package args

import (
	"strings"
)

const maxHelpLineLen = 100

const jsonArgsHelpHeader = `The value must be a JSON Array of JSON Objects of the form
{"name":<String>,"type":<VALUE>,"value":<VALUE>}

For example, to provide the following session args:
* The value "square" to an entry point named "shape" taking a String
* The tuple value (100,100) to an entry point named "dimensions" taking a Tuple2<U32, U32>
* The value "blue" to an entry point named "color" taking an Option<String>
the following input would be used:
'[{"name":"shape","type":"String","value":"square"},{"name":"dimensions","type":{"Tuple2":["U32","U32"]},"value":[100,100]},{"name":"color","type":{"Option":"String"},"value":"blue"}]'

Details for each CLType variant:
`

type helpEntry struct {
	info     string
	examples []string
}

const exampleAddrHex = "201f1e1d1c1b1a191817161514131211100f0e0d0c0b0a090807060504030201"

func keyExamples() []string {
	var out []string
	add := func(variant, formatted string) {
		out = append(out,
			`{"name":"entry_point_name","type":"Key","value":"`+formatted+`"}`,
			`{"name":"entry_point_name","type":"Key","value":{"`+variant+`":"`+formatted+`"}}`,
		)
	}
	add("Account", "account-hash-"+exampleAddrHex)
	add("Hash", "hash-"+exampleAddrHex)
	add("URef", "uref-"+exampleAddrHex+"-000")
	add("Transfer", "transfer-"+exampleAddrHex)
	add("DeployInfo", "deploy-"+exampleAddrHex)
	add("EraInfo", "era-1")
	add("Balance", "balance-"+exampleAddrHex)
	add("Bid", "bid-"+exampleAddrHex)
	add("Withdraw", "withdraw-"+exampleAddrHex)
	add("Unbond", "unbond-"+exampleAddrHex)
	add("Dictionary", "dictionary-"+exampleAddrHex)
	add("SystemEntityRegistry", "system-entity-registry-"+strings.Repeat("00", 32))
	add("EraSummary", "era-summary-"+strings.Repeat("00", 32))
	add("ChainspecRegistry", "chainspec-registry-"+strings.Repeat("11", 32))
	return out
}

func jsonHelpEntries() []helpEntry {
	return []helpEntry{
		{
			info:     "CLType Bool is represented as a JSON Bool, e.g.",
			examples: []string{`{"name":"entry_point_name","type":"Bool","value":false}`},
		},
		{
			info: "CLTypes I32, I64, U8, U32 and U64 are represented as a JSON Number, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":"I32","value":-1}`,
				`{"name":"entry_point_name","type":"I64","value":-2}`,
				`{"name":"entry_point_name","type":"U8","value":1}`,
				`{"name":"entry_point_name","type":"U32","value":2}`,
				`{"name":"entry_point_name","type":"U64","value":3}`,
			},
		},
		{
			info: "CLTypes U128, U256 and U512 are represented as a JSON String of the decimal " +
				"value, or can be represented as a Number if the value is not more than u64::MAX " +
				"(18446744073709551615), e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":"U128","value":1}`,
				`{"name":"entry_point_name","type":"U128","value":"20000000000000000000"}`,
				`{"name":"entry_point_name","type":"U256","value":2}`,
				`{"name":"entry_point_name","type":"U256","value":"20000000000000000000"}`,
				`{"name":"entry_point_name","type":"U512","value":3}`,
				`{"name":"entry_point_name","type":"U512","value":"20000000000000000000"}`,
			},
		},
		{
			info:     "CLType Unit is represented as a JSON null, e.g.",
			examples: []string{`{"name":"entry_point_name","type":"Unit","value":null}`},
		},
		{
			info:     "CLType String is represented as a JSON String, e.g.",
			examples: []string{`{"name":"entry_point_name","type":"String","value":"a"}`},
		},
		{
			info: "CLType Key is represented as a JSON String (where the value is a properly " +
				"formatted string representation of a Key) or may also be represented as a JSON " +
				`Object of the form {"<KEY VARIANT>":"<KEY AS FORMATTED STRING>"}, e.g.`,
			examples: keyExamples(),
		},
		{
			info: "CLTypes URef and PublicKey are represented as a JSON String where the value is a " +
				"properly formatted string representation of the respective type, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":"URef","value":"uref-` + exampleAddrHex + `-007"}`,
				`{"name":"entry_point_name","type":"PublicKey","value":"017279ea868d185a40ed32ec076807c070de9c0fe986f5418c2aa71478f1e8ddf8"}`,
				`{"name":"entry_point_name","type":"PublicKey","value":"02030963b980a774f9bf4fded595007b60045ca9593fe6d47296e4e1aaa2745c90d2"}`,
			},
		},
		{
			info: "CLType Option<T> is represented as a JSON null for None, or the JSON type " +
				"appropriate for the wrapped type T, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":{"Option":"U64"},"value":999}`,
				`{"name":"entry_point_name","type":{"Option":"String"},"value":null}`,
			},
		},
		{
			info: "CLType List<T> is represented as a JSON Array where every element has a type " +
				"suitable to represent T.  For the special case of List<U8>, it can be represented " +
				"as a hex-encoded String, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":{"List":{"Option":"U256"}},"value":[1,null,"3"]}`,
				`{"name":"entry_point_name","type":{"List":"U8"},"value":"0102ff"}`,
			},
		},
		{
			info: "CLType ByteArray is represented as a JSON String (hex-encoded) or more verbosely " +
				"by an Array of Numbers, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":{"ByteArray":3},"value":"0114ff"}`,
				`{"name":"entry_point_name","type":{"ByteArray":3},"value":[1,20,255]}`,
			},
		},
		{
			info: "CLType Result<T, E> is represented as a JSON Object with exactly one entry named " +
				`either "Ok" or "Err" where the Object's value is suitable to represent T or E ` +
				"respectively, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":{"Result":{"ok":"Bool","err":"U8"}},"value":{"Ok":true}}`,
				`{"name":"entry_point_name","type":{"Result":{"ok":"Bool","err":"U8"}},"value":{"Err":1}}`,
			},
		},
		{
			info: "CLType Map<K, V> is represented as a JSON Array of Objects of the form " +
				`{"key":<K-VALUE>,"value":<V-VALUE>}.  For the special case where K is String ` +
				"or a numerical type, the Map can be represented as a single JSON Object, with each " +
				"entry having the name of the given key as a String, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":{"Map":{"key":"U8","value":"Bool"}},"value":[{"key":1,"value":true},{"key":2,"value":false}]}`,
				`{"name":"entry_point_name","type":{"Map":{"key":"U8","value":"Bool"}},"value":{"1":true,"2":false}}`,
			},
		},
		{
			info: "CLTypes Tuple1, Tuple2 and Tuple3 are represented as a JSON Array, e.g.",
			examples: []string{
				`{"name":"entry_point_name","type":{"Tuple1":["Bool"]},"value":[true]}`,
				`{"name":"entry_point_name","type":{"Tuple2":["Bool","U8"]},"value":[true,128]}`,
				`{"name":"entry_point_name","type":{"Tuple3":["Bool","U8","String"]},"value":[true,128,"a"]}`,
			},
		},
	}
}

// JSONArgExamples returns the help text for the JSON args syntax: a short
// description followed by examples for every CLType variant.
func JSONArgExamples() string {
	var sb strings.Builder
	sb.WriteString(jsonArgsHelpHeader)
	for _, entry := range jsonHelpEntries() {
		writeWrapped(&sb, entry.info, maxHelpLineLen)
		sb.WriteString("\n")
		for _, example := range entry.examples {
			sb.WriteString("  ")
			sb.WriteString(example)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Note that CLType Any cannot be represented as JSON.\n")
	return sb.String()
}

// writeWrapped writes text as a bullet point, breaking lines before they
// exceed width. Continuation lines are indented to align with the bullet.
func writeWrapped(sb *strings.Builder, text string, width int) {
	lineLen := 0
	firstLine := true
	for _, word := range strings.Fields(text) {
		if lineLen != 0 && lineLen+len(word)+1 > width {
			sb.WriteString("\n")
			firstLine = false
			lineLen = 0
		}
		if lineLen == 0 {
			if firstLine {
				sb.WriteString("* ")
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(word)
			lineLen += len(word) + 2
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(word)
		lineLen += len(word) + 1
	}
}
