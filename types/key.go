package types

import (
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"cspr/bytesrepr"
	"cspr/crypto"

	"github.com/pkg/errors"
)

// KeyTag identifies the variant of a Key. Its value is the variant's tag
// byte in the binary encoding.
type KeyTag uint8

const (
	KeyTagAccount KeyTag = iota
	KeyTagHash
	KeyTagURef
	KeyTagTransfer
	KeyTagDeployInfo
	KeyTagEraInfo
	KeyTagBalance
	KeyTagBid
	KeyTagWithdraw
	KeyTagDictionary
	KeyTagSystemEntityRegistry
	KeyTagEraSummary
	KeyTagUnbond
	KeyTagChainspecRegistry
)

const (
	HashPrefix                 = "hash-"
	TransferPrefix             = "transfer-"
	DeployInfoPrefix           = "deploy-"
	EraInfoPrefix              = "era-"
	BalancePrefix              = "balance-"
	BidPrefix                  = "bid-"
	WithdrawPrefix             = "withdraw-"
	DictionaryPrefix           = "dictionary-"
	SystemEntityRegistryPrefix = "system-entity-registry-"
	EraSummaryPrefix           = "era-summary-"
	UnbondPrefix               = "unbond-"
	ChainspecRegistryPrefix    = "chainspec-registry-"
)

// addrKeyPrefixes lists the variants whose payload is a plain 32-byte
// address. Registry and summary keys appear here too: their payload is
// zero padding.
var addrKeyPrefixes = []struct {
	prefix string
	tag    KeyTag
}{
	{HashPrefix, KeyTagHash},
	{TransferPrefix, KeyTagTransfer},
	{DeployInfoPrefix, KeyTagDeployInfo},
	{BalancePrefix, KeyTagBalance},
	{BidPrefix, KeyTagBid},
	{WithdrawPrefix, KeyTagWithdraw},
	{DictionaryPrefix, KeyTagDictionary},
	{SystemEntityRegistryPrefix, KeyTagSystemEntityRegistry},
	{EraSummaryPrefix, KeyTagEraSummary},
	{UnbondPrefix, KeyTagUnbond},
	{ChainspecRegistryPrefix, KeyTagChainspecRegistry},
}

// Key addresses a value in global state.
type Key struct {
	tag    KeyTag
	addr   [crypto.HashLen]byte
	rights AccessRights
	era    uint64
}

func NewAccountKey(a AccountHash) Key {
	return Key{tag: KeyTagAccount, addr: a}
}

func NewHashKey(addr [crypto.HashLen]byte) Key {
	return Key{tag: KeyTagHash, addr: addr}
}

func NewURefKey(u URef) Key {
	return Key{tag: KeyTagURef, addr: u.Addr, rights: u.Rights}
}

func NewEraInfoKey(era uint64) Key {
	return Key{tag: KeyTagEraInfo, era: era}
}

// NewAddrKey builds a key of any variant whose payload is a 32-byte address.
func NewAddrKey(tag KeyTag, addr [crypto.HashLen]byte) (Key, error) {
	switch tag {
	case KeyTagURef, KeyTagEraInfo:
		return Key{}, errors.Errorf("key variant %s does not hold a plain address", tag)
	case KeyTagSystemEntityRegistry, KeyTagEraSummary, KeyTagChainspecRegistry:
		return Key{tag: tag}, nil
	}
	if tag > KeyTagChainspecRegistry {
		return Key{}, errors.Wrapf(ErrUnknownKeyTag, "%d", uint8(tag))
	}
	return Key{tag: tag, addr: addr}, nil
}

// ParseKey parses a key from its formatted string form, e.g.
// account-hash-<64 hex chars>, uref-<64 hex chars>-007 or era-12.
func ParseKey(in string) (Key, error) {
	switch {
	case strings.HasPrefix(in, AccountHashPrefix):
		a, err := ParseAccountHash(in)
		if err != nil {
			return Key{}, err
		}
		return NewAccountKey(a), nil
	case strings.HasPrefix(in, URefPrefix):
		u, err := ParseURef(in)
		if err != nil {
			return Key{}, err
		}
		return NewURefKey(u), nil
	case strings.HasPrefix(in, EraSummaryPrefix):
		// must be checked before the era- prefix
		if _, err := parseAddr(strings.TrimPrefix(in, EraSummaryPrefix)); err != nil {
			return Key{}, err
		}
		return Key{tag: KeyTagEraSummary}, nil
	case strings.HasPrefix(in, EraInfoPrefix):
		era, err := strconv.ParseUint(strings.TrimPrefix(in, EraInfoPrefix), 10, 64)
		if err != nil {
			return Key{}, errors.Wrap(err, "invalid era id")
		}
		return NewEraInfoKey(era), nil
	}

	for _, p := range addrKeyPrefixes {
		if !strings.HasPrefix(in, p.prefix) {
			continue
		}
		addr, err := parseAddr(strings.TrimPrefix(in, p.prefix))
		if err != nil {
			return Key{}, err
		}
		return NewAddrKey(p.tag, addr)
	}
	return Key{}, ErrUnknownKeyPrefix
}

func (k Key) Tag() KeyTag {
	return k.tag
}

// Addr returns the key's 32-byte payload. It is zero for era info keys and
// the padded registry keys.
func (k Key) Addr() [crypto.HashLen]byte {
	return k.addr
}

func (k Key) URef() (URef, bool) {
	if k.tag != KeyTagURef {
		return URef{}, false
	}
	return URef{Addr: k.addr, Rights: k.rights}, true
}

func (k Key) EraID() (uint64, bool) {
	if k.tag != KeyTagEraInfo {
		return 0, false
	}
	return k.era, true
}

// VariantName returns the variant name used by the JSON object form of a
// key, e.g. {"Account":"account-hash-..."}.
func (k Key) VariantName() string {
	return k.tag.String()
}

func (k Key) String() string {
	switch k.tag {
	case KeyTagAccount:
		return AccountHash(k.addr).String()
	case KeyTagURef:
		return URef{Addr: k.addr, Rights: k.rights}.String()
	case KeyTagEraInfo:
		return EraInfoPrefix + strconv.FormatUint(k.era, 10)
	}
	for _, p := range addrKeyPrefixes {
		if p.tag == k.tag {
			return p.prefix + hex.EncodeToString(k.addr[:])
		}
	}
	return "invalid-key"
}

func (k Key) Equal(other Key) bool {
	return k == other
}

func (k Key) Encode(w io.Writer) error {
	if err := bytesrepr.WriteTag(w, uint8(k.tag)); err != nil {
		return err
	}
	switch k.tag {
	case KeyTagURef:
		return URef{Addr: k.addr, Rights: k.rights}.Encode(w)
	case KeyTagEraInfo:
		return bytesrepr.EncodeField(w, k.era)
	default:
		_, err := w.Write(k.addr[:])
		return err
	}
}

func (k *Key) Decode(r io.Reader) error {
	tag, err := bytesrepr.ReadTag(r)
	if err != nil {
		return err
	}
	switch KeyTag(tag) {
	case KeyTagURef:
		var u URef
		if err := u.Decode(r); err != nil {
			return err
		}
		*k = NewURefKey(u)
		return nil
	case KeyTagEraInfo:
		var era uint64
		if err := bytesrepr.DecodeField(r, &era); err != nil {
			return err
		}
		*k = NewEraInfoKey(era)
		return nil
	}
	var addr [crypto.HashLen]byte
	if _, err := io.ReadFull(r, addr[:]); err != nil {
		return err
	}
	if KeyTag(tag) == KeyTagAccount {
		*k = NewAccountKey(addr)
		return nil
	}
	decoded, err := NewAddrKey(KeyTag(tag), addr)
	if err != nil {
		return err
	}
	*k = decoded
	return nil
}

func (t KeyTag) String() string {
	switch t {
	case KeyTagAccount:
		return "Account"
	case KeyTagHash:
		return "Hash"
	case KeyTagURef:
		return "URef"
	case KeyTagTransfer:
		return "Transfer"
	case KeyTagDeployInfo:
		return "DeployInfo"
	case KeyTagEraInfo:
		return "EraInfo"
	case KeyTagBalance:
		return "Balance"
	case KeyTagBid:
		return "Bid"
	case KeyTagWithdraw:
		return "Withdraw"
	case KeyTagDictionary:
		return "Dictionary"
	case KeyTagSystemEntityRegistry:
		return "SystemEntityRegistry"
	case KeyTagEraSummary:
		return "EraSummary"
	case KeyTagUnbond:
		return "Unbond"
	case KeyTagChainspecRegistry:
		return "ChainspecRegistry"
	default:
		return "Unknown"
	}
}
