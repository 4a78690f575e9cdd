package params

import (
	"fmt"
	"io/ioutil"
	"math/big"
	"strconv"
	"strings"

	"cspr/args"
	"cspr/cltype"
	"cspr/crypto"
	"cspr/log"
	"cspr/types"

	"github.com/pkg/errors"
)

const (
	sessionContext = "parse_session_info"
	paymentContext = "parse_payment_info"

	StandardPaymentArgName = "amount"
)

var logger = log.WithModule("params")

// ItemKind is the variant of an ExecutableItem.
type ItemKind int

const (
	ItemModuleBytes ItemKind = iota
	ItemStoredContractByHash
	ItemStoredContractByName
	ItemStoredVersionedContractByHash
	ItemStoredVersionedContractByName
	ItemTransfer
)

func (k ItemKind) String() string {
	switch k {
	case ItemModuleBytes:
		return "ModuleBytes"
	case ItemStoredContractByHash:
		return "StoredContractByHash"
	case ItemStoredContractByName:
		return "StoredContractByName"
	case ItemStoredVersionedContractByHash:
		return "StoredVersionedContractByHash"
	case ItemStoredVersionedContractByName:
		return "StoredVersionedContractByName"
	case ItemTransfer:
		return "Transfer"
	default:
		return "Unknown"
	}
}

// ExecutableItem describes the session or payment code of a deploy and the
// args it is called with. Only the fields that apply to Kind are set; a nil
// Version selects the highest enabled version.
type ExecutableItem struct {
	Kind        ItemKind
	Name        string
	Hash        crypto.Hash
	Version     *uint32
	EntryPoint  string
	ModuleBytes []byte
	Args        cltype.RuntimeArgs
}

// InvalidArgumentError reports a param that is present but unusable.
type InvalidArgumentError struct {
	Context string
	Msg     string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument '%s': %s", e.Context, e.Msg)
}

// SessionStrParams holds the session params of a deploy as given on the
// command line. Exactly one of Hash, Name, PackageHash, PackageName, Path,
// Bytes and IsTransfer must be set.
type SessionStrParams struct {
	Hash        string `validate:"omitempty,contracthash"`
	Name        string
	PackageHash string `validate:"omitempty,contracthash"`
	PackageName string
	Path        string `validate:"omitempty,file"`
	Bytes       []byte
	ArgsSimple  []string
	ArgsJSON    string
	Version     string `validate:"omitempty,number"`
	EntryPoint  string
	IsTransfer  bool
}

// PaymentStrParams holds the payment params of a deploy as given on the
// command line. Exactly one of Amount, Hash, Name, PackageHash, PackageName,
// Path and Bytes must be set.
type PaymentStrParams struct {
	Amount      string `validate:"omitempty,number"`
	Hash        string `validate:"omitempty,contracthash"`
	Name        string
	PackageHash string `validate:"omitempty,contracthash"`
	PackageName string
	Path        string `validate:"omitempty,file"`
	Bytes       []byte
	ArgsSimple  []string
	ArgsJSON    string
	Version     string `validate:"omitempty,number"`
	EntryPoint  string
}

func flag(set bool) string {
	if set {
		return "true"
	}
	return ""
}

// Session builds the session item described by p.
func Session(p SessionStrParams) (ExecutableItem, error) {
	var item ExecutableItem
	hasBytes := flag(len(p.Bytes) > 0)
	entryPoint := Field{"session_entry_point", p.EntryPoint}
	version := Field{"session_version", p.Version}

	err := CheckExactlyOne(
		sessionContext,
		Source{Name: "session_hash", Value: p.Hash, Requires: []Field{entryPoint}, RequiresEmpty: []Field{version}},
		Source{Name: "session_name", Value: p.Name, Requires: []Field{entryPoint}, RequiresEmpty: []Field{version}},
		Source{Name: "session_package_hash", Value: p.PackageHash, Requires: []Field{entryPoint}},
		Source{Name: "session_package_name", Value: p.PackageName, Requires: []Field{entryPoint}},
		Source{
			Name:          "session_path",
			Value:         p.Path,
			RequiresEmpty: []Field{entryPoint, version, {"has_session_bytes", hasBytes}},
		},
		Source{
			Name:          "has_session_bytes",
			Value:         hasBytes,
			RequiresEmpty: []Field{entryPoint, version, {"session_path", p.Path}},
		},
		Source{Name: "is_session_transfer", Value: flag(p.IsTransfer), RequiresEmpty: []Field{entryPoint, version}},
	)
	if err != nil {
		return item, err
	}
	if err := validate.Struct(&p); err != nil {
		return item, errors.Wrap(err, "invalid session params")
	}

	sessionArgs, err := args.FromSimpleOrJSON(sessionContext, p.ArgsSimple, p.ArgsJSON)
	if err != nil {
		return item, err
	}

	if p.IsTransfer {
		if sessionArgs.IsEmpty() {
			return item, &InvalidArgumentError{
				Context: "is_session_transfer",
				Msg:     "requires --session-arg to be present",
			}
		}
		item = ExecutableItem{Kind: ItemTransfer, Args: sessionArgs}
		logger.Debug("built session item", "kind", item.Kind, "args", sessionArgs.Len())
		return item, nil
	}

	item, err = storedItem(
		storedParams{
			hash:        p.Hash,
			name:        p.Name,
			packageHash: p.PackageHash,
			packageName: p.PackageName,
			version:     p.Version,
			entryPoint:  p.EntryPoint,
		},
		sessionArgs,
	)
	if err != nil || item.Kind != ItemModuleBytes {
		return item, err
	}

	moduleBytes := p.Bytes
	if len(moduleBytes) == 0 {
		moduleBytes, err = ioutil.ReadFile(p.Path)
		if err != nil {
			return ExecutableItem{}, errors.Wrapf(err, "unable to read session file at '%s'", p.Path)
		}
	}
	item.ModuleBytes = moduleBytes
	logger.Debug("built session item", "kind", item.Kind, "args", sessionArgs.Len())
	return item, nil
}

// Payment builds the payment item described by p. A payment amount selects
// the standard payment: empty module bytes called with a single U512 arg
// named "amount". It takes no other payment args.
func Payment(p PaymentStrParams) (ExecutableItem, error) {
	var item ExecutableItem
	hasBytes := flag(len(p.Bytes) > 0)
	entryPoint := Field{"payment_entry_point", p.EntryPoint}
	version := Field{"payment_version", p.Version}

	err := CheckExactlyOne(
		paymentContext,
		Source{
			Name:  "payment_amount",
			Value: p.Amount,
			RequiresEmpty: []Field{
				entryPoint,
				version,
				{"payment_args", strings.Join(p.ArgsSimple, ", ")},
				{"payment_args_json", p.ArgsJSON},
			},
		},
		Source{Name: "payment_hash", Value: p.Hash, Requires: []Field{entryPoint}, RequiresEmpty: []Field{version}},
		Source{Name: "payment_name", Value: p.Name, Requires: []Field{entryPoint}, RequiresEmpty: []Field{version}},
		Source{Name: "payment_package_hash", Value: p.PackageHash, Requires: []Field{entryPoint}},
		Source{Name: "payment_package_name", Value: p.PackageName, Requires: []Field{entryPoint}},
		Source{
			Name:          "payment_path",
			Value:         p.Path,
			RequiresEmpty: []Field{entryPoint, version, {"has_payment_bytes", hasBytes}},
		},
		Source{
			Name:          "has_payment_bytes",
			Value:         hasBytes,
			RequiresEmpty: []Field{entryPoint, version, {"payment_path", p.Path}},
		},
	)
	if err != nil {
		return item, err
	}
	if err := validate.Struct(&p); err != nil {
		return item, errors.Wrap(err, "invalid payment params")
	}

	paymentArgs, err := args.FromSimpleOrJSON(paymentContext, p.ArgsSimple, p.ArgsJSON)
	if err != nil {
		return item, err
	}

	if p.Amount != "" {
		standard, err := StandardPayment(p.Amount)
		if err != nil {
			return item, err
		}
		item = ExecutableItem{Kind: ItemModuleBytes, ModuleBytes: []byte{}, Args: standard}
		logger.Debug("built standard payment item", "amount", p.Amount)
		return item, nil
	}

	item, err = storedItem(
		storedParams{
			hash:        p.Hash,
			name:        p.Name,
			packageHash: p.PackageHash,
			packageName: p.PackageName,
			version:     p.Version,
			entryPoint:  p.EntryPoint,
		},
		paymentArgs,
	)
	if err != nil || item.Kind != ItemModuleBytes {
		return item, err
	}

	moduleBytes := p.Bytes
	if len(moduleBytes) == 0 {
		moduleBytes, err = ioutil.ReadFile(p.Path)
		if err != nil {
			return ExecutableItem{}, errors.Wrapf(err, "unable to read payment file at '%s'", p.Path)
		}
	}
	item.ModuleBytes = moduleBytes
	logger.Debug("built payment item", "kind", item.Kind, "args", paymentArgs.Len())
	return item, nil
}

// StandardPayment returns the args of the standard payment for a decimal
// amount of motes.
func StandardPayment(amount string) (cltype.RuntimeArgs, error) {
	var out cltype.RuntimeArgs
	if amount == "" {
		return out, errors.New("invalid CLValue error: payment amount must not be empty")
	}
	v, ok := new(big.Int).SetString(amount, 10)
	if !ok {
		return out, errors.Errorf("failed to parse 'amount' as u128, u256, or u512: invalid decimal %q", amount)
	}
	value, err := cltype.NewU512(v)
	if err != nil {
		return out, errors.Wrap(err, "failed to parse 'amount' as u128, u256, or u512")
	}
	out.Insert(StandardPaymentArgName, value)
	return out, nil
}

type storedParams struct {
	hash        string
	name        string
	packageHash string
	packageName string
	version     string
	entryPoint  string
}

// storedItem resolves the stored contract variants in precedence order. It
// returns an ItemModuleBytes item with no bytes when none of them is set.
func storedItem(p storedParams, itemArgs cltype.RuntimeArgs) (ExecutableItem, error) {
	if p.name != "" {
		return ExecutableItem{
			Kind:       ItemStoredContractByName,
			Name:       p.name,
			EntryPoint: p.entryPoint,
			Args:       itemArgs,
		}, nil
	}
	if p.hash != "" {
		hash, err := ParseContractHash(p.hash)
		if err != nil {
			return ExecutableItem{}, err
		}
		return ExecutableItem{
			Kind:       ItemStoredContractByHash,
			Hash:       hash,
			EntryPoint: p.entryPoint,
			Args:       itemArgs,
		}, nil
	}

	version, err := parseVersion(p.version)
	if err != nil {
		return ExecutableItem{}, err
	}
	if p.packageName != "" {
		return ExecutableItem{
			Kind:       ItemStoredVersionedContractByName,
			Name:       p.packageName,
			Version:    version,
			EntryPoint: p.entryPoint,
			Args:       itemArgs,
		}, nil
	}
	if p.packageHash != "" {
		hash, err := ParseContractHash(p.packageHash)
		if err != nil {
			return ExecutableItem{}, err
		}
		return ExecutableItem{
			Kind:       ItemStoredVersionedContractByHash,
			Hash:       hash,
			Version:    version,
			EntryPoint: p.entryPoint,
			Args:       itemArgs,
		}, nil
	}
	return ExecutableItem{Kind: ItemModuleBytes, Args: itemArgs}, nil
}

// ParseContractHash accepts a contract hash as 64 hex characters or as a
// formatted hash key, e.g. hash-<64 hex chars>.
func ParseContractHash(in string) (crypto.Hash, error) {
	hash, hexErr := crypto.NewHashFromHex(in)
	if hexErr == nil {
		return hash, nil
	}
	key, err := types.ParseKey(in)
	if err == nil && key.Tag() == types.KeyTagHash {
		return crypto.Hash(key.Addr()), nil
	}
	return crypto.ZeroHash, errors.Wrap(hexErr, "failed to parse 'contract hash' as a hash digest")
}

func parseVersion(in string) (*uint32, error) {
	if in == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(in, 10, 32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse 'version' as an integer")
	}
	version := uint32(v)
	return &version, nil
}
