package cltype

import (
	"encoding/json"
	"io"

	"cspr/bytesrepr"

	"github.com/pkg/errors"
)

type NamedArg struct {
	Name  string
	Value CLValue
}

func (a NamedArg) Encode(w io.Writer) error {
	return bytesrepr.EncodeFields(w, a.Name, a.Value)
}

func (a *NamedArg) Decode(r io.Reader) error {
	return bytesrepr.DecodeFields(r, &a.Name, &a.Value)
}

// MarshalJSON renders the arg as a [name, value] pair.
func (a NamedArg) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Name, a.Value})
}

func (a *NamedArg) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.New("named arg must be a [name, value] pair")
	}
	if err := json.Unmarshal(pair[0], &a.Name); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &a.Value)
}

// RuntimeArgs is an ordered sequence of named arguments. Names are not
// deduplicated: inserting a name twice keeps both entries in order.
type RuntimeArgs struct {
	args []NamedArg
}

func NewRuntimeArgs(args ...NamedArg) RuntimeArgs {
	out := RuntimeArgs{}
	for _, arg := range args {
		out.InsertNamed(arg)
	}
	return out
}

func (r *RuntimeArgs) Insert(name string, value CLValue) {
	r.args = append(r.args, NamedArg{Name: name, Value: value})
}

func (r *RuntimeArgs) InsertNamed(arg NamedArg) {
	r.args = append(r.args, arg)
}

// Get returns the first arg with the given name.
func (r RuntimeArgs) Get(name string) (CLValue, bool) {
	for _, arg := range r.args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return CLValue{}, false
}

func (r RuntimeArgs) Len() int {
	return len(r.args)
}

func (r RuntimeArgs) IsEmpty() bool {
	return len(r.args) == 0
}

// Args returns a copy of the args in insertion order.
func (r RuntimeArgs) Args() []NamedArg {
	out := make([]NamedArg, len(r.args))
	copy(out, r.args)
	return out
}

func (r RuntimeArgs) Encode(w io.Writer) error {
	if err := bytesrepr.WriteLength(w, len(r.args)); err != nil {
		return err
	}
	for _, arg := range r.args {
		if err := arg.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (r *RuntimeArgs) Decode(rd io.Reader) error {
	l, err := bytesrepr.ReadLength(rd)
	if err != nil {
		return err
	}
	if l > bytesrepr.DefaultMaxVariableArrayLen {
		return errors.New("too many runtime args to decode")
	}
	args := make([]NamedArg, l)
	for i := range args {
		if err := args[i].Decode(rd); err != nil {
			return err
		}
	}
	r.args = args
	return nil
}

func (r RuntimeArgs) MarshalJSON() ([]byte, error) {
	if r.args == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.args)
}

func (r *RuntimeArgs) UnmarshalJSON(b []byte) error {
	var args []NamedArg
	if err := json.Unmarshal(b, &args); err != nil {
		return err
	}
	r.args = args
	return nil
}
