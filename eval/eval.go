package eval

import (
	"sort"
	"strings"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/lst"
)

type ValueKind int

const (
	ScalarKind ValueKind = iota
	ArrayKind
)

func (k ValueKind) String() string {
	return map[ValueKind]string{
		ScalarKind: "scalar",
		ArrayKind:  "array",
	}[k]
}

// Value is the binding of one variable after evaluation.  Scalars keep
// their text in Str, arrays their elements in Arr.
type Value struct {
	Kind ValueKind
	Str  string
	Arr  []string
}

func Scalar(s string) Value {
	return Value{Kind: ScalarKind, Str: s}
}

func Array(elems ...string) Value {
	return Value{Kind: ArrayKind, Arr: elems}
}

// String renders the value as a single word.  Arrays join their
// elements with single spaces, which is also how a substitution of an
// array behaves in scalar position.
func (v Value) String() string {
	if v.Kind == ArrayKind {
		return strings.Join(v.Arr, " ")
	}
	return v.Str
}

// Strings renders the value as words.  A scalar is one word, even when
// empty.
func (v Value) Strings() []string {
	if v.Kind == ArrayKind {
		return v.Arr
	}
	return []string{v.Str}
}

// Empty reports an empty scalar or a zero-element array.  The :-, :+
// and :? substitution forms test this.
func (v Value) Empty() bool {
	if v.Kind == ArrayKind {
		return len(v.Arr) == 0
	}
	return v.Str == ""
}

// Env holds the bindings evaluation produced, keyed by variable name.
type Env map[string]Value

// Names returns the bound names, sorted.
func (e Env) Names() []string {
	res := make([]string, 0, len(e))
	for k := range e {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

type evalOpts struct {
	base Env
}

type Option func(*evalOpts)

// WithEnv seeds evaluation with bindings the document itself does not
// make, typically the spec file's variables when evaluating a
// package's defines.
func WithEnv(base Env) Option {
	return func(o *evalOpts) {
		o.base = base
	}
}

// Eval computes the bindings doc makes, walking assignments in file
// order.  Each value is substituted against the environment before its
// assignment binds, so self-reference resolves to the previous
// binding, and a later assignment to the same name wins.  The first
// error stops evaluation with no partial result.
//
// Comment, blank and opaque entries are skipped, so a document from a
// tolerant parse still evaluates as far as its shape allows.
func Eval(doc *lst.Document, opts ...Option) (Env, error) {
	o := &evalOpts{}
	for _, f := range opts {
		f(o)
	}
	env := Env{}
	for k, v := range o.base {
		env[k] = v
	}
	for _, e := range doc.Entries {
		if e.Kind != lst.EntryAssign {
			continue
		}
		v, err := bind(e, env)
		if err != nil {
			return nil, err
		}
		env[e.Key] = v
		if debug.Eval() {
			debug.Logf("eval: %s%s%q\n", e.Key, e.Op, v.String())
		}
	}
	return env, nil
}

// bind computes the value entry e assigns, reading prior bindings from
// env.  Appends desugar against the previous binding: NAME+="V" is
// NAME="${NAME}V" and NAME+=(V) is NAME=("${NAME[@]}" V), so an append
// to an unset name is an undefined variable.
func bind(e *lst.Entry, env Env) (Value, error) {
	switch val := e.Val.(type) {
	case *lst.Scalar:
		s, err := expandScalar(val, env)
		if err != nil {
			return Value{}, err
		}
		if e.Op == lst.OpAppend {
			prior, ok := env[e.Key]
			if !ok {
				return Value{}, undefinedErr(e.Key, e.Pos)
			}
			return Scalar(prior.String() + s), nil
		}
		return Scalar(s), nil
	case *lst.Array:
		var elems []string
		for _, sc := range val.Scalars() {
			es, err := expandElement(sc, env)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, es...)
		}
		if e.Op == lst.OpAppend {
			prior, ok := env[e.Key]
			if !ok {
				return Value{}, undefinedErr(e.Key, e.Pos)
			}
			elems = append(append([]string(nil), prior.Strings()...), elems...)
		}
		return Array(elems...), nil
	}
	// a nil value reads as the empty scalar, as in `KEY=`
	if e.Op == lst.OpAppend {
		prior, ok := env[e.Key]
		if !ok {
			return Value{}, undefinedErr(e.Key, e.Pos)
		}
		return Scalar(prior.String()), nil
	}
	return Scalar(""), nil
}
