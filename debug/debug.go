package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Eval  bool
	Edit  bool
	Tree  bool

	Quiet bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("APML_DEBUG_LEX")
	d.Parse = boolEnv("APML_DEBUG_PARSE")
	d.Eval = boolEnv("APML_DEBUG_EVAL")
	d.Edit = boolEnv("APML_DEBUG_EDIT")
	d.Tree = boolEnv("APML_DEBUG_TREE")
	d.Quiet = quietEnv("QUIET")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// quietEnv treats presence as true unless the value parses as false,
// so QUIET=1, QUIET=true and a bare QUIET= all silence the tools.
func quietEnv(v string) bool {
	x, ok := os.LookupEnv(v)
	if !ok {
		return false
	}
	if x == "" {
		return true
	}
	b, err := strconv.ParseBool(x)
	if err != nil {
		return true
	}
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Edit() bool {
	return d.Edit
}
func Tree() bool {
	return d.Tree
}

// Quiet reports whether the QUIET environment toggle is on. The
// command-line tools use it to suppress incidental stdout while test
// runs sweep a whole packaging tree.
func Quiet() bool {
	return d.Quiet
}
