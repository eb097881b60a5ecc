package apml

import (
	"fmt"
	"os"

	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/parse"
)

// Eval parses src strictly and returns the bindings it makes.
func Eval(src []byte) (eval.Env, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	return eval.Eval(doc)
}

// EvalFile reads the file at path and evaluates it.
func EvalFile(path string) (eval.Env, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	env, err := Eval(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return env, nil
}
