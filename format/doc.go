// Package format renders evaluated environments for output.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	d, err := format.Marshal(env, f)
//
// Formats are env (KEY=value lines), json, and yaml; all three sort
// bindings by name so dumps diff cleanly.
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/eval - produces the environments rendered here
package format
