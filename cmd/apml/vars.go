package main

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/report"
)

// varsCmd prints the evaluated variables a predicate selects.  The
// predicate is an expr expression over name, value and kind, e.g.
//
//	apml vars 'kind == "array"' spec
//	apml vars 'name startsWith "PKG" and value contains "zlib"' spec
func varsCmd(cfg *VarsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Vars.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: vars requires a predicate", cli.ErrUsage)
	}
	predicate, files := args[0], orStdin(args[1:])
	program, err := expr.Compile(predicate, expr.Env(varEnv("", eval.Value{})))
	if err != nil {
		return fmt.Errorf("%w: bad predicate: %w", cli.ErrUsage, err)
	}
	failed := false
	for _, file := range files {
		if err := varsOne(cc, program, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func varsOne(cc *cli.Context, program *vm.Program, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return err
	}
	env, err := evalSrc(file, src)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, src, err))
		return err
	}
	for _, name := range env.Names() {
		out, err := vm.Run(program, varEnv(name, env[name]))
		if err != nil {
			report.Render(os.Stderr, report.New(report.Error,
				fmt.Sprintf("predicate failed on %s: %v", name, err)))
			return err
		}
		keep, ok := out.(bool)
		if !ok {
			report.Render(os.Stderr, report.New(report.Error,
				fmt.Sprintf("predicate evaluated to %T, want bool", out)))
			return fmt.Errorf("predicate evaluated to %T", out)
		}
		if keep {
			fmt.Fprintln(cc.Out, envLine(name, env[name]))
		}
	}
	return nil
}

// varEnv is the expression environment for one binding.  Arrays appear
// with their elements joined by single spaces, the same shape += and
// "${NAME[@]}" produce.
func varEnv(name string, v eval.Value) map[string]any {
	return map[string]any{
		"name":  name,
		"value": v.String(),
		"kind":  v.Kind.String(),
	}
}
