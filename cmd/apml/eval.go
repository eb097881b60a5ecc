package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/format"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/report"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(args) {
		if err := evalOne(cfg, cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func evalOne(cfg *EvalConfig, cc *cli.Context, file string) error {
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
	if debug.Quiet() {
		return nil
	}
	if cfg.OutFormat.IsEnv() && cfg.colored(cc.Out) {
		return writeEnvColored(cc.Out, env, cfg.Color)
	}
	out, err := format.Marshal(env, cfg.OutFormat)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

// evalSrc parses src strictly and evaluates it.
func evalSrc(file string, src []byte) (eval.Env, error) {
	doc, err := parse.Parse(src, parse.WithFilename(file))
	if err != nil {
		return nil, err
	}
	return eval.Eval(doc)
}

// envLine renders one binding the way the env format does.
func envLine(name string, v eval.Value) string {
	if v.Kind == eval.ArrayKind {
		return fmt.Sprintf("%s=(%s)", name, strings.Join(v.Arr, " "))
	}
	return fmt.Sprintf("%s=%s", name, v.Str)
}

func writeEnvColored(w io.Writer, env eval.Env, force bool) error {
	key := color.New(color.FgCyan, color.Bold)
	if force {
		key.EnableColor()
	}
	for _, name := range env.Names() {
		v := env[name]
		var err error
		if v.Kind == eval.ArrayKind {
			_, err = fmt.Fprintf(w, "%s=(%s)\n", key.Sprint(name), strings.Join(v.Arr, " "))
		} else {
			_, err = fmt.Fprintf(w, "%s=%s\n", key.Sprint(name), v.Str)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
