package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/eval"
	"github.com/aosc-dev/go-apml/format"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/report"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

type Config struct {
	Eval *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	return cli.NewCommandAt(&cfg.Eval, "apml-eval").
		WithSynopsis("apml-eval [files]").
		WithDescription("Evaluate APML files and print the resulting variables, sorted by name.").
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		if err := evalFile(cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func evalFile(cc *cli.Context, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return err
	}
	doc, err := parse.Parse(src, parse.WithFilename(file))
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, src, err))
		return err
	}
	env, err := eval.Eval(doc)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, src, err))
		return err
	}
	if debug.Quiet() {
		return nil
	}
	out, err := format.Marshal(env, format.EnvFormat)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return src, nil
}
