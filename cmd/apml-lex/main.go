package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/report"
	"github.com/aosc-dev/go-apml/token"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

type Config struct {
	Lex *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	return cli.NewCommandAt(&cfg.Lex, "apml-lex").
		WithSynopsis("apml-lex [files]").
		WithDescription("Dump the token stream of APML files and check they re-emit byte for byte.").
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Lex.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		if err := lexFile(cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func lexFile(cc *cli.Context, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return err
	}
	toks, lexErrs := token.Tokenize(nil, src)
	if !debug.Quiet() {
		for i := range toks {
			fmt.Fprintln(cc.Out, toks[i].Info())
		}
	}
	for _, le := range lexErrs {
		report.Render(os.Stderr, report.New(report.Warning, le.Err.Error()).
			Snippet(report.SnippetAt(file, src, le.Pos)))
	}
	doc, _ := parse.ParseTolerant(src, parse.WithFilename(file))
	out := emit.Bytes(doc)
	if !bytes.Equal(out, src) {
		fmt.Fprint(os.Stderr, report.Diff(file, string(src), string(out)))
		err := fmt.Errorf("%s: re-emission differs from input", file)
		report.Render(os.Stderr, report.New(report.Error, err.Error()))
		return err
	}
	return nil
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
