package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/report"
	"github.com/aosc-dev/go-apml/token"
)

func lexCmd(cfg *LexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lex.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(args) {
		if err := lexOne(cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func lexOne(cc *cli.Context, file string) error {
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
	if out := emit.Bytes(doc); !bytes.Equal(out, src) {
		fmt.Fprint(os.Stderr, report.Diff(file, string(src), string(out)))
		err := fmt.Errorf("%s: re-emission differs from input", file)
		report.Render(os.Stderr, report.New(report.Error, err.Error()))
		return err
	}
	return nil
}
