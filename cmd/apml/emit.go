package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/debug"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/parse"
	"github.com/aosc-dev/go-apml/report"
)

func emitCmd(cfg *EmitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Emit.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(args) {
		if err := emitOne(cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func emitOne(cc *cli.Context, file string) error {
	doc, src, err := loadDoc(cc, file)
	if err != nil {
		return err
	}
	out := emit.Bytes(doc)
	if !debug.Quiet() {
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	if !bytes.Equal(out, src) {
		fmt.Fprint(os.Stderr, report.Diff(file, string(src), string(out)))
		err := fmt.Errorf("%s: re-emission differs from input", file)
		report.Render(os.Stderr, report.New(report.Error, err.Error()))
		return err
	}
	return nil
}

// loadDoc reads and tolerantly parses one input, rendering any
// diagnostics to stderr.  Diagnostics do not fail the load; the
// returned document covers every input byte regardless.
func loadDoc(cc *cli.Context, file string) (*lst.Document, []byte, error) {
	src, err := readInput(cc, file)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return nil, nil, err
	}
	doc, diags := parse.ParseTolerant(src, parse.WithFilename(file))
	msgs := report.FromParse(file, src, diags)
	for i := range msgs {
		report.Render(os.Stderr, &msgs[i])
	}
	return doc, src, nil
}
