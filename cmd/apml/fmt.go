package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	apml "github.com/aosc-dev/go-apml"
	"github.com/aosc-dev/go-apml/report"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := guardWrite(cfg.Write, args); err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(args) {
		if err := fmtOne(cfg, cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fmtOne(cfg *FmtConfig, cc *cli.Context, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return err
	}
	out, err := apml.Format(src)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, src, err))
		return err
	}
	if cfg.Diff {
		fmt.Fprint(cc.Out, report.Diff(file, string(src), string(out)))
	}
	if cfg.Write && !bytes.Equal(out, src) {
		if err := os.WriteFile(file, out, 0644); err != nil {
			report.Render(os.Stderr, report.FromError(file, nil, err))
			return err
		}
	}
	if !cfg.Diff && !cfg.Write {
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// guardWrite rejects -w on stdin input, which has no file to rewrite.
func guardWrite(write bool, args []string) error {
	if !write {
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: -w needs file arguments, not stdin", cli.ErrUsage)
	}
	for _, f := range args {
		if f == "-" {
			return fmt.Errorf("%w: cannot combine -w with stdin", cli.ErrUsage)
		}
	}
	return nil
}
