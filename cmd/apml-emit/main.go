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
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

type Config struct {
	Emit *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	return cli.NewCommandAt(&cfg.Emit, "apml-emit").
		WithSynopsis("apml-emit [files]").
		WithDescription("Parse APML files tolerantly and write them back out, verifying the round trip.").
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Emit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, file := range args {
		if err := emitFile(cc, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func emitFile(cc *cli.Context, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return err
	}
	doc, diags := parse.ParseTolerant(src, parse.WithFilename(file))
	msgs := report.FromParse(file, src, diags)
	for i := range msgs {
		report.Render(os.Stderr, &msgs[i])
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
