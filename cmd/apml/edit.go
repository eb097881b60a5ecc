package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/edit"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/report"
)

var errKeyNotFound = errors.New("key not found")

func getCmd(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a key", cli.ErrUsage)
	}
	key, files := args[0], orStdin(args[1:])
	failed := false
	for _, file := range files {
		if err := getOne(cc, key, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getOne(cc *cli.Context, key, file string) error {
	doc, _, err := loadDoc(cc, file)
	if err != nil {
		return err
	}
	if s, ok := edit.GetScalar(doc, key); ok {
		fmt.Fprintln(cc.Out, s)
		return nil
	}
	if scs, ok := edit.GetArray(doc, key); ok {
		for _, sc := range scs {
			fmt.Fprintln(cc.Out, sc.Lit())
		}
		return nil
	}
	report.Render(os.Stderr, report.New(report.Error,
		fmt.Sprintf("%s: %q has no plain assignment", file, key)))
	return errKeyNotFound
}

func setCmd(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a key and a value", cli.ErrUsage)
	}
	key, val, files := args[0], args[1], args[2:]
	if err := guardWrite(cfg.Write, files); err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(files) {
		if err := setOne(cfg, cc, key, val, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func setOne(cfg *SetConfig, cc *cli.Context, key, val, file string) error {
	doc, src, err := loadDoc(cc, file)
	if err != nil {
		return err
	}
	edit.SetScalar(doc, key, val)
	return writeResult(cc, cfg.Write, file, src, emit.Bytes(doc))
}

func addCmd(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: add requires a key and an element", cli.ErrUsage)
	}
	key, elem, files := args[0], args[1], args[2:]
	if err := guardWrite(cfg.Write, files); err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(files) {
		if err := addOne(cfg, cc, key, elem, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func addOne(cfg *AddConfig, cc *cli.Context, key, elem, file string) error {
	doc, src, err := loadDoc(cc, file)
	if err != nil {
		return err
	}
	edit.AppendArrayElement(doc, key, elem)
	return writeResult(cc, cfg.Write, file, src, emit.Bytes(doc))
}

func rmCmd(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a key", cli.ErrUsage)
	}
	key, files := args[0], args[1:]
	if err := guardWrite(cfg.Write, files); err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(files) {
		if err := rmOne(cfg, cc, key, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func rmOne(cfg *RmConfig, cc *cli.Context, key, file string) error {
	doc, src, err := loadDoc(cc, file)
	if err != nil {
		return err
	}
	if !edit.RemoveEntry(doc, key) {
		report.Render(os.Stderr, report.New(report.Warning,
			fmt.Sprintf("%s: %q is never assigned", file, key)))
	}
	return writeResult(cc, cfg.Write, file, src, emit.Bytes(doc))
}

// writeResult hands the edited document back: in place with -w, to the
// command output otherwise.  In-place writes that would not change the
// file are skipped.
func writeResult(cc *cli.Context, write bool, file string, src, out []byte) error {
	if !write {
		_, err := cc.Out.Write(out)
		return err
	}
	if bytes.Equal(out, src) {
		return nil
	}
	if err := os.WriteFile(file, out, 0644); err != nil {
		report.Render(os.Stderr, report.FromError(file, nil, err))
		return err
	}
	return nil
}
