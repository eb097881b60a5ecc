package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/aosc-dev/go-apml/edit"
	"github.com/aosc-dev/go-apml/emit"
	"github.com/aosc-dev/go-apml/lst"
	"github.com/aosc-dev/go-apml/report"
)

// patchCmd applies an RFC 6902 JSON patch to the top-level keys of
// APML files.  A document is exposed to the patch as a JSON object
// with scalar values as strings and arrays as arrays of strings; keys
// whose last assignment uses += are not part of the object and are
// left alone.  The patched object is folded back through the edit
// layer, so untouched lines keep their bytes.
func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: at most one of -s and -f", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patchArg, files := args[0], args[1:]
	patchSrc := []byte(patchArg)
	if !cfg.String {
		patchSrc, err = os.ReadFile(patchArg)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", patchArg, err)
		}
	}
	ops, err := jsonpatch.DecodePatch(patchSrc)
	if err != nil {
		return fmt.Errorf("could not decode patch: %w", err)
	}
	if err := guardWrite(cfg.Write, files); err != nil {
		return err
	}
	failed := false
	for _, file := range orStdin(files) {
		if err := patchOne(cfg, cc, ops, file); err != nil {
			failed = true
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func patchOne(cfg *PatchConfig, cc *cli.Context, ops jsonpatch.Patch, file string) error {
	doc, src, err := loadDoc(cc, file)
	if err != nil {
		return err
	}
	before := docObject(doc)
	bj, err := json.Marshal(before)
	if err != nil {
		return err
	}
	aj, err := ops.Apply(bj)
	if err != nil {
		report.Render(os.Stderr, report.New(report.Error,
			fmt.Sprintf("%s: %v", file, err)))
		return err
	}
	var after map[string]any
	if err := json.Unmarshal(aj, &after); err != nil {
		report.Render(os.Stderr, report.New(report.Error,
			fmt.Sprintf("%s: patch result is not an object: %v", file, err)))
		return err
	}
	if err := applyObject(doc, before, after); err != nil {
		report.Render(os.Stderr, report.New(report.Error,
			fmt.Sprintf("%s: %v", file, err)))
		return err
	}
	return writeResult(cc, cfg.Write, file, src, emit.Bytes(doc))
}

// docObject projects the top-level assignments of doc into a JSON
// object: scalars as strings, arrays as arrays of strings.
func docObject(doc *lst.Document) map[string]any {
	obj := map[string]any{}
	for _, key := range doc.Keys() {
		if scs, ok := edit.GetArray(doc, key); ok {
			elems := make([]string, 0, len(scs))
			for _, sc := range scs {
				elems = append(elems, sc.Lit())
			}
			obj[key] = elems
			continue
		}
		if s, ok := edit.GetScalar(doc, key); ok {
			obj[key] = s
		}
	}
	return obj
}

// applyObject folds the patched object back into doc: keys the patch
// removed are deleted, changed scalars rewritten in place, changed
// arrays rebuilt element by element.
func applyObject(doc *lst.Document, before, after map[string]any) error {
	for key := range before {
		if _, ok := after[key]; !ok {
			edit.RemoveEntry(doc, key)
		}
	}
	keys := make([]string, 0, len(after))
	for key := range after {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch v := after[key].(type) {
		case string:
			if s, ok := before[key].(string); ok && s == v {
				continue
			}
			edit.SetScalar(doc, key, v)
		case []any:
			elems := make([]string, 0, len(v))
			for _, e := range v {
				s, ok := e.(string)
				if !ok {
					return fmt.Errorf("patched %s: element %v is not a string", key, e)
				}
				elems = append(elems, s)
			}
			if old, ok := before[key].([]string); ok && slices.Equal(old, elems) {
				continue
			}
			edit.RemoveEntry(doc, key)
			for _, e := range elems {
				edit.AppendArrayElement(doc, key, e)
			}
		default:
			return fmt.Errorf("patched %s: value %v is not a string or array of strings", key, v)
		}
	}
	return nil
}
