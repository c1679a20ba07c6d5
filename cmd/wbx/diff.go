package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/openairsync/wbxml/dump"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := renderFile(args[0])
	if err != nil {
		return err
	}
	to, err := renderFile(args[1])
	if err != nil {
		return err
	}

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if cfg.colorEnabled(cc.Out) {
		return writeColorDiff(cc, diffs)
	}
	return writeMarkedDiff(cc, diffs)
}

func renderFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	buf := &bytes.Buffer{}
	if err := dump.Dump(f, buf); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return buf.String(), nil
}

func writeColorDiff(cc *cli.Context, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffInsert:
			_, err = fmt.Fprint(cc.Out, color.GreenString("%s", d.Text))
		case diffpatch.DiffDelete:
			_, err = fmt.Fprint(cc.Out, color.RedString("%s", d.Text))
		case diffpatch.DiffEqual:
			_, err = fmt.Fprint(cc.Out, d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeMarkedDiff(cc *cli.Context, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffInsert:
			_, err = fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
		case diffpatch.DiffDelete:
			_, err = fmt.Fprintf(cc.Out, "{-%s-}", d.Text)
		case diffpatch.DiffEqual:
			_, err = fmt.Fprint(cc.Out, d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
