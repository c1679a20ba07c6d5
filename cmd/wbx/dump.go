package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/openairsync/wbxml/dump"
)

func runDump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := []dump.Option{dump.WithColor(cfg.colorEnabled(cc.Out))}
	if len(args) == 0 {
		return dump.Dump(cc.In, cc.Out, opts...)
	}
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = dump.Dump(f, cc.Out, opts...)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
