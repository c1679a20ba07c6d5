package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/openairsync/wbxml/codepages"
	"github.com/openairsync/wbxml/token"
)

func runPages(cfg *PagesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pages.Parse(cc, args)
	if err != nil {
		return err
	}
	reg := codepages.Builtin()
	var pages []int
	if len(args) == 0 {
		for p := 0; p < reg.Pages(); p++ {
			pages = append(pages, p)
		}
	} else {
		for _, a := range args {
			p, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("%w: bad page %q", cli.ErrUsage, a)
			}
			if !reg.Valid(p) {
				return fmt.Errorf("%w: page %d out of range (0-%d)", cli.ErrUsage, p, reg.Pages()-1)
			}
			pages = append(pages, p)
		}
	}
	for _, p := range pages {
		tags := reg.Tags(p)
		fmt.Fprintf(cc.Out, "page %d: %s (%d tags)\n", p, reg.PageName(p), len(tags))
		if !cfg.Tags {
			continue
		}
		for i, name := range tags {
			fmt.Fprintf(cc.Out, "\t%#02x %s\n", token.TagBase+i, name)
		}
	}
	return nil
}
