package main

import (
	"github.com/pescuma/stratdash/lib/storages/files"
)

type DumpCatalogCmd struct {
	Format string `short:"f" default:"yaml" enum:"json,yaml" help:"Output format (json or yaml)."`
}

func (c *DumpCatalogCmd) Run(ctx *context) error {
	contents, err := files.Encode(ctx.ws.Catalog(), files.Format(c.Format))
	if err != nil {
		return err
	}

	_, err = ctx.out.Write(contents)
	if err != nil {
		return err
	}

	if len(contents) > 0 && contents[len(contents)-1] != '\n' {
		_, err = ctx.out.Write([]byte("\n"))
	}

	return err
}
