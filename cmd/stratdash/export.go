package main

import (
	"bytes"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/stratdash/lib/export"
)

type ExportCmd struct {
	cmdWithCriteria

	Output string `short:"o" default:"${output}" help:"File to write. Use - for stdout."`
}

func (c *ExportCmd) Run(ctx *context) error {
	result, _, err := c.apply(ctx.ws.Catalog())
	if err != nil {
		return err
	}

	rows := export.ToRows(result)

	var buf bytes.Buffer
	err = export.WriteCSV(&buf, rows)
	if err != nil {
		return err
	}

	if c.Output == "-" {
		_, err = ctx.out.Write(buf.Bytes())
		return err
	}

	err = os.WriteFile(c.Output, buf.Bytes(), 0o644)
	if err != nil {
		return err
	}

	ctx.ws.Console().Printf("Wrote %v (%v) to %v\n",
		pluralize.NewClient().Pluralize("row", len(rows), true), humanize.Bytes(uint64(buf.Len())), c.Output)

	return nil
}
