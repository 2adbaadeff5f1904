package main

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/pescuma/stratdash/lib/consoles"
	"github.com/pescuma/stratdash/lib/export"
	"github.com/pescuma/stratdash/lib/server"
	"github.com/pescuma/stratdash/lib/workspace"
)

var cli struct {
	Catalog string `short:"c" env:"STRATDASH_CATALOG" help:"Catalog to load (.json, .yaml, .yml or .sqlite). Default is the builtin catalog."`

	Show        ShowCmd        `cmd:"" help:"Show the dashboard of the selected business units."`
	Regions     RegionsCmd     `cmd:"" help:"Show the map markers of the selected regions."`
	Export      ExportCmd      `cmd:"" help:"Export the selected business units to CSV."`
	DumpCatalog DumpCatalogCmd `cmd:"" name:"catalog" help:"Print the loaded catalog."`
	Server      ServerCmd      `cmd:"" help:"Start the dashboard API server."`
}

type context struct {
	ws  *workspace.Workspace
	out io.Writer
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.ShortUsageOnError(),
		kong.Vars{
			"output": export.FileName,
			"port":   strconv.Itoa(server.DefaultPort),
		},
	)

	ws, err := workspace.NewWorkspaceWithConsole(cli.Catalog, consoles.NewWriterConsole(os.Stderr))
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws:  ws,
		out: os.Stdout,
	})
	_ = ws.Close()
	ctx.FatalIfErrorf(err)
}
