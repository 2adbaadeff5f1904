package main

import (
	"github.com/pescuma/stratdash/lib/consoles"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/server"
)

type ServerCmd struct {
	Port uint `default:"${port}" env:"STRATDASH_PORT" help:"Port to listen to."`
}

func (c *ServerCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, catalog *model.Catalog) error {
		return server.Run(console, catalog, &server.Options{
			Port: c.Port,
		})
	})
}
