package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/stats"
)

type RegionsCmd struct {
	cmdWithCriteria
}

func (c *RegionsCmd) Run(ctx *context) error {
	catalog := ctx.ws.Catalog()

	result, regions, err := c.apply(catalog)
	if err != nil {
		return err
	}

	points, err := stats.MapPoints(catalog, result, regions)
	if err != nil {
		return err
	}

	if len(points) == 0 {
		fmt.Fprintf(ctx.out, "No regions to show\n")
		return nil
	}

	printPoints(ctx.out, points, true)

	return nil
}

func printPoints(out io.Writer, points []*model.MapPoint, coordinates bool) {
	width := maxLen(lo.Map(points, func(p *model.MapPoint, _ int) string { return p.Region }))

	for _, p := range points {
		if coordinates {
			fmt.Fprintf(out, "   %-*v %9.4f %10.4f %3v\n", width, p.Region, p.Latitude, p.Longitude, p.Count)
		} else {
			fmt.Fprintf(out, "   %-*v %3v\n", width, p.Region, p.Count)
		}
	}
}
