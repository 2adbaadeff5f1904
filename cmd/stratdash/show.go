package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/stats"
	"github.com/pescuma/stratdash/lib/utils"
)

type ShowCmd struct {
	cmdWithCriteria

	Width  int  `short:"w" help:"Truncate long texts to this width. 0 does not truncate."`
	Simple bool `short:"s" help:"Only show business unit names."`
}

func (c *ShowCmd) Run(ctx *context) error {
	result, regions, err := c.apply(ctx.ws.Catalog())
	if err != nil {
		return err
	}

	return c.print(ctx.out, ctx.ws.Catalog(), result, regions)
}

func (c *ShowCmd) print(out io.Writer, catalog *model.Catalog, result *model.FilteredResult, regions []string) error {
	if result.IsEmpty() {
		fmt.Fprintf(out, "%v\n", stats.ErrEmptySelection)
		return nil
	}

	if c.Simple {
		for _, u := range result.List() {
			fmt.Fprintf(out, "%v\n", u.Name)
		}
		return nil
	}

	summary, err := stats.Summarize(result, regions)
	if err != nil {
		return err
	}

	pc := pluralize.NewClient()

	fmt.Fprintf(out, "%v selected, average potential: %v / 10\n\n",
		pc.Pluralize("business unit", summary.Count, true), stats.FormatAverage(summary.AveragePotential, 1))

	fmt.Fprintf(out, "Business units:    %v\n", summary.Count)
	fmt.Fprintf(out, "Average potential: %v / 10\n", stats.FormatAverage(summary.AveragePotential, 2))
	fmt.Fprintf(out, "Regions covered:   %v\n", len(summary.CoveredRegions))
	fmt.Fprintln(out)

	for _, u := range result.List() {
		fmt.Fprintf(out, "%v\n", u.Name)
		fmt.Fprintf(out, "   Focus: %v\n", c.text(u.Focus))
		fmt.Fprintf(out, "   Growth potential: %v / 10\n", u.Potential)
		fmt.Fprintf(out, "   Strategy: %v\n", c.text(u.Strategy))
		fmt.Fprintf(out, "   Target regions: %v\n", c.text(u.JoinedRegions()))
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Growth potential\n")
	radar := stats.Radar(result)
	width := maxLen(radar.Categories)
	for i, name := range radar.Categories[:len(radar.Categories)-1] {
		score := radar.Scores[i]
		fmt.Fprintf(out, "   %-*v %2v %v\n", width, name, score, strings.Repeat("#", score))
	}
	fmt.Fprintln(out)

	points, err := stats.MapPoints(catalog, result, regions)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Target regions\n")
	printPoints(out, points, false)

	recommendations := catalog.ListRecommendations()
	if len(recommendations) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "General recommendations\n")
		for _, r := range recommendations {
			fmt.Fprintf(out, "   - %v\n", c.text(r))
		}
	}

	return nil
}

func (c *ShowCmd) text(s string) string {
	if c.Width <= 0 {
		return s
	}

	return truncate.Truncate(s, c.Width, "…", truncate.PositionEnd)
}

func maxLen(col []string) int {
	result := 0
	for _, s := range col {
		result = utils.Max(result, len([]rune(s)))
	}
	return result
}
