package main

import (
	"github.com/pkg/errors"

	"github.com/pescuma/stratdash/lib/filters"
	"github.com/pescuma/stratdash/lib/model"
)

type cmdWithCriteria struct {
	Unit   []string `short:"u" xor:"selection" help:"Business units to analyse: name, glob or re:<regexp>. Default is all of them."`
	None   bool     `xor:"selection" help:"Select no business unit."`
	Min    int      `short:"m" default:"7" help:"Minimum growth potential, from 0 to 10."`
	Region []string `short:"r" help:"Regions to show. Default is the regions covered by the selected business units."`
}

// createCriteria returns the criteria and the regions to display (nil for the covered ones).
func (c *cmdWithCriteria) createCriteria(catalog *model.Catalog) (*model.FilterCriteria, []string, error) {
	err := filters.ValidateMinPotential(c.Min)
	if err != nil {
		return nil, nil, err
	}

	patterns := c.Unit
	if c.None {
		if len(c.Unit) > 0 {
			return nil, nil, errors.New("--none can not be used with --unit")
		}

		patterns = []string{}
	}

	names, err := filters.ResolveUnitNames(catalog, patterns)
	if err != nil {
		return nil, nil, err
	}

	var regions []string
	if len(c.Region) > 0 {
		regions, err = filters.ResolveRegionNames(catalog, c.Region)
		if err != nil {
			return nil, nil, err
		}
	}

	return model.NewFilterCriteria(names, c.Min), regions, nil
}

func (c *cmdWithCriteria) apply(catalog *model.Catalog) (*model.FilteredResult, []string, error) {
	criteria, regions, err := c.createCriteria(catalog)
	if err != nil {
		return nil, nil, err
	}

	return filters.Apply(catalog, criteria), regions, nil
}
