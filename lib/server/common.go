package server

import (
	"github.com/pescuma/stratdash/lib/filters"
	"github.com/pescuma/stratdash/lib/model"
)

// Filters are the user selections. A missing "unit" selects all units, while "unit=" is an
// explicit empty selection. A missing "region" shows the covered regions.
type Filters struct {
	Units        []string `form:"unit"`
	MinPotential *int     `form:"min"`
	Regions      []string `form:"region"`
}

type dashboard struct {
	criteria *model.FilterCriteria
	result   *model.FilteredResult

	// nil means the covered regions
	regions []string
}

func (s *server) compute(params *Filters) (*dashboard, error) {
	names, err := filters.ResolveUnitNames(s.catalog, params.Units)
	if err != nil {
		return nil, err
	}

	minPotential := model.DefaultMinPotential
	if params.MinPotential != nil {
		minPotential = *params.MinPotential
	}

	err = filters.ValidateMinPotential(minPotential)
	if err != nil {
		return nil, err
	}

	var regions []string
	if params.Regions != nil {
		regions, err = filters.ResolveRegionNames(s.catalog, params.Regions)
		if err != nil {
			return nil, err
		}
	}

	criteria := model.NewFilterCriteria(names, minPotential)
	result := filters.Apply(s.catalog, criteria)

	s.metrics.ObserveSelection(result.Len())

	return &dashboard{
		criteria: criteria,
		result:   result,
		regions:  regions,
	}, nil
}
