package model

import (
	"github.com/hashicorp/go-set/v2"
)

const DefaultMinPotential = 7

// FilterCriteria holds the user selection. Both conditions must hold for a unit to be included.
type FilterCriteria struct {
	SelectedUnitNames *set.Set[string]
	MinPotential      int
}

func NewFilterCriteria(selectedUnitNames []string, minPotential int) *FilterCriteria {
	return &FilterCriteria{
		SelectedUnitNames: set.From(selectedUnitNames),
		MinPotential:      minPotential,
	}
}

// NewDefaultFilterCriteria selects every unit of the catalog with the default threshold.
func NewDefaultFilterCriteria(catalog *Catalog) *FilterCriteria {
	return NewFilterCriteria(catalog.ListUnitNames(), DefaultMinPotential)
}

func (c *FilterCriteria) IsSelected(name string) bool {
	return c.SelectedUnitNames != nil && c.SelectedUnitNames.Contains(name)
}
