package model

import (
	"github.com/samber/lo"
)

// FilteredResult is the subset of the catalog that matched a FilterCriteria, in catalog order.
type FilteredResult struct {
	units  []*BusinessUnit
	byName map[string]*BusinessUnit
}

func NewFilteredResult(units []*BusinessUnit) *FilteredResult {
	return &FilteredResult{
		units: append([]*BusinessUnit(nil), units...),
		byName: lo.Associate(units, func(u *BusinessUnit) (string, *BusinessUnit) {
			return u.Name, u
		}),
	}
}

// List never returns nil, so an empty result compares equal to any other empty unit list.
func (r *FilteredResult) List() []*BusinessUnit {
	result := make([]*BusinessUnit, len(r.units))
	copy(result, r.units)
	return result
}

func (r *FilteredResult) Names() []string {
	return lo.Map(r.units, func(u *BusinessUnit, _ int) string { return u.Name })
}

func (r *FilteredResult) Get(name string) *BusinessUnit {
	return r.byName[name]
}

func (r *FilteredResult) Len() int {
	return len(r.units)
}

func (r *FilteredResult) IsEmpty() bool {
	return len(r.units) == 0
}
