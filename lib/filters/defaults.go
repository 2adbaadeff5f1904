package filters

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/pescuma/stratdash/lib/model"
)

func CreateSelectionFilter(names *set.Set[string]) Filter {
	return NewUnitFilter(Include, func(unit *model.BusinessUnit) bool {
		return names != nil && names.Contains(unit.Name)
	})
}

func CreateMinPotentialFilter(minPotential int) Filter {
	return NewUnitFilter(Exclude, func(unit *model.BusinessUnit) bool {
		return unit.Potential < minPotential
	})
}

func CreateCriteriaFilter(criteria *model.FilterCriteria) Filter {
	return GroupFilters(
		CreateSelectionFilter(criteria.SelectedUnitNames),
		CreateMinPotentialFilter(criteria.MinPotential),
	)
}
