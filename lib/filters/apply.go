package filters

import (
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
)

// Apply returns the units of the catalog selected by the criteria, keeping the catalog order.
// An empty result is valid.
func Apply(catalog *model.Catalog, criteria *model.FilterCriteria) *model.FilteredResult {
	return model.NewFilteredResult(ApplyTo(catalog.ListUnits(), criteria))
}

func ApplyTo(units []*model.BusinessUnit, criteria *model.FilterCriteria) []*model.BusinessUnit {
	return FilterUnits(CreateCriteriaFilter(criteria), units)
}

func FilterUnits(filter Filter, units []*model.BusinessUnit) []*model.BusinessUnit {
	return lo.Filter(units, func(unit *model.BusinessUnit, _ int) bool {
		return filter.Decide(filter.FilterUnit(unit)) == Include
	})
}
