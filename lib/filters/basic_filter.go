package filters

import (
	"github.com/pescuma/stratdash/lib/model"
)

type basicFilter struct {
	filterUnit func(unit *model.BusinessUnit) UsageType
	filterType UsageType
}

func (b *basicFilter) FilterUnit(unit *model.BusinessUnit) UsageType {
	if b.filterUnit == nil {
		return DontCare
	}

	return b.filterUnit(unit)
}

func (b *basicFilter) Decide(u UsageType) UsageType {
	switch {
	case u == DontCare && b.filterType == Exclude:
		return Include
	case u == DontCare && b.filterType == Include:
		return Exclude
	default:
		return u
	}
}

// NewUnitFilter creates a filter that returns filterType for the units matched by unitFilter.
// Units not matched by an Include filter are excluded; units not matched by an Exclude filter
// are included.
func NewUnitFilter(filterType UsageType, unitFilter func(*model.BusinessUnit) bool) Filter {
	return &basicFilter{
		filterUnit: func(unit *model.BusinessUnit) UsageType {
			if !unitFilter(unit) {
				return DontCare
			}

			return filterType
		},
		filterType: filterType,
	}
}
