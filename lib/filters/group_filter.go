package filters

import (
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/utils"
)

// groupFilter includes a unit only when every child filter decides to include it.
type groupFilter struct {
	filters []Filter
}

func GroupFilters(fs ...Filter) Filter {
	return &groupFilter{
		filters: fs,
	}
}

func (g *groupFilter) FilterUnit(unit *model.BusinessUnit) UsageType {
	result := Include
	for _, f := range g.filters {
		result = result.Merge(f.Decide(f.FilterUnit(unit)))
	}
	return result
}

func (g *groupFilter) Decide(u UsageType) UsageType {
	return utils.IIf(u == DontCare, Include, u)
}
