package filters

import (
	"github.com/pescuma/stratdash/lib/model"
)

type Filter interface {
	FilterUnit(unit *model.BusinessUnit) UsageType

	// Decide turns DontCare into the default of the filter.
	Decide(u UsageType) UsageType
}
