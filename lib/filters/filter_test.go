package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/stratdash/lib/model"
)

func TestUsageTypeMerge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Include, Include.Merge(DontCare))
	assert.Equal(t, Exclude, Include.Merge(Exclude))
	assert.Equal(t, Exclude, Exclude.Merge(DontCare))
	assert.Equal(t, DontCare, DontCare.Merge(DontCare))
}

func TestIncludeFilterExcludesNotMatched(t *testing.T) {
	t.Parallel()

	f := NewUnitFilter(Include, func(u *model.BusinessUnit) bool { return u.Name == "a" })

	assert.Equal(t, Include, f.Decide(f.FilterUnit(model.NewBusinessUnit("a", "", 1, ""))))
	assert.Equal(t, Exclude, f.Decide(f.FilterUnit(model.NewBusinessUnit("b", "", 1, ""))))
}

func TestExcludeFilterIncludesNotMatched(t *testing.T) {
	t.Parallel()

	f := CreateMinPotentialFilter(5)

	assert.Equal(t, Exclude, f.Decide(f.FilterUnit(model.NewBusinessUnit("a", "", 4, ""))))
	assert.Equal(t, Include, f.Decide(f.FilterUnit(model.NewBusinessUnit("a", "", 5, ""))))
}

func TestEmptyGroupIncludesEverything(t *testing.T) {
	t.Parallel()

	units := []*model.BusinessUnit{model.NewBusinessUnit("a", "", 4, "")}

	assert.Equal(t, units, FilterUnits(GroupFilters(), units))
}

func TestValidateMinPotential(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ValidateMinPotential(0))
	assert.Nil(t, ValidateMinPotential(10))
	assert.ErrorIs(t, ValidateMinPotential(-1), ErrOutOfRangeThreshold)
	assert.ErrorIs(t, ValidateMinPotential(11), ErrOutOfRangeThreshold)
}
