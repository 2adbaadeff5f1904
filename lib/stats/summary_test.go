package stats_test

import (
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/filters"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/stats"
	"github.com/pescuma/stratdash/lib/storages/builtin"
)

func TestSummarize(t *testing.T) {
	testgroup.RunInParallel(t, &SummarizeTests{})
}

type SummarizeTests struct {
}

func (g *SummarizeTests) AllUnitsThresholdSeven(t *testgroup.T) {
	result := g.apply(builtin.MustLoadCatalog().ListUnitNames(), 7)

	s, err := stats.Summarize(result, nil)

	t.Nil(err)
	t.Equal(3, s.Count)
	t.InDelta(8.0, s.AveragePotential, 1e-9)
	t.ElementsMatch([]string{builtin.Asie, builtin.AmeriqueDuNord, builtin.Europe, builtin.AmeriqueLatine, builtin.MoyenOrient}, s.CoveredRegions)
	t.Equal(map[string]int{
		builtin.Asie:           3,
		builtin.AmeriqueDuNord: 1,
		builtin.Europe:         3,
		builtin.AmeriqueLatine: 1,
		builtin.MoyenOrient:    1,
	}, s.RegionCounts)
}

func (g *SummarizeTests) AllUnitsThresholdEight(t *testgroup.T) {
	result := g.apply(builtin.MustLoadCatalog().ListUnitNames(), 8)

	s, err := stats.Summarize(result, nil)

	t.Nil(err)
	t.Equal(2, s.Count)
	t.InDelta(8.5, s.AveragePotential, 1e-9)
	t.Equal([]string{builtin.Asie, builtin.AmeriqueDuNord, builtin.Europe, builtin.MoyenOrient}, s.CoveredRegions)
}

func (g *SummarizeTests) EmptySelection(t *testgroup.T) {
	result := g.apply(nil, 7)

	_, err := stats.Summarize(result, nil)

	t.ErrorIs(err, stats.ErrEmptySelection)
}

func (g *SummarizeTests) ThresholdTen(t *testgroup.T) {
	result := g.apply(builtin.MustLoadCatalog().ListUnitNames(), 10)

	t.True(result.IsEmpty())

	_, err := stats.AveragePotential(result)
	t.ErrorIs(err, stats.ErrEmptySelection)
}

func (g *SummarizeTests) ExplicitRegionsToDisplay(t *testgroup.T) {
	result := g.apply(builtin.MustLoadCatalog().ListUnitNames(), 8)

	s, err := stats.Summarize(result, []string{builtin.AmeriqueLatine, builtin.Asie})

	t.Nil(err)
	t.Equal(map[string]int{
		builtin.AmeriqueLatine: 0,
		builtin.Asie:           2,
	}, s.RegionCounts)
}

func (g *SummarizeTests) EmptyRegionsToDisplay(t *testgroup.T) {
	result := g.apply(builtin.MustLoadCatalog().ListUnitNames(), 8)

	s, err := stats.Summarize(result, []string{})

	t.Nil(err)
	t.Empty(s.RegionCounts)
	t.Len(s.CoveredRegions, 4)
}

func (g *SummarizeTests) AverageWithinMinAndMax(t *testgroup.T) {
	catalog := builtin.MustLoadCatalog()
	names := catalog.ListUnitNames()

	for mask := 1; mask < 1<<len(names); mask++ {
		selected := lo.Filter(names, func(_ string, i int) bool { return mask&(1<<i) != 0 })

		for min := model.MinPotential; min <= model.MaxPotential; min++ {
			result := g.apply(selected, min)
			if result.IsEmpty() {
				continue
			}

			avg, err := stats.AveragePotential(result)
			t.Nil(err)

			potentials := lo.Map(result.List(), func(u *model.BusinessUnit, _ int) int { return u.Potential })
			t.GreaterOrEqual(avg, float64(lo.Min(potentials)))
			t.LessOrEqual(avg, float64(lo.Max(potentials)))

			covered := stats.CoveredRegions(result)
			t.LessOrEqual(len(covered), lo.SumBy(result.List(), func(u *model.BusinessUnit) int { return len(u.Regions) }))
			for _, u := range result.List() {
				t.Subset(covered, u.Regions)
			}
		}
	}
}

func (g *SummarizeTests) apply(names []string, min int) *model.FilteredResult {
	return filters.Apply(builtin.MustLoadCatalog(), model.NewFilterCriteria(names, min))
}
