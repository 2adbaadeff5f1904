package stats

import (
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
)

// Summarize computes the dashboard metrics. A nil regionsToDisplay means the covered regions.
func Summarize(result *model.FilteredResult, regionsToDisplay []string) (*model.SummaryMetrics, error) {
	avg, err := AveragePotential(result)
	if err != nil {
		return nil, err
	}

	covered := CoveredRegions(result)

	if regionsToDisplay == nil {
		regionsToDisplay = covered
	}

	return &model.SummaryMetrics{
		Count:            result.Len(),
		AveragePotential: avg,
		CoveredRegions:   covered,
		RegionCounts:     RegionCounts(result, regionsToDisplay),
	}, nil
}

func AveragePotential(result *model.FilteredResult) (float64, error) {
	if result.IsEmpty() {
		return 0, ErrEmptySelection
	}

	total := lo.SumBy(result.List(), func(u *model.BusinessUnit) int { return u.Potential })

	return float64(total) / float64(result.Len()), nil
}

// CoveredRegions returns the union of the regions of all units, in order of first appearance.
func CoveredRegions(result *model.FilteredResult) []string {
	var all []string
	for _, u := range result.List() {
		all = append(all, u.Regions...)
	}

	return lo.Uniq(all)
}

// RegionCounts counts, for each of the given regions, how many units target it. Regions not
// listed are not in the result.
func RegionCounts(result *model.FilteredResult, regions []string) map[string]int {
	units := result.List()

	counts := make(map[string]int, len(regions))
	for _, r := range regions {
		counts[r] = lo.CountBy(units, func(u *model.BusinessUnit) bool { return u.HasRegion(r) })
	}

	return counts
}
