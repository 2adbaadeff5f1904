package stats

import (
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
)

// Radar creates the polygon series of potentials. The first point is repeated at the end to
// close the polygon.
func Radar(result *model.FilteredResult) *model.RadarSeries {
	units := result.List()
	if len(units) == 0 {
		return &model.RadarSeries{
			Categories: []string{},
			Scores:     []int{},
		}
	}

	categories := lo.Map(units, func(u *model.BusinessUnit, _ int) string { return u.Name })
	scores := lo.Map(units, func(u *model.BusinessUnit, _ int) int { return u.Potential })

	return &model.RadarSeries{
		Categories: append(categories, categories[0]),
		Scores:     append(scores, scores[0]),
	}
}
