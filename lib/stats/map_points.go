package stats

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/utils"
)

// MapPoints creates one marker per region, in the order given. A nil regions means the
// covered regions.
func MapPoints(catalog *model.Catalog, result *model.FilteredResult, regions []string) ([]*model.MapPoint, error) {
	if regions == nil {
		regions = CoveredRegions(result)
	}

	counts := RegionCounts(result, regions)

	points := make([]*model.MapPoint, 0, len(regions))
	for _, name := range regions {
		region := catalog.GetRegion(name)
		if region == nil {
			return nil, errors.Wrapf(model.ErrUnknownRegion, "%v", name)
		}

		points = append(points, &model.MapPoint{
			Region:    region.Name,
			Latitude:  region.Latitude,
			Longitude: region.Longitude,
			Count:     counts[name],
		})
	}

	return points, nil
}

func MaxCount(points []*model.MapPoint) int {
	return utils.MaxOf(lo.Map(points, func(p *model.MapPoint, _ int) int { return p.Count }), 0)
}
