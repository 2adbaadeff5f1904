package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/stats"
)

func (s *server) toUnit(u *model.BusinessUnit) gin.H {
	return gin.H{
		"name":      u.Name,
		"focus":     u.Focus,
		"potential": u.Potential,
		"strategy":  u.Strategy,
		"regions":   u.Regions,
	}
}

func (s *server) toRegion(r *model.Region) gin.H {
	return gin.H{
		"name":      r.Name,
		"latitude":  r.Latitude,
		"longitude": r.Longitude,
	}
}

func (s *server) toSummary(i *model.SummaryMetrics) gin.H {
	return gin.H{
		"empty":                  false,
		"count":                  i.Count,
		"averagePotential":       i.AveragePotential,
		"averagePotentialText":   stats.FormatAverage(i.AveragePotential, 1),
		"averagePotentialMetric": stats.FormatAverage(i.AveragePotential, 2),
		"coveredRegions":         i.CoveredRegions,
		"coveredRegionsCount":    len(i.CoveredRegions),
		"regionCounts":           i.RegionCounts,
	}
}

func (s *server) toRadar(i *model.RadarSeries) gin.H {
	return gin.H{
		"categories": i.Categories,
		"scores":     i.Scores,
	}
}

func (s *server) toMapPoint(i *model.MapPoint) gin.H {
	return gin.H{
		"region":    i.Region,
		"latitude":  i.Latitude,
		"longitude": i.Longitude,
		"count":     i.Count,
	}
}
