package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/stats"
)

const noMatchesMessage = "Aucune Business Unit ne correspond aux critères."

func (s *server) initDashboard(r *gin.Engine) {
	r.GET("/api/units", getP[Filters](s.unitsList))
	r.GET("/api/summary", getP[Filters](s.summaryGet))
	r.GET("/api/radar", getP[Filters](s.radarGet))
	r.GET("/api/map", getP[Filters](s.mapGet))
}

func (s *server) unitsList(params *Filters) (any, error) {
	d, err := s.compute(params)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"data": lo.Map(d.result.List(), func(u *model.BusinessUnit, _ int) gin.H {
			return s.toUnit(u)
		}),
		"total": d.result.Len(),
	}, nil
}

func (s *server) summaryGet(params *Filters) (any, error) {
	d, err := s.compute(params)
	if err != nil {
		return nil, err
	}

	if d.result.IsEmpty() {
		return gin.H{
			"empty":   true,
			"count":   0,
			"message": noMatchesMessage,
		}, nil
	}

	summary, err := stats.Summarize(d.result, d.regions)
	if err != nil {
		return nil, err
	}

	return s.toSummary(summary), nil
}

func (s *server) radarGet(params *Filters) (any, error) {
	d, err := s.compute(params)
	if err != nil {
		return nil, err
	}

	return s.toRadar(stats.Radar(d.result)), nil
}

func (s *server) mapGet(params *Filters) (any, error) {
	d, err := s.compute(params)
	if err != nil {
		return nil, err
	}

	points, err := stats.MapPoints(s.catalog, d.result, d.regions)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"data": lo.Map(points, func(p *model.MapPoint, _ int) gin.H {
			return s.toMapPoint(p)
		}),
		"maxCount": stats.MaxCount(points),
	}, nil
}
