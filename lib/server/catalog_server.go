package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
)

func (s *server) initCatalog(r *gin.Engine) {
	r.GET("/api/catalog", get(s.catalogGet))
	r.GET("/api/recommendations", get(s.recommendationsList))
}

func (s *server) catalogGet() (any, error) {
	return gin.H{
		"units": lo.Map(s.catalog.ListUnits(), func(u *model.BusinessUnit, _ int) gin.H {
			return s.toUnit(u)
		}),
		"regions": lo.Map(s.catalog.ListRegions(), func(r *model.Region, _ int) gin.H {
			return s.toRegion(r)
		}),
		"recommendations": s.catalog.ListRecommendations(),
		"defaults": gin.H{
			"units": s.catalog.ListUnitNames(),
			"min":   model.DefaultMinPotential,
		},
	}, nil
}

func (s *server) recommendationsList() (any, error) {
	return s.catalog.ListRecommendations(), nil
}
