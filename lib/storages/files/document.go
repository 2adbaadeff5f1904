package files

import (
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
)

type document struct {
	Units           []*unitDocument   `json:"units" yaml:"units"`
	Regions         []*regionDocument `json:"regions" yaml:"regions"`
	Recommendations []string          `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

type unitDocument struct {
	Name      string   `json:"name" yaml:"name"`
	Focus     string   `json:"focus" yaml:"focus"`
	Potential int      `json:"potential" yaml:"potential"`
	Strategy  string   `json:"strategy" yaml:"strategy"`
	Regions   []string `json:"regions" yaml:"regions"`
}

type regionDocument struct {
	Name      string  `json:"name" yaml:"name"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

func (d *document) toModel() (*model.Catalog, error) {
	units := lo.Map(d.Units, func(u *unitDocument, _ int) *model.BusinessUnit {
		return model.NewBusinessUnit(u.Name, u.Focus, u.Potential, u.Strategy, u.Regions...)
	})
	regions := lo.Map(d.Regions, func(r *regionDocument, _ int) *model.Region {
		return model.NewRegion(r.Name, r.Latitude, r.Longitude)
	})

	return model.NewCatalog(units, regions, d.Recommendations)
}

func fromModel(catalog *model.Catalog) *document {
	return &document{
		Units: lo.Map(catalog.ListUnits(), func(u *model.BusinessUnit, _ int) *unitDocument {
			return &unitDocument{
				Name:      u.Name,
				Focus:     u.Focus,
				Potential: u.Potential,
				Strategy:  u.Strategy,
				Regions:   u.Regions,
			}
		}),
		Regions: lo.Map(catalog.ListRegions(), func(r *model.Region, _ int) *regionDocument {
			return &regionDocument{
				Name:      r.Name,
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
			}
		}),
		Recommendations: catalog.ListRecommendations(),
	}
}
