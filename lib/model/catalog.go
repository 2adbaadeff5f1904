package model

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Catalog is the reference data of the dashboard. It is validated on creation and never
// changes afterwards.
type Catalog struct {
	units         []*BusinessUnit
	unitsByName   map[string]*BusinessUnit
	regions       []*Region
	regionsByName map[string]*Region

	recommendations []string
}

func NewCatalog(units []*BusinessUnit, regions []*Region, recommendations []string) (*Catalog, error) {
	result := &Catalog{
		unitsByName:     map[string]*BusinessUnit{},
		regionsByName:   map[string]*Region{},
		recommendations: append([]string(nil), recommendations...),
	}

	for _, r := range regions {
		if r.Name == "" {
			return nil, errors.New("region with empty name")
		}
		if _, ok := result.regionsByName[r.Name]; ok {
			return nil, errors.Errorf("duplicated region: %v", r.Name)
		}
		if r.Latitude < -90 || r.Latitude > 90 {
			return nil, errors.Errorf("invalid latitude for region %v: %v", r.Name, r.Latitude)
		}
		if r.Longitude < -180 || r.Longitude > 180 {
			return nil, errors.Errorf("invalid longitude for region %v: %v", r.Name, r.Longitude)
		}

		c := r.clone()
		result.regions = append(result.regions, c)
		result.regionsByName[c.Name] = c
	}

	for _, u := range units {
		if u.Name == "" {
			return nil, errors.New("business unit with empty name")
		}
		if _, ok := result.unitsByName[u.Name]; ok {
			return nil, errors.Errorf("duplicated business unit: %v", u.Name)
		}
		if u.Potential < MinPotential || u.Potential > MaxPotential {
			return nil, errors.Errorf("invalid potential for business unit %v: %v (should be between %v and %v)",
				u.Name, u.Potential, MinPotential, MaxPotential)
		}

		seen := set.New[string](len(u.Regions))
		for _, r := range u.Regions {
			if _, ok := result.regionsByName[r]; !ok {
				return nil, errors.Wrapf(ErrUnknownRegion, "business unit %v references region %v", u.Name, r)
			}
			if !seen.Insert(r) {
				return nil, errors.Errorf("business unit %v lists region %v more than once", u.Name, r)
			}
		}

		c := u.clone()
		result.units = append(result.units, c)
		result.unitsByName[c.Name] = c
	}

	return result, nil
}

// ListUnits returns copies of the business units in declaration order.
func (c *Catalog) ListUnits() []*BusinessUnit {
	return lo.Map(c.units, func(u *BusinessUnit, _ int) *BusinessUnit { return u.clone() })
}

func (c *Catalog) ListUnitNames() []string {
	return lo.Map(c.units, func(u *BusinessUnit, _ int) string { return u.Name })
}

func (c *Catalog) GetUnit(name string) *BusinessUnit {
	u, ok := c.unitsByName[name]
	if !ok {
		return nil
	}

	return u.clone()
}

// ListRegions returns copies of the regions in declaration order.
func (c *Catalog) ListRegions() []*Region {
	return lo.Map(c.regions, func(r *Region, _ int) *Region { return r.clone() })
}

func (c *Catalog) ListRegionNames() []string {
	return lo.Map(c.regions, func(r *Region, _ int) string { return r.Name })
}

func (c *Catalog) GetRegion(name string) *Region {
	r, ok := c.regionsByName[name]
	if !ok {
		return nil
	}

	return r.clone()
}

func (c *Catalog) ListRecommendations() []string {
	return append([]string(nil), c.recommendations...)
}

func (c *Catalog) IsEmpty() bool {
	return len(c.units) == 0
}
