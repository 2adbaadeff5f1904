package model

import "fmt"

type Region struct {
	Name      string
	Latitude  float64
	Longitude float64
}

func NewRegion(name string, latitude, longitude float64) *Region {
	return &Region{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func (r *Region) String() string {
	return fmt.Sprintf("%v[%.4f, %.4f]", r.Name, r.Latitude, r.Longitude)
}

func (r *Region) clone() *Region {
	result := *r
	return &result
}
