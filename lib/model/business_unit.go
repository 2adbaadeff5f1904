package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	MinPotential = 0
	MaxPotential = 10
)

type BusinessUnit struct {
	Name      string
	Focus     string
	Potential int
	Strategy  string
	Regions   []string
}

func NewBusinessUnit(name string, focus string, potential int, strategy string, regions ...string) *BusinessUnit {
	return &BusinessUnit{
		Name:      name,
		Focus:     focus,
		Potential: potential,
		Strategy:  strategy,
		Regions:   regions,
	}
}

func (u *BusinessUnit) String() string {
	return fmt.Sprintf("%v[%v]", u.Name, u.Potential)
}

func (u *BusinessUnit) HasRegion(region string) bool {
	return lo.Contains(u.Regions, region)
}

// JoinedRegions returns the regions in declaration order, separated by ", ".
func (u *BusinessUnit) JoinedRegions() string {
	return strings.Join(u.Regions, ", ")
}

func (u *BusinessUnit) clone() *BusinessUnit {
	result := *u
	result.Regions = append([]string(nil), u.Regions...)
	return &result
}
