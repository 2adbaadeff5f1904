package export

import (
	"github.com/samber/lo"

	"github.com/pescuma/stratdash/lib/model"
)

const (
	FileName = "lvmh_bu_filtered.csv"
	MimeType = "text/csv"
)

type Row struct {
	BusinessUnit string
	Focus        string
	Potential    int
	Strategy     string
	Regions      string
}

// ToRows flattens the result, one row per unit in the same order. An empty result gives no rows.
func ToRows(result *model.FilteredResult) []*Row {
	return lo.Map(result.List(), func(u *model.BusinessUnit, _ int) *Row {
		return &Row{
			BusinessUnit: u.Name,
			Focus:        u.Focus,
			Potential:    u.Potential,
			Strategy:     u.Strategy,
			Regions:      u.JoinedRegions(),
		}
	})
}
