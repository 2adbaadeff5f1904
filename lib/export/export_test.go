package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/stratdash/lib/export"
	"github.com/pescuma/stratdash/lib/filters"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/storages/builtin"
)

func TestToRows(t *testing.T) {
	t.Parallel()

	catalog := builtin.MustLoadCatalog()
	result := filters.Apply(catalog, model.NewFilterCriteria(catalog.ListUnitNames(), 8))

	rows := export.ToRows(result)

	assert.Equal(t, []*export.Row{
		{
			BusinessUnit: builtin.ModeEtMaroquinerie,
			Focus:        "Produits de luxe mode et accessoires",
			Potential:    9,
			Strategy:     "Innovation produit et renforcement de l'expérience client",
			Regions:      "Asie, Amérique du Nord, Europe",
		},
		{
			BusinessUnit: builtin.ParfumsEtCosmetiques,
			Focus:        "Luxe accessible et innovation produit",
			Potential:    8,
			Strategy:     "Développement durable et marketing digital",
			Regions:      "Asie, Europe, Moyen-Orient",
		},
	}, rows)
}

func TestToRowsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, export.ToRows(model.NewFilteredResult(nil)))
}

func TestToRowsOnePerUnit(t *testing.T) {
	t.Parallel()

	catalog := builtin.MustLoadCatalog()

	for min := model.MinPotential; min <= model.MaxPotential; min++ {
		result := filters.Apply(catalog, model.NewFilterCriteria(catalog.ListUnitNames(), min))

		rows := export.ToRows(result)

		assert.Len(t, rows, result.Len())
		for i, u := range result.List() {
			assert.Equal(t, u.Name, rows[i].BusinessUnit)
			assert.Equal(t, u.JoinedRegions(), rows[i].Regions)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	catalog := builtin.MustLoadCatalog()
	result := filters.Apply(catalog, model.NewFilterCriteria([]string{builtin.VinsEtSpiritueux}, 7))

	var buf bytes.Buffer
	err := export.WriteCSV(&buf, export.ToRows(result))

	assert.Nil(t, err)
	assert.Equal(t, "Business Unit,Focus,Potentiel,Stratégie,Régions\n"+
		"Vins et Spiritueux,Produits haut de gamme avec potentiel d'expansion,7,Expansion géographique dans les marchés émergents,\"Asie, Amérique Latine, Europe\"\n",
		buf.String())
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := export.WriteCSV(&buf, nil)

	assert.Nil(t, err)
	assert.Equal(t, "Business Unit,Focus,Potentiel,Stratégie,Régions\n", buf.String())
}
