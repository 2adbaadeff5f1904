package builtin

import (
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/storages"
)

const (
	ModeEtMaroquinerie   = "Mode et Maroquinerie"
	VinsEtSpiritueux     = "Vins et Spiritueux"
	ParfumsEtCosmetiques = "Parfums et Cosmétiques"
	Asie                 = "Asie"
	AmeriqueDuNord       = "Amérique du Nord"
	Europe               = "Europe"
	AmeriqueLatine       = "Amérique Latine"
	MoyenOrient          = "Moyen-Orient"
)

type builtinStorage struct {
}

func NewBuiltinStorage() storages.Storage {
	return &builtinStorage{}
}

func (s *builtinStorage) LoadCatalog() (*model.Catalog, error) {
	return model.NewCatalog(Units(), Regions(), Recommendations())
}

func (s *builtinStorage) Close() error {
	return nil
}

func Units() []*model.BusinessUnit {
	return []*model.BusinessUnit{
		model.NewBusinessUnit(ModeEtMaroquinerie,
			"Produits de luxe mode et accessoires",
			9,
			"Innovation produit et renforcement de l'expérience client",
			Asie, AmeriqueDuNord, Europe),
		model.NewBusinessUnit(VinsEtSpiritueux,
			"Produits haut de gamme avec potentiel d'expansion",
			7,
			"Expansion géographique dans les marchés émergents",
			Asie, AmeriqueLatine, Europe),
		model.NewBusinessUnit(ParfumsEtCosmetiques,
			"Luxe accessible et innovation produit",
			8,
			"Développement durable et marketing digital",
			Asie, Europe, MoyenOrient),
	}
}

func Regions() []*model.Region {
	return []*model.Region{
		model.NewRegion(Asie, 34.0479, 100.6197),
		model.NewRegion(AmeriqueDuNord, 54.5260, -105.2551),
		model.NewRegion(Europe, 54.5260, 15.2551),
		model.NewRegion(AmeriqueLatine, -14.2350, -51.9253),
		model.NewRegion(MoyenOrient, 29.3759, 45.0209),
	}
}

func Recommendations() []string {
	return []string{
		"Prioriser la croissance organique sur les Business Units avec un fort potentiel, particulièrement la Mode et Maroquinerie.",
		"Investir dans l’innovation produit, le développement durable et le marketing digital pour capter la clientèle jeune et connectée.",
		"Renforcer la présence dans les zones géographiques à forte croissance économique : Asie, Amérique du Nord et Moyen-Orient.",
		"Adapter la stratégie aux spécificités culturelles et économiques des marchés locaux.",
	}
}

// MustLoadCatalog is used by tests and by callers that cannot handle the (impossible) error of
// loading the builtin data.
func MustLoadCatalog() *model.Catalog {
	catalog, err := NewBuiltinStorage().LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
