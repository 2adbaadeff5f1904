package orm

import (
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pescuma/stratdash/lib/consoles"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/storages"
)

var ErrEmptyCatalog = errors.New("catalog is empty")

// gormStorage only reads. The catalog tables are expected to be filled by other tools.
type gormStorage struct {
	db      *gorm.DB
	console consoles.Console
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	db, err := openDB(d)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:      db,
		console: console,
	}, nil
}

func openDB(d gorm.Dialector) (*gorm.DB, error) {
	l := logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)

	return gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{},
		Logger:         l,
	})
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func (s *gormStorage) LoadCatalog() (*model.Catalog, error) {
	s.console.Printf("Loading catalog...\n")

	for _, t := range tables {
		if !s.db.Migrator().HasTable(t) {
			return nil, ErrEmptyCatalog
		}
	}

	var sqlUnits []*sqlBusinessUnit
	err := s.db.Order("id").Find(&sqlUnits).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading business units")
	}

	var sqlUnitRegions []*sqlBusinessUnitRegion
	err = s.db.Order("business_unit_id, position").Find(&sqlUnitRegions).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading business unit regions")
	}

	var sqlRegions []*sqlRegion
	err = s.db.Order("id").Find(&sqlRegions).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading regions")
	}

	var sqlRecommendations []*sqlRecommendation
	err = s.db.Order("id").Find(&sqlRecommendations).Error
	if err != nil {
		return nil, errors.Wrap(err, "error loading recommendations")
	}

	if len(sqlUnits) == 0 && len(sqlRegions) == 0 {
		return nil, ErrEmptyCatalog
	}

	regionsPerUnit := lo.GroupBy(sqlUnitRegions, func(r *sqlBusinessUnitRegion) int { return r.BusinessUnitID })

	units := lo.Map(sqlUnits, func(su *sqlBusinessUnit, _ int) *model.BusinessUnit {
		regions := lo.Map(regionsPerUnit[su.ID], func(r *sqlBusinessUnitRegion, _ int) string { return r.Region })
		return model.NewBusinessUnit(su.Name, su.Focus, su.Potential, su.Strategy, regions...)
	})

	regions := lo.Map(sqlRegions, func(sr *sqlRegion, _ int) *model.Region {
		return model.NewRegion(sr.Name, sr.Latitude, sr.Longitude)
	})

	recommendations := lo.Map(sqlRecommendations, func(sr *sqlRecommendation, _ int) string { return sr.Text })

	return model.NewCatalog(units, regions, recommendations)
}
