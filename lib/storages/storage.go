package storages

import (
	"github.com/pescuma/stratdash/lib/model"
)

// Storage is a read only source of the catalog.
type Storage interface {
	LoadCatalog() (*model.Catalog, error)

	Close() error
}
