package workspace

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/stratdash/lib/consoles"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/storages"
	"github.com/pescuma/stratdash/lib/storages/builtin"
	"github.com/pescuma/stratdash/lib/storages/files"
	"github.com/pescuma/stratdash/lib/storages/orm"
	"github.com/pescuma/stratdash/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
	catalog *model.Catalog
}

// NewWorkspace loads the catalog from file. An empty file uses the builtin catalog.
func NewWorkspace(file string) (*Workspace, error) {
	return NewWorkspaceWithConsole(file, consoles.NewStdOutConsole())
}

func NewWorkspaceWithConsole(file string, console consoles.Console) (*Workspace, error) {
	storage, err := openStorage(file, console)
	if err != nil {
		return nil, err
	}

	catalog, err := storage.LoadCatalog()
	if err != nil {
		_ = storage.Close()
		return nil, errors.Wrap(err, "error loading catalog")
	}

	return &Workspace{
		console: console,
		storage: storage,
		catalog: catalog,
	}, nil
}

func openStorage(file string, console consoles.Console) (storages.Storage, error) {
	if file == "" || file == "builtin" {
		return builtin.NewBuiltinStorage(), nil
	}

	file, err := utils.PathAbs(file)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(file)

	switch {
	case strings.HasSuffix(lower, ".json"), strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return files.NewFilesStorage(file)

	case strings.HasSuffix(lower, ".sqlite"):
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrapf(err, "catalog not found")
		}

		return orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, errors.Errorf("unknown storage type for file %v", file)
	}
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Catalog() *model.Catalog {
	return w.catalog
}

func (w *Workspace) Execute(f func(consoles.Console, *model.Catalog) error) error {
	return f(w.console, w.catalog)
}
