package files

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/storages"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

type filesStorage struct {
	file   string
	format Format
}

// NewFilesStorage reads the catalog from a JSON or YAML file, chosen by the extension.
func NewFilesStorage(file string) (storages.Storage, error) {
	format, err := FormatFromFile(file)
	if err != nil {
		return nil, err
	}

	return &filesStorage{
		file:   file,
		format: format,
	}, nil
}

func FormatFromFile(file string) (Format, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.Errorf("unknown catalog format for file %v", file)
	}
}

func (s *filesStorage) LoadCatalog() (*model.Catalog, error) {
	contents, err := os.ReadFile(s.file)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading catalog %v", s.file)
	}

	catalog, err := Decode(contents, s.format)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %v", s.file)
	}

	return catalog, nil
}

func (s *filesStorage) Close() error {
	return nil
}

func Decode(contents []byte, format Format) (*model.Catalog, error) {
	var doc document
	var err error

	switch format {
	case JSON:
		err = json.Unmarshal(contents, &doc)
	case YAML:
		err = yaml.UnmarshalStrict(contents, &doc)
	default:
		err = errors.Errorf("unknown format: %v", format)
	}
	if err != nil {
		return nil, err
	}

	return doc.toModel()
}

func Encode(catalog *model.Catalog, format Format) ([]byte, error) {
	doc := fromModel(catalog)

	switch format {
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	case YAML:
		return yaml.Marshal(doc)
	default:
		return nil, errors.Errorf("unknown format: %v", format)
	}
}
