package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lifeos/internal/modules/economy/domain"
	economyout "lifeos/internal/modules/economy/port/out"
)

// YAMLCatalogStore serves catalog.yaml from the data dir when present,
// falling back to the built-in goods list. The file holds a plain list of
// {name, price, icon} entries.
type YAMLCatalogStore struct {
	path string
}

func NewYAMLCatalogStore(dataDir string) economyout.CatalogStore {
	return &YAMLCatalogStore{path: filepath.Join(dataDir, "catalog.yaml")}
}

func (s *YAMLCatalogStore) Load(_ context.Context) ([]domain.Good, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultCatalog, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var goods []domain.Good
	if err := yaml.Unmarshal(raw, &goods); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return goods, nil
}
