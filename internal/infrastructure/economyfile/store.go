package economyfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"evergreen-ops/internal/domain"
	"evergreen-ops/pkg/errcodes"
)

// Store owns the on-disk economy artifacts for one output directory.
// Writes are whole-file overwrites; there is no versioning, the game
// repo's VCS owns history.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) ItemsPath() string      { return filepath.Join(s.dir, "economy_items.csv") }
func (s *Store) CurrenciesPath() string { return filepath.Join(s.dir, "currencies.csv") }
func (s *Store) InventoryPath() string  { return filepath.Join(s.dir, "inventory.csv") }
func (s *Store) CatalogPath() string    { return filepath.Join(s.dir, "catalog.csv") }
func (s *Store) DocumentPath() string   { return filepath.Join(s.dir, "economy_data.json") }

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "create output dir")
	}
	return nil
}

func notFound(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return domain.WrapError(err, errcodes.ArtifactNotFound, path)
	}
	return nil
}
