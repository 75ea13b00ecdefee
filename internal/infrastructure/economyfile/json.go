package economyfile

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"evergreen-ops/internal/domain"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// WriteDocument overwrites economy_data.json with the combined runtime
// document.
func (s *Store) WriteDocument(doc entity.EconomyDocument) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "marshal document")
	}

	if err := os.WriteFile(s.DocumentPath(), raw, 0o644); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "write "+s.DocumentPath())
	}

	return nil
}

// ReadDocument loads economy_data.json.
func (s *Store) ReadDocument() (entity.EconomyDocument, error) {
	raw, err := os.ReadFile(s.DocumentPath())
	if err != nil {
		if nfErr := notFound(err, s.DocumentPath()); nfErr != nil {
			return entity.EconomyDocument{}, nfErr
		}
		return entity.EconomyDocument{}, domain.WrapError(err, errcodes.InternalServerError, "read "+s.DocumentPath())
	}

	var doc entity.EconomyDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entity.EconomyDocument{}, domain.WrapError(err, errcodes.ArtifactMalformed, s.DocumentPath())
	}

	return doc, nil
}
