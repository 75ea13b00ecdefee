package cleanup

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"evergreen-ops/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var backupSuffixes = []string{"~", ".bak", ".old", ".tmp"}

const (
	ReasonBackup    = "backup_suffix"
	ReasonEmpty     = "empty"
	ReasonDuplicate = "duplicate"
)

// Finding is one redundant file the sweep identified. For duplicates,
// Original points at the file that was kept.
type Finding struct {
	Path     string `json:"path"`
	Reason   string `json:"reason"`
	Original string `json:"original,omitempty"`
}

// Sweeper walks an artifact tree and flags redundant files: stale
// backup copies, empty files, and byte-identical duplicates. Dry-run
// unless delete is enabled; the walk order is lexical, so the first
// file with a given content is always the one kept.
type Sweeper struct {
	root   string
	delete bool
}

func NewSweeper(root string) *Sweeper {
	return &Sweeper{root: root}
}

func (s *Sweeper) WithDelete(enabled bool) *Sweeper {
	s.delete = enabled
	return s
}

// Sweep scans the tree and returns every finding. With delete enabled
// the flagged files are removed after the scan completes.
func (s *Sweeper) Sweep(ctx context.Context) ([]Finding, error) {
	var findings []Finding
	seen := make(map[uint64]string)

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		finding, err := s.classify(path, d, seen)
		if err != nil {
			return err
		}
		if finding != nil {
			findings = append(findings, *finding)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.root, err)
	}

	if !s.delete {
		logger(ctx).Info("sweep finished (dry run)", slog.Int("findings", len(findings)))
		return findings, nil
	}

	for _, finding := range findings {
		if err := os.Remove(finding.Path); err != nil {
			return findings, fmt.Errorf("remove %s: %w", finding.Path, err)
		}
		logger(ctx).Info("removed redundant file",
			slog.String("path", finding.Path),
			slog.String("reason", finding.Reason),
		)
	}

	return findings, nil
}

func (s *Sweeper) classify(path string, d fs.DirEntry, seen map[uint64]string) (*Finding, error) {
	if hasBackupSuffix(d.Name()) {
		return &Finding{Path: path, Reason: ReasonBackup}, nil
	}

	info, err := d.Info()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size() == 0 {
		return &Finding{Path: path, Reason: ReasonEmpty}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	digest := xxhash.Sum64(raw)
	if original, ok := seen[digest]; ok {
		return &Finding{Path: path, Reason: ReasonDuplicate, Original: original}, nil
	}

	seen[digest] = path

	return nil, nil //nolint:nilnil // no finding for this file
}

func hasBackupSuffix(name string) bool {
	for _, suffix := range backupSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
