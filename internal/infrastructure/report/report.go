package report

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"

	"evergreen-ops/internal/domain"
	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// RunReport is the machine-readable record of one pipeline run.
type RunReport struct {
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	ItemCount   int       `json:"item_count"`
	SyncEnabled bool      `json:"sync_enabled"`

	Collections  []entity.SyncResult `json:"collections,omitempty"`
	RemoteCounts map[string]int      `json:"remote_counts,omitempty"`
}

// Writer owns the reports directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) JSONPath() string     { return filepath.Join(w.dir, "sync_report.json") }
func (w *Writer) WorkbookPath() string { return filepath.Join(w.dir, "economy_report.xlsx") }

// WriteJSON overwrites reports/sync_report.json.
func (w *Writer) WriteJSON(rep RunReport) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "create reports dir")
	}

	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "marshal report")
	}

	if err := os.WriteFile(w.JSONPath(), raw, 0o644); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "write "+w.JSONPath())
	}

	return nil
}

// ReadJSON loads the last run report.
func (w *Writer) ReadJSON() (RunReport, error) {
	raw, err := os.ReadFile(w.JSONPath())
	if err != nil {
		return RunReport{}, domain.WrapError(err, errcodes.ArtifactNotFound, w.JSONPath())
	}

	var rep RunReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return RunReport{}, domain.WrapError(err, errcodes.ArtifactMalformed, w.JSONPath())
	}

	return rep, nil
}
