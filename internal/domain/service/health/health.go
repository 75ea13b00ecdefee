package health

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"evergreen-ops/internal/domain/entity"
	"evergreen-ops/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// fixedCurrencyCount is the size of the fixed currency schema the
// converter always emits.
const fixedCurrencyCount = 3

type artifactStore interface {
	ReadItems() ([]entity.EconomyItem, error)
	ReadDocument() (entity.EconomyDocument, error)
	CountRows(path string) (int, error)
	CurrenciesPath() string
	InventoryPath() string
	CatalogPath() string
}

// Check is one weighted probe against the on-disk artifacts.
type Check struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Report is the outcome of one health run. Score is the sum of the
// weights of passed checks; weights total 100.
type Report struct {
	Score     int       `json:"score"`
	Checks    []Check   `json:"checks"`
	CheckedAt time.Time `json:"checked_at"`
}

func (r Report) Healthy(threshold int) bool {
	return r.Score >= threshold
}

// Checker scores the artifact set produced by the pipeline. It only
// reads; a missing or broken artifact lowers the score instead of
// failing the run.
type Checker struct {
	store        artifactStore
	maxStaleness time.Duration
	now          func() time.Time
}

func NewChecker(store artifactStore, maxStaleness time.Duration) *Checker {
	return &Checker{
		store:        store,
		maxStaleness: maxStaleness,
		now:          time.Now,
	}
}

func (c *Checker) WithClock(now func() time.Time) *Checker {
	c.now = now
	return c
}

// Run executes every check and aggregates the weighted score.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{CheckedAt: c.now()}

	items, itemsErr := c.store.ReadItems()
	report.add(Check{Name: "items artifact readable", Weight: 25}, itemsErr)

	doc, docErr := c.store.ReadDocument()
	report.add(Check{Name: "runtime document readable", Weight: 20}, docErr)

	report.add(Check{Name: "projection artifacts consistent", Weight: 20}, c.checkProjections())
	report.add(Check{Name: "item counts match", Weight: 15}, c.checkCounts(items, itemsErr, doc, docErr))
	report.add(Check{Name: "document fresh", Weight: 20}, c.checkFreshness(doc, docErr))

	logger(ctx).Info("health check finished",
		slog.Int("score", report.Score),
		slog.Int("checks", len(report.Checks)),
	)

	return report
}

func (r *Report) add(check Check, err error) {
	if err != nil {
		check.Detail = err.Error()
	} else {
		check.Passed = true
		r.Score += check.Weight
	}

	r.Checks = append(r.Checks, check)
}

func (c *Checker) checkProjections() error {
	currencies, err := c.store.CountRows(c.store.CurrenciesPath())
	if err != nil {
		return fmt.Errorf("currencies: %w", err)
	}

	if currencies != fixedCurrencyCount {
		return fmt.Errorf("currencies: %d rows, want %d", currencies, fixedCurrencyCount)
	}

	if _, err := c.store.CountRows(c.store.InventoryPath()); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	if _, err := c.store.CountRows(c.store.CatalogPath()); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	return nil
}

func (c *Checker) checkCounts(items []entity.EconomyItem, itemsErr error, doc entity.EconomyDocument, docErr error) error {
	if itemsErr != nil || docErr != nil {
		return fmt.Errorf("prerequisite artifacts unreadable")
	}

	if len(items) != len(doc.Items) {
		return fmt.Errorf("%d csv items, %d document items", len(items), len(doc.Items))
	}

	return nil
}

func (c *Checker) checkFreshness(doc entity.EconomyDocument, docErr error) error {
	if docErr != nil {
		return fmt.Errorf("document unreadable")
	}

	age := c.now().Sub(doc.GeneratedAt)
	if age > c.maxStaleness {
		return fmt.Errorf("generated %s ago, max %s", age.Round(time.Minute), c.maxStaleness)
	}

	return nil
}
