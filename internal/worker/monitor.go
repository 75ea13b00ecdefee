package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"evergreen-ops/internal/infrastructure/unity"
	"evergreen-ops/pkg/contextx"
	"evergreen-ops/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type remoteCounter interface {
	VerifyCounts(ctx context.Context) (unity.Counts, error)
}

type localStore interface {
	CountRows(path string) (int, error)
	CurrenciesPath() string
	InventoryPath() string
	CatalogPath() string
}

// Drift is one local/remote count mismatch for a collection.
type Drift struct {
	Collection string
	Local      int
	Remote     int
}

func (d Drift) String() string {
	return fmt.Sprintf("%s: local=%d remote=%d", d.Collection, d.Local, d.Remote)
}

// Monitor polls remote collection counts at a fixed interval and
// compares them with the local artifacts. It alerts on drift, it never
// reconciles. Repeated drift on the same collection is reported once
// per alert window.
type Monitor struct {
	remote remoteCounter
	store  localStore

	pollInterval time.Duration
	alerted      *cache.Cache

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

const alertWindow = time.Hour

func NewMonitor(remote remoteCounter, store localStore, pollInterval time.Duration) *Monitor {
	return &Monitor{
		remote:       remote,
		store:        store,
		pollInterval: pollInterval,
		alerted:      cache.New(alertWindow, alertWindow),
	}
}

func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isRunning {
		return errors.New("monitor is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	m.isRunning = true

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer func() {
			m.mu.Lock()
			m.isRunning = false
			m.cancelFunc = nil
			m.mu.Unlock()
		}()

		if err := m.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(runCtx).Error("monitor stopped", logx.Error(err))
		}
	}()

	return nil
}

func (m *Monitor) Stop() {
	m.mu.Lock()

	if !m.isRunning {
		m.mu.Unlock()
		return
	}

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isRunning
}

// Run polls until the context is cancelled. The interval is a fixed
// sleep between cycles, no jitter.
func (m *Monitor) Run(ctx context.Context) error {
	logger(ctx).Info("drift monitor started", slog.Duration("poll_interval", m.pollInterval))

	for {
		m.checkOnce(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("drift monitor stopped")
			return ctx.Err()
		case <-time.After(m.pollInterval):
		}
	}
}

func (m *Monitor) checkOnce(ctx context.Context) []Drift {
	remote, err := m.remote.VerifyCounts(ctx)
	if err != nil {
		logger(ctx).Error("remote count read failed", logx.Error(err))
		return nil
	}

	var drifts []Drift

	for _, probe := range []struct {
		collection string
		path       string
		remote     int
	}{
		{unity.CollectionCurrencies, m.store.CurrenciesPath(), remote.Currencies},
		{unity.CollectionInventory, m.store.InventoryPath(), remote.Inventory},
		{unity.CollectionCatalog, m.store.CatalogPath(), remote.Catalog},
	} {
		local, err := m.store.CountRows(probe.path)
		if err != nil {
			logger(ctx).Warn("local artifact unreadable",
				slog.String(logx.FieldCollection, probe.collection),
				logx.Error(err),
			)
			continue
		}

		localRecords.WithLabelValues(probe.collection).Set(float64(local))
		remoteRecords.WithLabelValues(probe.collection).Set(float64(probe.remote))

		if local == probe.remote {
			continue
		}

		drift := Drift{Collection: probe.collection, Local: local, Remote: probe.remote}
		driftTotal.WithLabelValues(probe.collection).Inc()

		if _, seen := m.alerted.Get(probe.collection); seen {
			continue
		}
		m.alerted.Set(probe.collection, drift, cache.DefaultExpiration)

		drifts = append(drifts, drift)
		logger(ctx).Warn("collection drift detected",
			slog.String(logx.FieldCollection, probe.collection),
			slog.Int("local", local),
			slog.Int("remote", probe.remote),
		)
	}

	return drifts
}
