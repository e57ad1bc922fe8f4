package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"lovinamom/internal/domain"
	"lovinamom/internal/normalize"
	"lovinamom/internal/store"
)

// ErrFetchInFlight is returned when a refresh is requested while another
// fetch of the dataset is already running. The concurrent request is
// dropped, not queued; the caller gets the current snapshot instead.
var ErrFetchInFlight = errors.New("dataset fetch already in flight")

// snapshotKey is where the last-known-good dataset lives in the KV store.
const snapshotKey = "lovinamom:dashboard:snapshot"

// DataFetcher is the slice of the sheet client the dashboard needs.
type DataFetcher interface {
	GetData(ctx context.Context) (normalize.RawDataset, error)
}

// Snapshot is a normalized dataset plus its provenance. Stale marks data
// served from cache because the fetch failed or was skipped.
type Snapshot struct {
	Data      domain.DashboardData `json:"data"`
	FetchedAt time.Time            `json:"fetchedAt"`
	Stale     bool                 `json:"stale"`
}

// DashboardService owns the fetch → normalize → cache pipeline for the
// staff dashboard. At most one get_data request is in flight at a time.
type DashboardService struct {
	fetcher DataFetcher
	kv      store.KV
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	inFlight bool
	started  uint64 // fetches started
	applied  uint64 // generation of the snapshot currently applied
	current  *Snapshot
}

func NewDashboardService(fetcher DataFetcher, kv store.KV, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		fetcher: fetcher,
		kv:      kv,
		logger:  logger,
		now:     time.Now,
	}
}

// SetNowFuncForTest pins the snapshot clock.
func (s *DashboardService) SetNowFuncForTest(now func() time.Time) { s.now = now }

// Get returns the dashboard dataset. With force=false a previously
// applied snapshot is served as-is; force=true (and a cold start) go to
// the network, falling back to the last-known-good snapshot on failure.
func (s *DashboardService) Get(ctx context.Context, force bool) (Snapshot, error) {
	if !force {
		s.mu.Lock()
		if s.current != nil {
			snap := *s.current
			s.mu.Unlock()
			return snap, nil
		}
		s.mu.Unlock()
	}
	return s.Refresh(ctx)
}

// Refresh fetches the dataset from the sheet endpoint. Reentrant calls
// while a fetch is in flight perform no network request: they return the
// current snapshot (stale) and ErrFetchInFlight.
func (s *DashboardService) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.inFlight {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrFetchInFlight
	}
	s.inFlight = true
	s.started++
	generation := s.started
	s.mu.Unlock()

	raw, err := s.fetcher.GetData(ctx)
	fetchedAt := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.logger.Warn("dashboard fetch failed, serving last known good", zap.Error(err))
		return s.fallbackLocked(ctx, err)
	}

	// A snapshot from a newer fetch generation has already been applied;
	// this result must not race it into the current state.
	if generation <= s.applied {
		return s.snapshotLocked(), nil
	}

	data := normalize.Dataset(raw, fetchedAt)
	if len(data.Questions) == 0 {
		// fresh sheet: serve the seed template so the intake form works
		data.Questions = append(data.Questions, domain.TemplateQuestions...)
	}

	snap := Snapshot{Data: data, FetchedAt: fetchedAt}
	s.current = &snap
	s.applied = generation
	s.persistLocked(ctx, snap)
	return snap, nil
}

// Questions returns the active question set, refreshing if nothing is
// cached yet. A failed cold read degrades to the seed template rather
// than blocking the intake form.
func (s *DashboardService) Questions(ctx context.Context) []domain.ScreeningQuestion {
	snap, err := s.Get(ctx, false)
	if err != nil && !errors.Is(err, ErrFetchInFlight) {
		s.logger.Warn("question fetch failed, using template set", zap.Error(err))
		return domain.TemplateQuestions
	}
	if len(snap.Data.Questions) == 0 {
		return domain.TemplateQuestions
	}
	return snap.Data.Questions
}

func (s *DashboardService) snapshotLocked() Snapshot {
	if s.current != nil {
		snap := *s.current
		snap.Stale = true
		return snap
	}
	return Snapshot{Stale: true}
}

// fallbackLocked serves the in-process snapshot, then the persisted one.
// Only when neither exists does the fetch error reach the caller.
func (s *DashboardService) fallbackLocked(ctx context.Context, fetchErr error) (Snapshot, error) {
	if s.current != nil {
		return s.snapshotLocked(), nil
	}
	val, err := s.kv.Get(ctx, snapshotKey)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			s.logger.Warn("snapshot cache read failed", zap.Error(err))
		}
		return Snapshot{}, fetchErr
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		s.logger.Warn("snapshot cache entry corrupt", zap.Error(err))
		return Snapshot{}, fetchErr
	}
	snap.Stale = true
	s.current = &snap
	return snap, nil
}

func (s *DashboardService) persistLocked(ctx context.Context, snap Snapshot) {
	encoded, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("snapshot marshal failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, snapshotKey, string(encoded), 0); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
}
