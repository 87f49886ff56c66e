package availability

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/pagination"
	"github.com/availarr/availarr/pkg/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPageSize = 50

var (
	// ErrAlreadyRunning is returned when a run is requested while another
	// run is still in flight.
	ErrAlreadyRunning = errors.New("reconciliation already running")
	// ErrNotRunning is returned when a cancel is requested with no run in
	// flight.
	ErrNotRunning = errors.New("no reconciliation running")
)

// RunSummary is the terminal outcome of one reconciliation pass.
type RunSummary struct {
	RunID                 uuid.UUID `json:"runId"`
	Pages                 int       `json:"pages"`
	Items                 int       `json:"items"`
	Updated               int       `json:"updated"`
	RequestsDeleted       int64     `json:"requestsDeleted"`
	SeasonRequestsDeleted int64     `json:"seasonRequestsDeleted"`
	Cancelled             bool      `json:"cancelled"`
	Started               time.Time `json:"started"`
	Finished              time.Time `json:"finished"`
}

// Engine walks every catalog item still marked available on either tier and
// reconciles its recorded status against the configured external sources.
// Only one run may be active at a time.
type Engine struct {
	store      storage.Storage
	aggregator *Aggregator
	pageSize   int

	running atomic.Bool

	mu        sync.Mutex
	cancelRun context.CancelFunc
}

type Option func(*Engine)

// WithPageSize overrides the catalog page size used while scanning.
func WithPageSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

func New(store storage.Storage, aggregator *Aggregator, opts ...Option) *Engine {
	e := &Engine{
		store:      store,
		aggregator: aggregator,
		pageSize:   defaultPageSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsRunning reports whether a reconciliation pass is in flight.
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// Cancel requests a cooperative stop of the active run. It takes effect at
// the next item boundary.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancelRun != nil {
		e.cancelRun()
	}
}

// Start launches a run in the background. It returns ErrAlreadyRunning when a
// pass is already in flight.
func (e *Engine) Start(ctx context.Context) error {
	if e.IsRunning() {
		return ErrAlreadyRunning
	}

	go func() {
		if _, err := e.Run(ctx); err != nil && !errors.Is(err, ErrAlreadyRunning) {
			logger.FromCtx(ctx).Error("reconciliation run failed", zap.Error(err))
		}
	}()

	return nil
}

// Run executes one full reconciliation pass: page through eligible items,
// aggregate existence per item, and apply transitions. The running flag is
// always cleared on return, success or failure.
func (e *Engine) Run(ctx context.Context) (*RunSummary, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer e.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.mu.Lock()
	e.cancelRun = cancel
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.cancelRun = nil
		e.mu.Unlock()
	}()

	summary := &RunSummary{
		RunID:   uuid.New(),
		Started: time.Now(),
	}

	log := logger.FromCtx(ctx, "run_id", summary.RunID.String())
	ctx = logger.WithCtx(ctx, log)
	log.Info("starting availability reconciliation")

	e.aggregator.Reset()

	params := pagination.Params{Page: 1, PageSize: e.pageSize}

scan:
	for {
		offset, limit := params.CalculateOffsetLimit()
		items, err := e.store.ListAvailableMedia(ctx, offset, limit)
		if err != nil {
			log.Error("failed to list available media", zap.Error(err))
			summary.Finished = time.Now()
			return summary, err
		}
		summary.Pages++

		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if ctx.Err() != nil {
				log.Info("reconciliation cancelled", zap.Int("items", summary.Items))
				summary.Cancelled = true
				break scan
			}

			summary.Items++
			outcome := e.reconcileItem(ctx, item)
			if outcome.updated {
				summary.Updated++
			}
			summary.RequestsDeleted += outcome.requestsDeleted
			summary.SeasonRequestsDeleted += outcome.seasonRequestsDeleted
		}

		params = params.Next()
	}

	summary.Finished = time.Now()
	log.Infow("availability reconciliation finished",
		"items", summary.Items,
		"updated", summary.Updated,
		"requests_deleted", summary.RequestsDeleted,
		"season_requests_deleted", summary.SeasonRequestsDeleted,
		"cancelled", summary.Cancelled,
		"duration", summary.Finished.Sub(summary.Started).String())

	return summary, nil
}

// reconcileItem processes a single catalog item. Failures are logged and
// isolated so one bad record never halts the scan.
func (e *Engine) reconcileItem(ctx context.Context, item *storage.MediaItem) itemOutcome {
	log := logger.FromCtx(ctx)

	var outcome itemOutcome
	var err error

	switch storage.MediaType(item.MediaType) {
	case storage.MediaTypeMovie:
		outcome, err = e.reconcileMovie(ctx, item, e.aggregator.Movie(ctx, item))
	case storage.MediaTypeTV:
		outcome, err = e.reconcileShow(ctx, item, e.aggregator.Show(ctx, item))
	default:
		log.Debug("skipping item of unknown media type",
			zap.Int32("media_item", item.ID),
			zap.String("media_type", item.MediaType))
		return outcome
	}

	if err != nil {
		log.Debug("failed to reconcile item",
			zap.Int32("media_item", item.ID),
			zap.Int32("tmdb_id", item.TmdbID),
			zap.Error(err))
	}

	return outcome
}
