package availability

import (
	"context"

	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/storage"
	"github.com/availarr/availarr/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

var tiers = []bool{false, true}

// itemOutcome reports what one item's transition changed.
type itemOutcome struct {
	updated               bool
	requestsDeleted       int64
	seasonRequestsDeleted int64
}

// reconcileMovie downgrades a movie's tiers that can no longer be found and
// purges the requests tied to those tiers. The request join is evaluated
// against the pre-change statuses, so it must run before the item is saved.
func (e *Engine) reconcileMovie(ctx context.Context, item *storage.MediaItem, verdict Verdict) (itemOutcome, error) {
	log := logger.FromCtx(ctx)
	var outcome itemOutcome

	downgraded := map[bool]bool{}
	for _, is4k := range tiers {
		current := item.StatusFor(is4k)
		if !current.Reconcilable() || verdict.ExistsFor(is4k) {
			continue
		}

		next := storage.MediaStatusUnknown
		if err := storage.ReconcileMachine(current).ToState(next); err != nil {
			return outcome, err
		}

		item.SetStatusFor(is4k, next)
		item.ClearReferencesFor(is4k)
		downgraded[is4k] = true

		log.Infow("movie no longer available, downgrading",
			"media_item", item.ID,
			"tmdb_id", item.TmdbID,
			"is4k", is4k)
	}

	if len(downgraded) == 0 {
		return outcome, nil
	}

	requests, err := e.store.ListRequestsForAvailableMedia(ctx, int64(item.ID))
	if err != nil {
		return outcome, err
	}

	ids := make([]int64, 0, len(requests))
	for _, request := range requests {
		if downgraded[request.Is4k] {
			ids = append(ids, int64(request.ID))
		}
	}

	if err := e.store.UpdateMediaItem(ctx, item); err != nil {
		return outcome, err
	}
	outcome.updated = true

	deleted, err := e.store.DeleteRequests(ctx, ids)
	if err != nil {
		return outcome, err
	}
	outcome.requestsDeleted = deleted

	return outcome, nil
}

// reconcileShow applies season transitions with their parent cascade first,
// then the show-level transition. Season failures are isolated: one bad
// season must not stop the rest of the show from being processed.
func (e *Engine) reconcileShow(ctx context.Context, item *storage.MediaItem, verdict Verdict) (itemOutcome, error) {
	log := logger.FromCtx(ctx)
	var outcome itemOutcome

	itemChanged := false

	for _, season := range item.Seasons {
		changed, deleted, err := e.reconcileSeason(ctx, item, season, verdict)
		if changed {
			itemChanged = true
		}
		outcome.seasonRequestsDeleted += deleted
		if err != nil {
			log.Debug("failed to reconcile season",
				zap.Int32("media_item", item.ID),
				zap.Int32("season", season.SeasonNumber),
				zap.Error(err))
		}
	}

	// the show-level request lookup joins on statuses still in the store
	requests, err := e.store.ListRequestsForAvailableMedia(ctx, int64(item.ID))
	if err != nil {
		return outcome, err
	}

	for _, is4k := range tiers {
		current := item.StatusFor(is4k)
		if !current.Reconcilable() || verdict.ExistsFor(is4k) {
			continue
		}

		next := nextShowStatus(requests, is4k)
		if err := storage.ReconcileMachine(current).ToState(next); err != nil {
			return outcome, err
		}

		item.SetStatusFor(is4k, next)
		if next != storage.MediaStatusProcessing {
			item.ClearReferencesFor(is4k)
		}
		itemChanged = true

		log.Infow("show no longer available, downgrading",
			"media_item", item.ID,
			"tmdb_id", item.TmdbID,
			"is4k", is4k,
			"next", string(next))
	}

	if itemChanged {
		if err := e.store.UpdateMediaItem(ctx, item); err != nil {
			return outcome, err
		}
		outcome.updated = true
	}

	return outcome, nil
}

// nextShowStatus picks the downgrade target for a show tier from its open
// requests: an approved request keeps it processing, a pending request keeps
// it pending, otherwise the tier falls back to unknown.
func nextShowStatus(requests []*model.MediaRequest, is4k bool) storage.MediaStatus {
	hasPending := false
	for _, request := range requests {
		if request.Is4k != is4k {
			continue
		}
		switch storage.RequestStatus(request.Status) {
		case storage.RequestStatusApproved:
			return storage.MediaStatusProcessing
		case storage.RequestStatusPending:
			hasPending = true
		}
	}

	if hasPending {
		return storage.MediaStatusPending
	}
	return storage.MediaStatusUnknown
}

// reconcileSeason downgrades one season's lost tiers, cascades a fully
// available parent down to partially available, and removes the season's
// requests on the downgraded tiers.
func (e *Engine) reconcileSeason(ctx context.Context, item *storage.MediaItem, season *model.Season, verdict Verdict) (bool, int64, error) {
	log := logger.FromCtx(ctx)

	downgraded := map[bool]bool{}
	for _, is4k := range tiers {
		current := storage.SeasonStatusFor(season, is4k)
		if !current.Reconcilable() || verdict.SeasonExists(season.SeasonNumber, is4k) {
			continue
		}

		storage.SetSeasonStatusFor(season, is4k, storage.MediaStatusUnknown)
		downgraded[is4k] = true

		log.Infow("season no longer available, downgrading",
			"media_item", item.ID,
			"season", season.SeasonNumber,
			"is4k", is4k)
	}

	if len(downgraded) == 0 {
		return false, 0, nil
	}

	err := e.store.UpdateSeasonStatuses(ctx, int64(season.ID),
		storage.MediaStatus(season.Status),
		storage.MediaStatus(season.Status4k))
	if err != nil {
		return false, 0, err
	}

	// only downgraded tiers can demote the parent: under the merged verdict a
	// season reads absent on a tier only when the whole show does, and the
	// show-level transition handles the item status in that case
	parentChanged := false
	for is4k := range downgraded {
		if item.StatusFor(is4k) == storage.MediaStatusAvailable {
			item.SetStatusFor(is4k, storage.MediaStatusPartiallyAvailable)
			parentChanged = true
		}
	}

	seasonRequests, err := e.store.ListSeasonRequests(ctx, int64(item.ID), season.SeasonNumber)
	if err != nil {
		return parentChanged, 0, err
	}

	ids := make([]int64, 0, len(seasonRequests))
	for _, request := range seasonRequests {
		if downgraded[request.Is4k] {
			ids = append(ids, int64(request.ID))
		}
	}

	deleted, err := e.store.DeleteSeasonRequests(ctx, ids)
	if err != nil {
		return parentChanged, 0, err
	}

	return parentChanged, deleted, nil
}
