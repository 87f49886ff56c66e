package availability

import (
	"context"
	"errors"

	"github.com/availarr/availarr/pkg/cache"
	"github.com/availarr/availarr/pkg/logger"
	"github.com/availarr/availarr/pkg/plex"
	"github.com/availarr/availarr/pkg/radarr"
	"github.com/availarr/availarr/pkg/sonarr"
	"github.com/availarr/availarr/pkg/storage"
	"go.uber.org/zap"
)

// MovieInstance is a configured movie manager with its tier.
type MovieInstance struct {
	Client radarr.ClientInterface
	Name   string
	Is4k   bool
}

// SeriesInstance is a configured series manager with its tier.
type SeriesInstance struct {
	Client sonarr.ClientInterface
	Name   string
	Is4k   bool
}

// Verdict is the aggregated existence conclusion for one item. For shows the
// season maps hold one entry per season number on the catalog item.
type Verdict struct {
	Exists    bool
	Exists4k  bool
	Seasons   map[int32]bool
	Seasons4k map[int32]bool
}

// ExistsFor returns the item verdict for a tier.
func (v Verdict) ExistsFor(is4k bool) bool {
	if is4k {
		return v.Exists4k
	}
	return v.Exists
}

// SeasonExists returns the season verdict for a tier.
func (v Verdict) SeasonExists(seasonNumber int32, is4k bool) bool {
	if is4k {
		return v.Seasons4k[seasonNumber]
	}
	return v.Seasons[seasonNumber]
}

// probeResult carries one probe's existence answer. assume is set when a
// transient failure forced the conservative "exists" answer.
type probeResult struct {
	exists bool
	assume bool
}

type seasonCacheKey struct {
	is4k      bool
	serviceID int32
}

// Aggregator merges existence probes across the media server and every
// configured manager instance. The caches live for one reconciliation run and
// avoid re-fetching season lists once per season of the same show.
type Aggregator struct {
	plex          plex.ClientInterface
	movies        []MovieInstance
	series        []SeriesInstance
	plexChildren  *cache.Cache[string, []plex.Metadata]
	seriesSeasons *cache.Cache[seasonCacheKey, []sonarr.Season]
}

func NewAggregator(plexClient plex.ClientInterface, movies []MovieInstance, series []SeriesInstance) *Aggregator {
	if plexClient == nil {
		plexClient = plex.NullClient{}
	}
	return &Aggregator{
		plex:          plexClient,
		movies:        movies,
		series:        series,
		plexChildren:  cache.New[string, []plex.Metadata](),
		seriesSeasons: cache.New[seasonCacheKey, []sonarr.Season](),
	}
}

// Reset discards the per-run caches. Call at the start of every run.
func (a *Aggregator) Reset() {
	a.plexChildren.Reset()
	a.seriesSeasons.Reset()
}

// Movie aggregates existence for a movie across tiers.
func (a *Aggregator) Movie(ctx context.Context, item *storage.MediaItem) Verdict {
	return Verdict{
		Exists:   a.movieExists(ctx, item, false),
		Exists4k: a.movieExists(ctx, item, true),
	}
}

func (a *Aggregator) movieExists(ctx context.Context, item *storage.MediaItem, is4k bool) bool {
	server := a.probeServer(ctx, item, is4k)
	if server.exists {
		return true
	}

	for _, instance := range a.movies {
		if instance.Is4k != is4k {
			continue
		}
		if a.probeMovieManager(ctx, instance, item, is4k).exists {
			return true
		}
	}

	return false
}

// Show aggregates existence for a show across tiers and produces the per-season
// verdict maps. A season is treated as existing when any source lists it with
// content, or when the show itself is confirmed anywhere on that tier.
func (a *Aggregator) Show(ctx context.Context, item *storage.MediaItem) Verdict {
	verdict := Verdict{
		Seasons:   make(map[int32]bool, len(item.Seasons)),
		Seasons4k: make(map[int32]bool, len(item.Seasons)),
	}

	for _, is4k := range []bool{false, true} {
		server := a.probeServer(ctx, item, is4k)
		if server.exists && !server.assume {
			a.cacheChildren(ctx, item, is4k, &server)
		}

		manager := probeResult{}
		for _, instance := range a.series {
			if instance.Is4k != is4k {
				continue
			}
			result := a.probeSeriesManager(ctx, instance, item, is4k)
			if result.exists {
				manager.exists = true
			}
			if result.assume {
				manager.assume = true
			}
		}

		itemExists := server.exists || manager.exists

		for _, season := range item.Seasons {
			exists := a.serverSeasonExists(item, season.SeasonNumber, is4k, server) ||
				a.managerSeasonExists(item, season.SeasonNumber, is4k, manager) ||
				itemExists

			if is4k {
				verdict.Seasons4k[season.SeasonNumber] = exists
			} else {
				verdict.Seasons[season.SeasonNumber] = exists
			}
		}

		if is4k {
			verdict.Exists4k = itemExists
		} else {
			verdict.Exists = itemExists
		}
	}

	return verdict
}

// probeServer asks the media server for the item's metadata on a tier. An
// empty reference means the server was never known to have the item.
func (a *Aggregator) probeServer(ctx context.Context, item *storage.MediaItem, is4k bool) probeResult {
	log := logger.FromCtx(ctx)

	key := item.RatingKeyFor(is4k)
	if key == nil || *key == "" {
		return probeResult{}
	}

	_, err := a.plex.GetMetadata(ctx, *key)
	if err != nil {
		if errors.Is(err, plex.ErrNotFound) {
			return probeResult{}
		}
		log.Warn("media server probe failed, assuming item exists",
			zap.Int32("media_item", item.ID),
			zap.Bool("is4k", is4k),
			zap.Error(err))
		return probeResult{exists: true, assume: true}
	}

	log.Debugw("media server confirmed item", "media_item", item.ID, "is4k", is4k)
	return probeResult{exists: true}
}

// cacheChildren fetches and caches the season listing for a show the server
// confirmed. A failure here flips the result to the conservative fallback so
// season lookups assume presence rather than removing on a partial answer.
func (a *Aggregator) cacheChildren(ctx context.Context, item *storage.MediaItem, is4k bool, server *probeResult) {
	log := logger.FromCtx(ctx)

	key := item.RatingKeyFor(is4k)
	if key == nil || *key == "" {
		return
	}

	if _, ok := a.plexChildren.Get(*key); ok {
		return
	}

	children, err := a.plex.GetChildren(ctx, *key)
	if err != nil && !errors.Is(err, plex.ErrNotFound) {
		log.Warn("media server season listing failed, assuming seasons exist",
			zap.Int32("media_item", item.ID),
			zap.Bool("is4k", is4k),
			zap.Error(err))
		server.assume = true
		return
	}

	a.plexChildren.Set(*key, children)
}

func (a *Aggregator) probeMovieManager(ctx context.Context, instance MovieInstance, item *storage.MediaItem, is4k bool) probeResult {
	log := logger.FromCtx(ctx)

	id := item.ServiceIDFor(is4k)
	if id == nil {
		return probeResult{}
	}

	movie, err := instance.Client.GetMovieByID(ctx, int64(*id))
	if err != nil {
		if errors.Is(err, radarr.ErrNotFound) {
			return probeResult{}
		}
		log.Warn("movie manager probe failed, assuming item exists",
			zap.String("instance", instance.Name),
			zap.Int32("media_item", item.ID),
			zap.Bool("is4k", is4k),
			zap.Error(err))
		return probeResult{exists: true, assume: true}
	}

	if movie.HasFile {
		log.Debugw("movie manager confirmed item", "instance", instance.Name, "media_item", item.ID, "is4k", is4k)
	}
	return probeResult{exists: movie.HasFile}
}

func (a *Aggregator) probeSeriesManager(ctx context.Context, instance SeriesInstance, item *storage.MediaItem, is4k bool) probeResult {
	log := logger.FromCtx(ctx)

	id := item.ServiceIDFor(is4k)
	if id == nil {
		return probeResult{}
	}

	series, err := instance.Client.GetSeriesByID(ctx, int64(*id))
	if err != nil {
		if errors.Is(err, sonarr.ErrNotFound) {
			return probeResult{}
		}
		log.Warn("series manager probe failed, assuming item exists",
			zap.String("instance", instance.Name),
			zap.Int32("media_item", item.ID),
			zap.Bool("is4k", is4k),
			zap.Error(err))
		return probeResult{exists: true, assume: true}
	}

	a.seriesSeasons.Set(seasonCacheKey{is4k: is4k, serviceID: *id}, series.Seasons)

	if series.Statistics.HasFiles() {
		log.Debugw("series manager confirmed item", "instance", instance.Name, "media_item", item.ID, "is4k", is4k)
	}
	return probeResult{exists: series.Statistics.HasFiles()}
}

// serverSeasonExists checks the cached children listing for a season. A prior
// transient failure on this tier skips the lookup and assumes presence.
func (a *Aggregator) serverSeasonExists(item *storage.MediaItem, seasonNumber int32, is4k bool, server probeResult) bool {
	if server.assume {
		return true
	}

	key := item.RatingKeyFor(is4k)
	if key == nil || *key == "" {
		return false
	}

	children, ok := a.plexChildren.Get(*key)
	if !ok {
		return false
	}

	for _, child := range children {
		if int32(child.Index) == seasonNumber {
			return true
		}
	}
	return false
}

// managerSeasonExists checks the cached manager season descriptors for episode
// files. A prior transient failure on this tier assumes presence.
func (a *Aggregator) managerSeasonExists(item *storage.MediaItem, seasonNumber int32, is4k bool, manager probeResult) bool {
	if manager.assume {
		return true
	}

	id := item.ServiceIDFor(is4k)
	if id == nil {
		return false
	}

	seasons, ok := a.seriesSeasons.Get(seasonCacheKey{is4k: is4k, serviceID: *id})
	if !ok {
		return false
	}

	for _, season := range seasons {
		if season.SeasonNumber == seasonNumber && season.Statistics.HasFiles() {
			return true
		}
	}
	return false
}
