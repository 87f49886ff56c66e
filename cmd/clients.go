package cmd

import (
	"github.com/availarr/availarr/config"
	"github.com/availarr/availarr/pkg/availability"
	mhttp "github.com/availarr/availarr/pkg/http"
	"github.com/availarr/availarr/pkg/plex"
	"github.com/availarr/availarr/pkg/radarr"
	"github.com/availarr/availarr/pkg/sonarr"
)

// newAggregator wires the configured media server and manager instances into
// an existence aggregator. All clients share the rate limit aware transport.
func newAggregator(cfg config.Config) *availability.Aggregator {
	httpClient := mhttp.NewRateLimitedClient(clientOptions(cfg.Plex)...)

	var plexClient plex.ClientInterface
	if cfg.Plex.Host != "" {
		plexClient = plex.New(httpClient, cfg.Plex.Scheme, cfg.Plex.Host, cfg.Plex.Token)
	}

	movies := make([]availability.MovieInstance, 0, len(cfg.Radarr))
	for _, instance := range cfg.Radarr {
		if !instance.Syncs() {
			continue
		}
		movies = append(movies, availability.MovieInstance{
			Client: radarr.New(httpClient, instanceScheme(instance), instance.Host, instance.APIKey),
			Name:   instance.Name,
			Is4k:   instance.Is4k,
		})
	}

	series := make([]availability.SeriesInstance, 0, len(cfg.Sonarr))
	for _, instance := range cfg.Sonarr {
		if !instance.Syncs() {
			continue
		}
		series = append(series, availability.SeriesInstance{
			Client: sonarr.New(httpClient, instanceScheme(instance), instance.Host, instance.APIKey),
			Name:   instance.Name,
			Is4k:   instance.Is4k,
		})
	}

	return availability.NewAggregator(plexClient, movies, series)
}

func clientOptions(cfg config.Plex) []mhttp.ClientOption {
	opts := []mhttp.ClientOption{}
	if cfg.BaseBackoff > 0 {
		opts = append(opts, mhttp.WithBaseBackoff(cfg.BaseBackoff))
	}
	if cfg.MaxRetries > 0 {
		opts = append(opts, mhttp.WithMaxRetries(cfg.MaxRetries))
	}
	return opts
}

func instanceScheme(instance config.ArrInstance) string {
	if instance.Scheme == "" {
		return "http"
	}
	return instance.Scheme
}
