// Command warmer pre-fills the places cache for the whole property portfolio
// so the first dashboard load after a deploy doesn't pay per-property lookup
// latency (or quota) online. One-shot; run it from cron or a release hook.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/hostaway"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/observability"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/places"
	redisad "github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/redis"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/app"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.WarmWorkers).
		Int("properties", len(shared.Properties)).
		Msg("warmer starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	hostawayClient := hostaway.New(cfg.HostawayBase, cfg.HostawayAccountID, cfg.HostawayKey, 5)
	placesClient := places.New(cfg.PlacesBase, cfg.PlacesKey, 10, cache, cfg.PlacesCacheTTL)
	svc := app.NewReviewService(hostawayClient, placesClient, app.NewApprovalStore())

	sem := semaphore.NewWeighted(int64(cfg.WarmWorkers))
	var wg sync.WaitGroup

	for _, p := range shared.Properties {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(prop shared.Property) {
			defer wg.Done()
			defer sem.Release(1)

			reviews, err := svc.SearchPlacesReviews(ctx, prop.Name, prop.Address)
			if err != nil {
				log.Warn().Str("property", prop.ID).Err(err).Msg("warm failed")
				return
			}
			log.Info().Str("property", prop.ID).Int("reviews", len(reviews)).Msg("warm ok")
		}(p)
	}

	wg.Wait()
	log.Info().Msg("warming completed")
}
