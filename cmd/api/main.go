package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/http_server"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/hostaway"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/observability"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/places"
	redisad "github.com/AMGHAR-ELMAHDI/Flex-Living/internal/adapters/redis"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/app"
	"github.com/AMGHAR-ELMAHDI/Flex-Living/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	hostawayClient := hostaway.New(cfg.HostawayBase, cfg.HostawayAccountID, cfg.HostawayKey, 5)
	placesClient := places.New(cfg.PlacesBase, cfg.PlacesKey, 10, cache, cfg.PlacesCacheTTL)
	svc := app.NewReviewService(hostawayClient, placesClient, app.NewApprovalStore())

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
