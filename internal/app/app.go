package app

import (
	"fmt"
	"net/http"

	"github.com/fplhub/fpl-live/internal/config"
	"github.com/fplhub/fpl-live/internal/infrastructure/repository/memory"
	"github.com/fplhub/fpl-live/internal/interfaces/httpapi"
	"github.com/fplhub/fpl-live/internal/platform/cache"
	"github.com/fplhub/fpl-live/internal/platform/logging"
	"github.com/fplhub/fpl-live/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	playerRepo := memory.NewPlayerRepository(nil)
	teamRepo := memory.NewTeamRepository(nil)
	fixtureRepo := memory.NewFixtureRepository(nil)
	liveRepo := memory.NewLiveRepository(nil)
	entryRepo := memory.NewEntryRepository(nil)
	leagueRepo := memory.NewLeagueRepository(nil, nil)
	if cfg.SeedDemoData {
		playerRepo = memory.NewPlayerRepository(memory.SeedPlayers())
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		fixtureRepo = memory.NewFixtureRepository(memory.SeedFixtures())
		liveRepo = memory.NewLiveRepository(memory.SeedLiveElements())
		entryRepo = memory.NewEntryRepository(memory.SeedEntryPicks())
		leagueRepo = memory.NewLeagueRepository(memory.SeedLeagues())
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	liveScoreSvc := usecase.NewLiveScoreService(playerRepo, teamRepo, fixtureRepo, liveRepo, entryRepo, logger)
	standingsSvc := usecase.NewStandingsService(leagueRepo, liveScoreSvc, store, cfg.StandingsMaxWorkers, logger)
	ingestionSvc := usecase.NewIngestionService(playerRepo, teamRepo, fixtureRepo, liveRepo, entryRepo, leagueRepo, store, logger)

	handler := httpapi.NewHandler(liveScoreSvc, standingsSvc, ingestionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalSnapshotToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
