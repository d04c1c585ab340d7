package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	httpadapter "watchfloor/internal/adapter/http"
	"watchfloor/internal/adapter/random"
	"watchfloor/internal/adapter/refdata"
	gormrepo "watchfloor/internal/adapter/repo/gorm"
	"watchfloor/internal/adapter/repo/memory"
	"watchfloor/internal/bootstrap"
	"watchfloor/internal/config"
	"watchfloor/internal/domain/operation"
)

func main() {
	configPath := flag.String("config", "", "path to a watchfloor yaml config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	slog.SetDefault(logger)

	scenario, err := refdata.LoadScenario(cfg.Game.ScenarioPath)
	if err != nil {
		fatal(logger, "load scenario", err)
	}
	if cfg.Game.ScriptedCitizenID != "" {
		scenario.ScriptedCitizenID = cfg.Game.ScriptedCitizenID
	}
	reference, err := refdata.NewProvider()
	if err != nil {
		fatal(logger, "load risk tables", err)
	}

	repos := mustBuildRepos(logger, cfg, scenario)
	rng := random.NewSource(cfg.Game.Seed)
	svc := bootstrap.Build(repos, bootstrap.Deps{
		Rand:              rng,
		Reference:         reference,
		ScriptedCitizenID: scenario.ScriptedCitizenID,
		Logger:            logger,
		Now:               time.Now,
	})

	h := httpadapter.Handler{
		ActionUC: svc.Action,
		FlagUC:   svc.Flag,
		TickUC:   svc.Tick,
		StatusUC: svc.Status,
		EndingUC: svc.Ending,
		ReplayUC: svc.Replay,
		KPI:      svc.KPI,
	}

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	logger.Info("watchfloor server listening",
		"addr", cfg.Server.Addr,
		"operator_id", scenario.OperatorID,
		"seed", rng.Seed(),
		"persistent", cfg.Database.DSN != "",
	)
	s.Spin()
}

func mustBuildRepos(logger *slog.Logger, cfg config.Config, scenario operation.Scenario) bootstrap.Repos {
	if cfg.Database.DSN == "" {
		store := memory.NewStore()
		if err := store.Seed(scenario); err != nil {
			fatal(logger, "seed memory store", err)
		}
		logger.Warn("WATCHFLOOR_DB_DSN not set, playthrough is kept in memory")
		return bootstrap.MemoryRepos(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		fatal(logger, "open postgres", err)
	}
	ctx := context.Background()
	applied, err := gormrepo.ApplyMigrations(ctx, db, os.DirFS(cfg.Database.MigrationsDir))
	if err != nil {
		fatal(logger, "apply migrations", err)
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", "versions", applied)
	}
	seeded, err := gormrepo.EnsureSeeded(ctx, db, scenario)
	if err != nil {
		fatal(logger, "seed playthrough", err)
	}
	if seeded {
		logger.Info("playthrough seeded", "operator_id", scenario.OperatorID)
	}
	return bootstrap.GormRepos(db)
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
