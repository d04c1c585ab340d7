// Package bootstrap wires repositories into the use cases.
package bootstrap

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	metricsinmem "watchfloor/internal/adapter/metrics/inmemory"
	gormrepo "watchfloor/internal/adapter/repo/gorm"
	"watchfloor/internal/adapter/repo/memory"
	"watchfloor/internal/app/action"
	"watchfloor/internal/app/ending"
	"watchfloor/internal/app/flag"
	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/replay"
	"watchfloor/internal/app/status"
	"watchfloor/internal/app/tick"
	"watchfloor/internal/domain/operation"
)

type Repos struct {
	TxManager     ports.TxManager
	Citizens      ports.CitizenRepository
	Protests      ports.ProtestRepository
	Channels      ports.NewsChannelRepository
	Articles      ports.NewsArticleRepository
	Metrics       ports.MetricsRepository
	Operators     ports.OperatorRepository
	Actions       ports.ActionRepository
	Flags         ports.FlagRepository
	Directives    ports.DirectiveRepository
	Neighborhoods ports.NeighborhoodRepository
	Books         ports.BookRepository
}

func MemoryRepos(store *memory.Store) Repos {
	return Repos{
		TxManager:     memory.NewTxManager(store),
		Citizens:      memory.NewCitizenRepo(store),
		Protests:      memory.NewProtestRepo(store),
		Channels:      memory.NewNewsChannelRepo(store),
		Articles:      memory.NewNewsArticleRepo(store),
		Metrics:       memory.NewMetricsRepo(store),
		Operators:     memory.NewOperatorRepo(store),
		Actions:       memory.NewActionRepo(store),
		Flags:         memory.NewFlagRepo(store),
		Directives:    memory.NewDirectiveRepo(store),
		Neighborhoods: memory.NewNeighborhoodRepo(store),
		Books:         memory.NewBookRepo(store),
	}
}

func GormRepos(db *gorm.DB) Repos {
	return Repos{
		TxManager:     gormrepo.NewTxManager(db),
		Citizens:      gormrepo.NewCitizenRepo(db),
		Protests:      gormrepo.NewProtestRepo(db),
		Channels:      gormrepo.NewNewsChannelRepo(db),
		Articles:      gormrepo.NewNewsArticleRepo(db),
		Metrics:       gormrepo.NewMetricsRepo(db),
		Operators:     gormrepo.NewOperatorRepo(db),
		Actions:       gormrepo.NewActionRepo(db),
		Flags:         gormrepo.NewFlagRepo(db),
		Directives:    gormrepo.NewDirectiveRepo(db),
		Neighborhoods: gormrepo.NewNeighborhoodRepo(db),
		Books:         gormrepo.NewBookRepo(db),
	}
}

type Deps struct {
	Rand              operation.Rand
	Reference         ports.ReferenceData
	ScriptedCitizenID string
	Logger            *slog.Logger
	Now               func() time.Time
}

type Services struct {
	Action action.UseCase
	Flag   flag.UseCase
	Tick   tick.UseCase
	Status status.UseCase
	Ending ending.UseCase
	Replay replay.UseCase
	KPI    *metricsinmem.Recorder
}

func Build(r Repos, d Deps) Services {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	kpi := metricsinmem.NewRecorder()
	return Services{
		Action: action.UseCase{
			TxManager:     r.TxManager,
			Citizens:      r.Citizens,
			Protests:      r.Protests,
			Channels:      r.Channels,
			Articles:      r.Articles,
			MetricsRepo:   r.Metrics,
			Operators:     r.Operators,
			Actions:       r.Actions,
			Neighborhoods: r.Neighborhoods,
			Books:         r.Books,
			Metrics:       kpi,
			Rand:          d.Rand,
			Logger:        d.Logger,
			Now:           now,
		},
		Flag: flag.UseCase{
			TxManager:   r.TxManager,
			Citizens:    r.Citizens,
			Flags:       r.Flags,
			Operators:   r.Operators,
			MetricsRepo: r.Metrics,
			Reference:   d.Reference,
			Logger:      d.Logger,
			Now:         now,
		},
		Tick: tick.UseCase{
			TxManager:   r.TxManager,
			Operators:   r.Operators,
			MetricsRepo: r.Metrics,
			Directives:  r.Directives,
			Protests:    r.Protests,
			Channels:    r.Channels,
			Articles:    r.Articles,
			Books:       r.Books,
			Rand:        d.Rand,
			Logger:      d.Logger,
			Now:         now,
		},
		Status: status.UseCase{
			TxManager:   r.TxManager,
			Operators:   r.Operators,
			MetricsRepo: r.Metrics,
			Directives:  r.Directives,
			Protests:    r.Protests,
			Articles:    r.Articles,
			Books:       r.Books,
		},
		Ending: ending.UseCase{
			TxManager:         r.TxManager,
			Operators:         r.Operators,
			MetricsRepo:       r.Metrics,
			Flags:             r.Flags,
			Actions:           r.Actions,
			ScriptedCitizenID: d.ScriptedCitizenID,
			Logger:            d.Logger,
		},
		Replay: replay.UseCase{
			TxManager: r.TxManager,
			Actions:   r.Actions,
		},
		KPI: kpi,
	}
}
