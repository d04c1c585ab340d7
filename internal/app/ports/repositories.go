package ports

import (
	"context"

	"watchfloor/internal/domain/operation"
)

type CitizenRepository interface {
	GetByID(ctx context.Context, id string) (operation.Citizen, error)
	Save(ctx context.Context, citizen operation.Citizen) error
	List(ctx context.Context) ([]operation.Citizen, error)
}

type ProtestRepository interface {
	GetByID(ctx context.Context, id string) (operation.Protest, error)
	Add(ctx context.Context, protest operation.Protest) error
	Update(ctx context.Context, protest operation.Protest) error
	List(ctx context.Context) ([]operation.Protest, error)
}

type NewsChannelRepository interface {
	GetByID(ctx context.Context, id string) (operation.NewsChannel, error)
	Update(ctx context.Context, channel operation.NewsChannel) error
	List(ctx context.Context) ([]operation.NewsChannel, error)
}

type NewsArticleRepository interface {
	Add(ctx context.Context, article operation.NewsArticle) error
	// ListRecent returns newest first; limit <= 0 means all.
	ListRecent(ctx context.Context, limit int) ([]operation.NewsArticle, error)
}

// MetricsRepository holds the two per-playthrough singletons.
type MetricsRepository interface {
	GetPublic(ctx context.Context) (operation.PublicMetrics, error)
	SavePublic(ctx context.Context, metrics operation.PublicMetrics) error
	GetReluctance(ctx context.Context) (operation.ReluctanceMetrics, error)
	SaveReluctance(ctx context.Context, metrics operation.ReluctanceMetrics) error
}

type OperatorRepository interface {
	Get(ctx context.Context) (operation.Operator, error)
	Save(ctx context.Context, operator operation.Operator) error
}

type ActionFilter struct {
	OperatorID string
	Kind       operation.ActionKind
	Limit      int
}

type ActionRepository interface {
	Add(ctx context.Context, action operation.Action) error
	List(ctx context.Context, filter ActionFilter) ([]operation.Action, error)
	SetOutcome(ctx context.Context, actionID string, slot operation.OutcomeSlot, text string) error
}

type FlagRepository interface {
	Add(ctx context.Context, flag operation.CitizenFlag) error
	GetByID(ctx context.Context, id string) (operation.CitizenFlag, error)
	Update(ctx context.Context, flag operation.CitizenFlag) error
	List(ctx context.Context) ([]operation.CitizenFlag, error)
}

type DirectiveRepository interface {
	GetByID(ctx context.Context, id string) (operation.Directive, error)
	GetByWeek(ctx context.Context, week int) (operation.Directive, error)
	// LastWeek returns the highest directive week, or 0 without directives.
	LastWeek(ctx context.Context) (int, error)
}

type NeighborhoodRepository interface {
	List(ctx context.Context) ([]operation.Neighborhood, error)
}

type BookRepository interface {
	Add(ctx context.Context, book operation.BookPublication) error
	GetByID(ctx context.Context, id string) (operation.BookPublication, error)
	Update(ctx context.Context, book operation.BookPublication) error
	List(ctx context.Context) ([]operation.BookPublication, error)
}
