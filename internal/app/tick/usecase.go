// Package tick closes the current directive week and opens the next one.
package tick

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/eventgen"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/opinion"
	"watchfloor/internal/domain/protest"
)

var ErrInvalidRequest = errors.New("invalid advance request")

// missedFlagPenalty is the reluctance added per flag left unfiled when a
// week closes.
const missedFlagPenalty = 5

type UseCase struct {
	TxManager   ports.TxManager
	Operators   ports.OperatorRepository
	MetricsRepo ports.MetricsRepository
	Directives  ports.DirectiveRepository
	Protests    ports.ProtestRepository
	Channels    ports.NewsChannelRepository
	Articles    ports.NewsArticleRepository
	Books       ports.BookRepository
	Rand        operation.Rand
	Logger      *slog.Logger
	Now         func() time.Time
}

func (u UseCase) logger() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) Advance(ctx context.Context, req Request) (Response, error) {
	req.OperatorID = strings.TrimSpace(req.OperatorID)
	if req.OperatorID == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()
	out := Response{Protests: []ProtestUpdate{}, Warnings: []string{}}

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		op, err := operatorstate.LoadActive(txCtx, u.Operators, req.OperatorID)
		if err != nil {
			return err
		}
		rel, err := u.MetricsRepo.GetReluctance(txCtx)
		if err != nil {
			return err
		}
		public, err := u.MetricsRepo.GetPublic(txCtx)
		if err != nil {
			return err
		}

		if err := u.closeWeek(&op, &rel, &out); err != nil {
			return err
		}
		// Compliance scores the week that just closed, before its quota resets.
		change := compliance.Refresh(&op, rel)
		out.ComplianceScore = change.ComplianceAfter
		if err := u.openWeek(txCtx, &op, &rel, &out); err != nil {
			return err
		}
		if err := u.advanceProtests(txCtx, now, &out); err != nil {
			return err
		}
		if err := u.ignorePendingBooks(txCtx, &out); err != nil {
			return err
		}
		if err := u.rollTickEvents(txCtx, op.CurrentWeek, now, &public, &out); err != nil {
			return err
		}

		if t, ok := compliance.CheckTermination(rel.Score, op.CurrentWeek); ok {
			compliance.Terminate(&op, t)
			out.Termination = &t
			out.Warnings = append(out.Warnings, t.Message)
		}
		out.Status = op.Status
		out.Week = op.CurrentWeek

		if err := u.MetricsRepo.SavePublic(txCtx, public); err != nil {
			return err
		}
		if err := u.MetricsRepo.SaveReluctance(txCtx, rel); err != nil {
			return err
		}
		return u.Operators.Save(txCtx, op)
	})
	if err != nil {
		return Response{}, err
	}

	u.logger().Info("directive advanced",
		"operator_id", req.OperatorID,
		"week", out.Week,
		"missed_quota", out.MissedQuota,
		"protest_updates", len(out.Protests),
		"books_ignored", len(out.BooksIgnored),
		"completed", out.Completed,
	)
	return out, nil
}

// closeWeek charges reluctance for every flag left unfiled.
func (u UseCase) closeWeek(op *operation.Operator, rel *operation.ReluctanceMetrics, out *Response) error {
	shortfall := rel.Shortfall()
	if shortfall == 0 {
		return nil
	}
	op.MissedQuotas++
	update := compliance.ApplyReluctanceDelta(rel, missedFlagPenalty*shortfall)
	out.MissedQuota = true
	out.Shortfall = shortfall
	out.ReluctanceDelta = update.Delta
	if update.Warning != nil {
		out.Warnings = append(out.Warnings, update.Warning.Message)
	}
	return nil
}

func (u UseCase) openWeek(ctx context.Context, op *operation.Operator, rel *operation.ReluctanceMetrics, out *Response) error {
	op.CurrentWeek++
	rel.QuotaCompleted = 0
	rel.QuotaRequired = 0

	last, err := u.Directives.LastWeek(ctx)
	if err != nil {
		return err
	}
	out.Completed = op.CurrentWeek > last

	d, err := u.Directives.GetByWeek(ctx, op.CurrentWeek)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		op.CurrentDirectiveID = ""
	case err != nil:
		return err
	default:
		op.CurrentDirectiveID = d.ID
		rel.QuotaRequired = d.FlagQuota
		out.Directive = &d
	}
	rel.LastShortfall = rel.Shortfall()
	return nil
}

func (u UseCase) advanceProtests(ctx context.Context, now time.Time, out *Response) error {
	protests, err := u.Protests.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range protests {
		if p.Status.Terminal() {
			continue
		}
		adv, err := protest.NaturalAdvance(&p, u.Rand, now)
		if err != nil {
			return fmt.Errorf("advance protest %s: %w", p.ID, err)
		}
		if !adv.Changed() {
			continue
		}
		if err := u.Protests.Update(ctx, p); err != nil {
			return err
		}
		out.Protests = append(out.Protests, ProtestUpdate{
			ID:           p.ID,
			Neighborhood: p.Neighborhood,
			From:         adv.From,
			To:           adv.To,
			OldSize:      adv.OldSize,
			NewSize:      adv.NewSize,
		})
	}
	return nil
}

// ignorePendingBooks closes out publications the operator let through during
// the week that just ended.
func (u UseCase) ignorePendingBooks(ctx context.Context, out *Response) error {
	books, err := u.Books.List(ctx)
	if err != nil {
		return err
	}
	for _, b := range books {
		if b.Status != operation.BookPending {
			continue
		}
		b.Status = operation.BookIgnored
		if err := u.Books.Update(ctx, b); err != nil {
			return err
		}
		out.BooksIgnored = append(out.BooksIgnored, b.ID)
	}
	return nil
}

func (u UseCase) rollTickEvents(ctx context.Context, week int, now time.Time, public *operation.PublicMetrics, out *Response) error {
	channels, err := u.Channels.List(ctx)
	if err != nil {
		return err
	}
	events := eventgen.ForTick(eventgen.TickInput{Week: week, Channels: channels, Now: now}, u.Rand)
	if a := events.Article; a != nil {
		if err := u.Articles.Add(ctx, *a); err != nil {
			return err
		}
		change := opinion.NewEngine(public).ApplyDelta(a.AwarenessDelta, a.AngerDelta)
		out.TierEvents = append(out.TierEvents, change.TierEvents...)
		out.Article = a
	}
	if b := events.Book; b != nil {
		if err := u.Books.Add(ctx, *b); err != nil {
			return err
		}
		out.Book = b
	}
	return nil
}
