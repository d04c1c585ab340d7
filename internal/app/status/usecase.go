package status

import (
	"context"
	"errors"
	"strings"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
)

var ErrInvalidRequest = errors.New("invalid status request")

const defaultArticleLimit = 10

type UseCase struct {
	TxManager   ports.TxManager
	Operators   ports.OperatorRepository
	MetricsRepo ports.MetricsRepository
	Directives  ports.DirectiveRepository
	Protests    ports.ProtestRepository
	Articles    ports.NewsArticleRepository
	Books       ports.BookRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.OperatorID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.ArticleLimit
	if limit <= 0 {
		limit = defaultArticleLimit
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		op, err := operatorstate.Load(txCtx, u.Operators, strings.TrimSpace(req.OperatorID))
		if err != nil {
			return err
		}
		out.Operator = op
		if op.CurrentDirectiveID != "" {
			d, err := u.Directives.GetByID(txCtx, op.CurrentDirectiveID)
			if err != nil && !errors.Is(err, ports.ErrNotFound) {
				return err
			}
			if err == nil {
				out.Directive = &d
			}
		}
		if out.Public, err = u.MetricsRepo.GetPublic(txCtx); err != nil {
			return err
		}
		if out.Reluctance, err = u.MetricsRepo.GetReluctance(txCtx); err != nil {
			return err
		}
		out.WarningLevel = compliance.BandFor(out.Reluctance.Score).String()
		out.Assessment = compliance.Assess(op, out.Reluctance)

		protests, err := u.Protests.List(txCtx)
		if err != nil {
			return err
		}
		out.OpenProtests = make([]operation.Protest, 0, len(protests))
		for _, p := range protests {
			if !p.Status.Terminal() {
				out.OpenProtests = append(out.OpenProtests, p)
			}
		}
		if out.RecentArticles, err = u.Articles.ListRecent(txCtx, limit); err != nil {
			return err
		}
		books, err := u.Books.List(txCtx)
		if err != nil {
			return err
		}
		out.PendingBooks = make([]operation.BookPublication, 0, len(books))
		for _, b := range books {
			if b.Status == operation.BookPending {
				out.PendingBooks = append(out.PendingBooks, b)
			}
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
