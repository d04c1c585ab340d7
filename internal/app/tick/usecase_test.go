package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"watchfloor/internal/adapter/repo/memory"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/operation/optest"
)

var tickNow = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, r operation.Rand) UseCase {
	t.Helper()
	store := memory.NewStore()
	err := store.Seed(operation.Scenario{
		OperatorID:    "op-1",
		Neighborhoods: []operation.Neighborhood{{Name: "Eastside", Bounds: operation.Bounds{MaxX: 50, MaxY: 50}}},
		Channels: []operation.NewsChannel{
			{ID: "ch-1", Name: "The Ledger", Stance: operation.StanceCritical, Credibility: 60},
			{ID: "ch-2", Name: "National Voice", Stance: operation.StanceStateFriendly, Credibility: 40},
		},
		Directives: []operation.Directive{
			{ID: "dir-1", Week: 1, FlagQuota: 2},
			{ID: "dir-2", Week: 2, FlagQuota: 3},
			{ID: "dir-4", Week: 4, FlagQuota: 4},
			{ID: "dir-7", Week: 7, FlagQuota: 4},
		},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return UseCase{
		TxManager:   memory.NewTxManager(store),
		Operators:   memory.NewOperatorRepo(store),
		MetricsRepo: memory.NewMetricsRepo(store),
		Directives:  memory.NewDirectiveRepo(store),
		Protests:    memory.NewProtestRepo(store),
		Channels:    memory.NewNewsChannelRepo(store),
		Articles:    memory.NewNewsArticleRepo(store),
		Books:       memory.NewBookRepo(store),
		Rand:        r,
		Now:         func() time.Time { return tickNow },
	}
}

func setWeek(t *testing.T, uc UseCase, week int, reluctance int) {
	t.Helper()
	ctx := context.Background()
	op, _ := uc.Operators.Get(ctx)
	op.CurrentWeek = week
	if err := uc.Operators.Save(ctx, op); err != nil {
		t.Fatalf("save operator: %v", err)
	}
	rel, _ := uc.MetricsRepo.GetReluctance(ctx)
	rel.Score = reluctance
	if err := uc.MetricsRepo.SaveReluctance(ctx, rel); err != nil {
		t.Fatalf("save reluctance: %v", err)
	}
}

func TestAdvance_MissedQuotaRaisesReluctanceAndOpensNextDirective(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	ctx := context.Background()

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !out.MissedQuota || out.Shortfall != 2 || out.ReluctanceDelta != 10 {
		t.Fatalf("unexpected quota outcome %+v", out)
	}
	if out.Week != 2 || out.Directive == nil || out.Directive.ID != "dir-2" {
		t.Fatalf("expected week 2 directive, got week=%d directive=%+v", out.Week, out.Directive)
	}
	op, _ := uc.Operators.Get(ctx)
	if op.MissedQuotas != 1 || op.CurrentDirectiveID != "dir-2" {
		t.Fatalf("unexpected operator %+v", op)
	}
	rel, _ := uc.MetricsRepo.GetReluctance(ctx)
	if rel.QuotaRequired != 3 || rel.QuotaCompleted != 0 || rel.LastShortfall != 3 {
		t.Fatalf("unexpected reluctance %+v", rel)
	}
}

func TestAdvance_ProgressesOpenProtests(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	ctx := context.Background()
	_ = uc.Protests.Add(ctx, operation.Protest{ID: "pr-1", Status: operation.ProtestForming, Size: 300, Neighborhood: "Eastside"})
	_ = uc.Protests.Add(ctx, operation.Protest{ID: "pr-2", Status: operation.ProtestDispersed, Size: 100, Neighborhood: "Eastside"})

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(out.Protests) != 1 {
		t.Fatalf("expected one protest update, got %+v", out.Protests)
	}
	got := out.Protests[0]
	if got.ID != "pr-1" || got.To != operation.ProtestActive || got.NewSize <= got.OldSize {
		t.Fatalf("expected forming protest to grow into active, got %+v", got)
	}
	if out.Article != nil || out.Book != nil {
		t.Fatal("expected no tick events on high draws")
	}
}

func TestAdvance_RollsBackgroundArticleAndBook(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.1))
	ctx := context.Background()
	setWeek(t, uc, 3, 0)
	_ = uc.Protests.Add(ctx, operation.Protest{ID: "pr-1", Status: operation.ProtestActive, Size: 900, Neighborhood: "Eastside"})

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(out.Protests) != 1 || out.Protests[0].To != operation.ProtestDispersed {
		t.Fatalf("expected active protest to dissolve, got %+v", out.Protests)
	}
	if out.Article == nil || out.Article.ChannelID != "ch-1" {
		t.Fatalf("expected background article from the critical outlet, got %+v", out.Article)
	}
	if out.Book == nil || out.Book.Status != operation.BookPending || out.Book.Week != 4 {
		t.Fatalf("expected pending week-4 book, got %+v", out.Book)
	}
	books, _ := uc.Books.List(ctx)
	if len(books) != 1 {
		t.Fatalf("expected stored book, got %d", len(books))
	}
	public, _ := uc.MetricsRepo.GetPublic(ctx)
	if public.Awareness != 2 || public.Anger != 2 {
		t.Fatalf("expected critical background impact, got %+v", public)
	}
}

func TestAdvance_CompletesAfterLastDirectiveWeek(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	setWeek(t, uc, 7, 0)

	out, err := uc.Advance(context.Background(), Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !out.Completed || out.Directive != nil || out.Week != 8 {
		t.Fatalf("expected completion at week 8, got %+v", out)
	}
}

func TestAdvance_GapWeekIsNotCompletion(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	ctx := context.Background()
	setWeek(t, uc, 2, 0)

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if out.Completed || out.Directive != nil || out.Week != 3 {
		t.Fatalf("expected an open week without directive, got %+v", out)
	}
	op, _ := uc.Operators.Get(ctx)
	if op.CurrentDirectiveID != "" {
		t.Fatalf("expected no current directive, got %q", op.CurrentDirectiveID)
	}

	out, err = uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if out.Completed || out.Directive == nil || out.Directive.ID != "dir-4" {
		t.Fatalf("expected week 4 directive, got %+v", out)
	}
}

func TestAdvance_ScoresClosedWeekQuota(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	ctx := context.Background()
	rel, _ := uc.MetricsRepo.GetReluctance(ctx)
	rel.QuotaCompleted = rel.QuotaRequired
	if err := uc.MetricsRepo.SaveReluctance(ctx, rel); err != nil {
		t.Fatalf("save reluctance: %v", err)
	}

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	want := operation.BaselineCompliance + 10
	if out.MissedQuota || out.ComplianceScore != want || out.Status != operation.OperatorActive {
		t.Fatalf("expected met quota to score %d, got %+v", want, out)
	}
	op, _ := uc.Operators.Get(ctx)
	if op.ComplianceScore != want {
		t.Fatalf("expected stored compliance %d, got %d", want, op.ComplianceScore)
	}
}

func TestAdvance_IgnoresBooksLeftPending(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	ctx := context.Background()
	_ = uc.Books.Add(ctx, operation.BookPublication{ID: "book-1", Week: 1, Status: operation.BookPending})
	_ = uc.Books.Add(ctx, operation.BookPublication{ID: "book-2", Week: 1, Status: operation.BookBanned})

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(out.BooksIgnored) != 1 || out.BooksIgnored[0] != "book-1" {
		t.Fatalf("expected book-1 ignored, got %v", out.BooksIgnored)
	}
	b1, _ := uc.Books.GetByID(ctx, "book-1")
	b2, _ := uc.Books.GetByID(ctx, "book-2")
	if b1.Status != operation.BookIgnored || b2.Status != operation.BookBanned {
		t.Fatalf("unexpected book states %s %s", b1.Status, b2.Status)
	}
}

func TestAdvance_TerminatesOnLateWeekReluctance(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	ctx := context.Background()
	setWeek(t, uc, 6, 65)

	out, err := uc.Advance(ctx, Request{OperatorID: "op-1"})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if out.Termination == nil || out.Termination.Reason != compliance.ReasonImprisonedDissent {
		t.Fatalf("expected imprisonment, got %+v", out.Termination)
	}
	if _, err := uc.Advance(ctx, Request{OperatorID: "op-1"}); !errors.Is(err, operatorstate.ErrOperatorTerminated) {
		t.Fatalf("expected terminated operator to be refused, got %v", err)
	}
}

func TestAdvance_RejectsBlankOperator(t *testing.T) {
	uc := newUseCase(t, optest.Always(0.99))
	if _, err := uc.Advance(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
