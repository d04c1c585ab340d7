package eventgen

import (
	"testing"
	"time"

	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/operation/optest"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func testChannels() []operation.NewsChannel {
	return []operation.NewsChannel{
		{ID: "ch-crit", Name: "Free Voice", Stance: operation.StanceCritical},
		{ID: "ch-ind", Name: "City Wire", Stance: operation.StanceIndependent},
		{ID: "ch-state", Name: "National Herald", Stance: operation.StanceStateFriendly, Banned: true},
	}
}

func raid() operation.Action {
	return operation.Action{
		ID:         "act-1",
		OperatorID: "op-1",
		Kind:       operation.ActionICERaid,
		Severity:   8,
		Targets:    operation.Targets{Neighborhood: "Riverside"},
	}
}

func TestForAction_RollsEachChannelIndependently(t *testing.T) {
	out, err := ForAction(ActionInput{
		Action:   raid(),
		Channels: testChannels(),
		Now:      testNow,
	}, optest.NewRand(0.9, 0.85, 0.99))
	if err != nil {
		t.Fatalf("for action: %v", err)
	}
	if len(out.Articles) != 1 || out.Articles[0].ChannelID != "ch-crit" {
		t.Fatalf("expected only the critical channel to publish, got %+v", out.Articles)
	}
	if out.Protest != nil {
		t.Fatalf("expected no protest, got %+v", out.Protest)
	}
}

func TestForAction_MultipleArticlesAndProtest(t *testing.T) {
	hoods := []operation.Neighborhood{{Name: "Riverside", Bounds: operation.Bounds{MaxX: 10, MaxY: 10}}}
	out, err := ForAction(ActionInput{
		Action:        raid(),
		Channels:      testChannels(),
		Neighborhoods: hoods,
		Now:           testNow,
	}, optest.NewRand(0.1, 0.1, 0.1, 0.5, 0.9))
	if err != nil {
		t.Fatalf("for action: %v", err)
	}
	if len(out.Articles) != 2 {
		t.Fatalf("expected two articles (banned channel skipped), got %d", len(out.Articles))
	}
	if out.Protest == nil {
		t.Fatalf("expected protest to spawn")
	}
	if out.Protest.Neighborhood != "Riverside" || out.Protest.TriggerActionID != "act-1" || out.Protest.Status != operation.ProtestForming {
		t.Fatalf("unexpected protest %+v", out.Protest)
	}
}

func TestForTick_BackgroundArticleOnlyFromEligibleChannels(t *testing.T) {
	channels := []operation.NewsChannel{
		{ID: "ch-state", Stance: operation.StanceStateFriendly},
		{ID: "ch-ind", Stance: operation.StanceIndependent},
	}
	out := ForTick(TickInput{Week: 2, Channels: channels, Now: testNow}, optest.Always(0.1))
	if out.Article == nil || out.Article.ChannelID != "ch-ind" {
		t.Fatalf("expected background article from ch-ind, got %+v", out.Article)
	}
	if out.Book != nil {
		t.Fatalf("no book events before week 4")
	}
}

func TestForTick_BookFromWeekFour(t *testing.T) {
	out := ForTick(TickInput{Week: 5, Channels: testChannels(), Now: testNow}, optest.NewRand(0.5, 0.1).WithInts(3))
	if out.Article != nil {
		t.Fatalf("expected no background article on a 0.5 draw")
	}
	if out.Book == nil {
		t.Fatalf("expected a book publication")
	}
	if out.Book.ControversyType != ControversyLeakedDocuments || out.Book.Status != operation.BookPending || out.Book.Week != 5 {
		t.Fatalf("unexpected book %+v", out.Book)
	}
}

func TestForTick_NothingWithoutEligibleChannels(t *testing.T) {
	channels := []operation.NewsChannel{{ID: "ch-state", Stance: operation.StanceStateFriendly}}
	out := ForTick(TickInput{Week: 1, Channels: channels}, optest.Always(0.0))
	if out.Article != nil || out.Book != nil {
		t.Fatalf("expected no events, got %+v", out)
	}
}
