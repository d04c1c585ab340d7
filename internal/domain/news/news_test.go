package news

import (
	"errors"
	"strings"
	"testing"
	"time"

	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/operation/optest"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func channel(stance operation.Stance) operation.NewsChannel {
	return operation.NewsChannel{
		ID:          "ch-" + string(stance),
		Name:        "The Ledger",
		Stance:      stance,
		Credibility: 60,
		Reporters: []operation.Reporter{
			{Name: "Ana Ruiz"},
			{Name: "Tom Hale"},
		},
	}
}

func TestTriggeredDeltas_ByStance(t *testing.T) {
	cases := []struct {
		severity      int
		stance        operation.Stance
		wantAnger     int
		wantAwareness int
	}{
		{8, operation.StanceCritical, 7, 6},
		{8, operation.StanceIndependent, 5, 5},
		{8, operation.StanceStateFriendly, 2, 2},
		{1, operation.StanceStateFriendly, 0, 0},
		{7, operation.StanceCritical, 6, 5},
	}
	for _, tc := range cases {
		anger, awareness := TriggeredDeltas(tc.severity, tc.stance)
		if anger != tc.wantAnger || awareness != tc.wantAwareness {
			t.Fatalf("sev=%d stance=%s: got %d/%d want %d/%d", tc.severity, tc.stance, anger, awareness, tc.wantAnger, tc.wantAwareness)
		}
	}
}

func TestTriggeredArticle_SubstitutesNames(t *testing.T) {
	action := operation.Action{ID: "act-1", Kind: operation.ActionICERaid, Severity: 8}
	a := TriggeredArticle(action, channel(operation.StanceCritical), Subject{Neighborhood: "Riverside"}, testNow)
	if a.Headline != "Dawn raids tear families apart in Riverside" {
		t.Fatalf("unexpected headline %q", a.Headline)
	}
	if a.Type != operation.ArticleTriggered || a.TriggerActionID != "act-1" || a.ChannelID != "ch-critical" {
		t.Fatalf("unexpected article %+v", a)
	}
	if !strings.HasPrefix(a.ID, "article-") {
		t.Fatalf("unexpected id %q", a.ID)
	}
}

func TestTriggeredArticle_GenericFallback(t *testing.T) {
	action := operation.Action{Kind: operation.ActionTravelRestriction, Severity: 3}
	a := TriggeredArticle(action, channel(operation.StanceIndependent), Subject{}, testNow)
	if a.Headline != "Authorities confirm travel restriction" {
		t.Fatalf("unexpected fallback headline %q", a.Headline)
	}
	if strings.Contains(a.Headline+a.Summary, "{") {
		t.Fatalf("unreplaced placeholder in %+v", a)
	}
}

func TestBackgroundArticle_Impact(t *testing.T) {
	crit := BackgroundArticle(channel(operation.StanceCritical), optest.NewRand().WithInts(2), testNow)
	if crit.AngerDelta != 2 || crit.AwarenessDelta != 2 || crit.Type != operation.ArticleRandom {
		t.Fatalf("unexpected critical background article %+v", crit)
	}
	ind := BackgroundArticle(channel(operation.StanceIndependent), optest.NewRand(), testNow)
	if ind.AngerDelta != 1 || ind.AwarenessDelta != 1 {
		t.Fatalf("unexpected independent background article %+v", ind)
	}
}

func TestExposureArticle_Stages(t *testing.T) {
	want := map[int]int{1: 5, 2: 15, 3: 25}
	for stage, awareness := range want {
		a, err := ExposureArticle(stage, channel(operation.StanceCritical), testNow)
		if err != nil {
			t.Fatalf("stage %d: %v", stage, err)
		}
		if a.AwarenessDelta != awareness || a.Type != operation.ArticleExposure {
			t.Fatalf("stage %d: unexpected article %+v", stage, a)
		}
	}
	if _, err := ExposureArticle(4, channel(operation.StanceCritical), testNow); !errors.Is(err, ErrUnknownExposureStage) {
		t.Fatalf("expected ErrUnknownExposureStage, got %v", err)
	}
}

func TestSuppressChannel_PressBanSuccess(t *testing.T) {
	ch := channel(operation.StanceCritical)
	out, err := SuppressChannel(&ch, operation.ActionPressBan, optest.Always(0.2))
	if err != nil {
		t.Fatalf("suppress: %v", err)
	}
	s, ok := out.(Suppressed)
	if !ok {
		t.Fatalf("expected Suppressed, got %T", out)
	}
	if !ch.Banned || !s.Banned || ch.Credibility != 60 {
		t.Fatalf("unexpected channel after ban %+v", ch)
	}
	if a, g := s.Deltas(); a != 3 || g != 5 {
		t.Fatalf("expected +3/+5, got %d/%d", a, g)
	}
}

func TestSuppressChannel_PressureFiringFiresExactlyOne(t *testing.T) {
	ch := channel(operation.StanceIndependent)
	out, err := SuppressChannel(&ch, operation.ActionPressureFiring, optest.NewRand(0.1).WithInts(1))
	if err != nil {
		t.Fatalf("suppress: %v", err)
	}
	s := out.(Suppressed)
	fired := 0
	for _, r := range ch.Reporters {
		if r.Fired {
			fired++
		}
	}
	if fired != 1 || s.FiredReporter != "Tom Hale" {
		t.Fatalf("expected exactly Tom Hale fired, got %+v", ch.Reporters)
	}
	if ch.Banned || ch.Credibility != 60 {
		t.Fatalf("firing must not ban or move credibility: %+v", ch)
	}
}

func TestSuppressChannel_StreisandEffect(t *testing.T) {
	for _, kind := range []operation.ActionKind{operation.ActionPressBan, operation.ActionPressureFiring} {
		ch := channel(operation.StanceCritical)
		out, err := SuppressChannel(&ch, kind, optest.Always(0.8))
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		s, ok := out.(Streisand)
		if !ok {
			t.Fatalf("%s: expected Streisand, got %T", kind, out)
		}
		if ch.Banned {
			t.Fatalf("%s: channel must not be banned on failure", kind)
		}
		for _, r := range ch.Reporters {
			if r.Fired {
				t.Fatalf("%s: no reporter may be fired on failure", kind)
			}
		}
		if ch.Credibility != 70 || s.Credibility != 70 {
			t.Fatalf("%s: expected credibility +10, got %d", kind, ch.Credibility)
		}
		if a, g := s.Deltas(); a != 20 || g != 15 {
			t.Fatalf("%s: expected +20/+15, got %d/%d", kind, a, g)
		}
	}
}

func TestSuppressChannel_Preconditions(t *testing.T) {
	banned := channel(operation.StanceCritical)
	banned.Banned = true
	if _, err := SuppressChannel(&banned, operation.ActionPressBan, optest.Always(0.1)); !errors.Is(err, ErrChannelBanned) {
		t.Fatalf("expected ErrChannelBanned, got %v", err)
	}

	empty := channel(operation.StanceCritical)
	for i := range empty.Reporters {
		empty.Reporters[i].Fired = true
	}
	if _, err := SuppressChannel(&empty, operation.ActionPressureFiring, optest.Always(0.1)); !errors.Is(err, ErrNoActiveReporter) {
		t.Fatalf("expected ErrNoActiveReporter, got %v", err)
	}

	ch := channel(operation.StanceCritical)
	if _, err := SuppressChannel(&ch, operation.ActionCurfew, optest.Always(0.1)); !errors.Is(err, ErrNotSuppressionKind) {
		t.Fatalf("expected ErrNotSuppressionKind, got %v", err)
	}
}
