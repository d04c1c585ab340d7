package opinion

import (
	"math"
	"testing"

	"watchfloor/internal/domain/operation"
)

func TestApplyAction_StandardDeltas(t *testing.T) {
	m := operation.PublicMetrics{}
	change := NewEngine(&m).ApplyAction(operation.ActionICERaid, 8, false)
	if change.AwarenessDelta != 8 {
		t.Fatalf("expected awareness delta 8, got %d", change.AwarenessDelta)
	}
	if change.AngerDelta != 13 {
		t.Fatalf("expected anger delta 13 (8+5), got %d", change.AngerDelta)
	}
	if m.Awareness != 8 || m.Anger != 13 {
		t.Fatalf("unexpected metrics %+v", m)
	}
}

func TestApplyAction_BacklashAndAcceleration(t *testing.T) {
	m := operation.PublicMetrics{Awareness: 80, AwarenessTier: 4}
	change := NewEngine(&m).ApplyAction(operation.ActionPressBan, 6, true)
	// 6 * (1 + 20/40) = 9, doubled = 18
	if change.AwarenessDelta != 18 {
		t.Fatalf("expected awareness delta 18, got %d", change.AwarenessDelta)
	}
	if change.AngerDelta != 16 {
		t.Fatalf("expected anger delta 16 (6+10), got %d", change.AngerDelta)
	}
	if m.Awareness != 98 {
		t.Fatalf("expected awareness 98, got %d", m.Awareness)
	}
}

func TestApplyDelta_ClampsAtHundred(t *testing.T) {
	m := operation.PublicMetrics{Awareness: 95, Anger: 97, AwarenessTier: 5, AngerTier: 5}
	change := NewEngine(&m).ApplyDelta(25, 30)
	if m.Awareness != 100 || m.Anger != 100 {
		t.Fatalf("expected clamp to 100, got %+v", m)
	}
	if change.AwarenessDelta != 5 || change.AngerDelta != 3 {
		t.Fatalf("expected reported deltas to be the clamped change, got %+v", change)
	}
	if len(change.TierEvents) != 0 {
		t.Fatalf("expected no tier events past the last tier, got %+v", change.TierEvents)
	}
}

func TestApplyDelta_IgnoresNegativeInput(t *testing.T) {
	m := operation.PublicMetrics{Awareness: 40, Anger: 40, AwarenessTier: 2, AngerTier: 2}
	NewEngine(&m).ApplyDelta(-10, -3)
	if m.Awareness != 40 || m.Anger != 40 {
		t.Fatalf("expected metrics unchanged, got %+v", m)
	}
}

func TestTierCrossing_FiresOnceAtSixty(t *testing.T) {
	m := operation.PublicMetrics{Awareness: 58, AwarenessTier: 2}
	e := NewEngine(&m)

	change := e.ApplyDelta(5, 0)
	if m.Awareness != 63 {
		t.Fatalf("expected awareness 63, got %d", m.Awareness)
	}
	if len(change.TierEvents) != 1 {
		t.Fatalf("expected exactly one tier event, got %+v", change.TierEvents)
	}
	ev := change.TierEvents[0]
	if ev.Axis != AxisAwareness || ev.Tier != 3 || ev.Threshold != 60 || ev.Description != "International attention" {
		t.Fatalf("unexpected tier event %+v", ev)
	}

	again := e.ApplyDelta(2, 0)
	if len(again.TierEvents) != 0 {
		t.Fatalf("expected no re-fire above 60, got %+v", again.TierEvents)
	}
}

func TestTierCrossing_MultipleTiersInOneJump(t *testing.T) {
	m := operation.PublicMetrics{}
	change := NewEngine(&m).ApplyDelta(0, 45)
	if len(change.TierEvents) != 2 {
		t.Fatalf("expected tiers 1 and 2 to fire, got %+v", change.TierEvents)
	}
	if change.TierEvents[0].Tier != 1 || change.TierEvents[1].Tier != 2 {
		t.Fatalf("expected ascending tier order, got %+v", change.TierEvents)
	}
	if m.AngerTier != 2 {
		t.Fatalf("expected anger tier 2, got %d", m.AngerTier)
	}
}

func TestApplyAction_MonotonicAndBounded(t *testing.T) {
	m := operation.PublicMetrics{}
	e := NewEngine(&m)
	prevAwareness, prevAnger := 0, 0
	for i := 0; i < 60; i++ {
		kind := operation.ActionKinds()[i%12]
		sev, _ := operation.Severity(kind)
		e.ApplyAction(kind, sev, i%3 == 0)
		if m.Awareness < prevAwareness || m.Anger < prevAnger {
			t.Fatalf("metrics decreased at step %d: %+v", i, m)
		}
		if m.Awareness > 100 || m.Anger > 100 {
			t.Fatalf("metrics exceeded 100 at step %d: %+v", i, m)
		}
		prevAwareness, prevAnger = m.Awareness, m.Anger
	}
}

func TestBacklashProbability_ClampScenario(t *testing.T) {
	got := BacklashProbability(9, 70, 80)
	if got != 0.95 {
		t.Fatalf("expected clamp to 0.95, got %v", got)
	}
	low := BacklashProbability(2, 0, 0)
	if math.Abs(low-0.2) > 1e-9 {
		t.Fatalf("expected 0.2, got %v", low)
	}
}

func TestProbabilities_StayInRange(t *testing.T) {
	stances := []operation.Stance{operation.StanceCritical, operation.StanceIndependent, operation.StanceStateFriendly}
	for sev := 1; sev <= 10; sev++ {
		for a := 0; a <= 100; a += 5 {
			for g := 0; g <= 100; g += 5 {
				if p := BacklashProbability(sev, a, g); p < 0 || p > 0.95 {
					t.Fatalf("backlash out of range sev=%d a=%d g=%d: %v", sev, a, g, p)
				}
				if p := ProtestProbability(sev, g); p < 0 || p > 0.95 {
					t.Fatalf("protest out of range sev=%d g=%d: %v", sev, g, p)
				}
			}
			for _, s := range stances {
				if p := NewsProbability(sev, a, s); p < 0 || p > 0.95 {
					t.Fatalf("news out of range sev=%d a=%d stance=%s: %v", sev, a, s, p)
				}
			}
		}
	}
}

func TestNewsProbability_StanceOrdering(t *testing.T) {
	critical := NewsProbability(4, 10, operation.StanceCritical)
	independent := NewsProbability(4, 10, operation.StanceIndependent)
	friendly := NewsProbability(4, 10, operation.StanceStateFriendly)
	if !(critical > independent && independent > friendly) {
		t.Fatalf("expected critical > independent > state_friendly, got %v %v %v", critical, independent, friendly)
	}
	if math.Abs(friendly-(0.4*0.3+0.05)) > 1e-9 {
		t.Fatalf("unexpected state friendly probability %v", friendly)
	}
}

func TestProtestProbability_Bands(t *testing.T) {
	cases := []struct {
		name     string
		severity int
		anger    int
		want     float64
	}{
		{"calm low severity", 7, 10, 0},
		{"calm harsh", 8, 10, 0.15},
		{"simmering below gate", 5, 25, 0},
		{"simmering", 6, 25, 0.3},
		{"tense", 5, 50, 0.75},
		{"boiling", 2, 60, 0.44},
		{"boiling clamp", 9, 90, 0.95},
	}
	for _, tc := range cases {
		got := ProtestProbability(tc.severity, tc.anger)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}
