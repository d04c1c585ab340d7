package operation

import (
	"errors"
	"testing"
)

func TestSeverity_AllKindsInRangeAndStable(t *testing.T) {
	kinds := ActionKinds()
	if len(kinds) != 12 {
		t.Fatalf("expected 12 action kinds, got %d", len(kinds))
	}
	minSeen, maxSeen := 10, 1
	for _, kind := range kinds {
		first, err := Severity(kind)
		if err != nil {
			t.Fatalf("severity %s: %v", kind, err)
		}
		second, _ := Severity(kind)
		if first != second {
			t.Fatalf("severity of %s not stable: %d vs %d", kind, first, second)
		}
		if first < 1 || first > 10 {
			t.Fatalf("severity of %s out of range: %d", kind, first)
		}
		if first < minSeen {
			minSeen = first
		}
		if first > maxSeen {
			maxSeen = first
		}
	}
	if minSeen != 1 || maxSeen != 9 {
		t.Fatalf("expected severities to span 1..9, got %d..%d", minSeen, maxSeen)
	}
}

func TestSeverity_UnknownKind(t *testing.T) {
	if _, err := Severity(ActionKind("carpet_bombing")); !errors.Is(err, ErrUnknownActionKind) {
		t.Fatalf("expected ErrUnknownActionKind, got %v", err)
	}
	if _, err := CategoryOf(ActionKind("")); !errors.Is(err, ErrUnknownActionKind) {
		t.Fatalf("expected ErrUnknownActionKind, got %v", err)
	}
}

func TestParseActionKind_NormalizesInput(t *testing.T) {
	kind, err := ParseActionKind("  ICE_RAID ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if kind != ActionICERaid {
		t.Fatalf("expected ice_raid, got %s", kind)
	}
	if _, err := ParseActionKind("nope"); !errors.Is(err, ErrUnknownActionKind) {
		t.Fatalf("expected ErrUnknownActionKind, got %v", err)
	}
}

func TestCategoryOf_CoversEveryCategory(t *testing.T) {
	seen := map[Category]bool{}
	for _, kind := range ActionKinds() {
		c, err := CategoryOf(kind)
		if err != nil {
			t.Fatalf("category %s: %v", kind, err)
		}
		seen[c] = true
	}
	for _, c := range []Category{CategoryCitizen, CategoryNeighborhood, CategoryPress, CategoryBook, CategoryProtest, CategoryHospital} {
		if !seen[c] {
			t.Fatalf("category %s has no action kind", c)
		}
	}
}

func TestIsHarsh(t *testing.T) {
	cases := []struct {
		severity int
		want     bool
	}{
		{1, false},
		{6, false},
		{7, true},
		{9, true},
	}
	for _, tc := range cases {
		if got := IsHarsh(tc.severity); got != tc.want {
			t.Fatalf("IsHarsh(%d)=%v want %v", tc.severity, got, tc.want)
		}
	}
}

func TestNeighborhoodAt(t *testing.T) {
	hoods := []Neighborhood{
		{Name: "Eastside", Bounds: Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
		{Name: "Harbor", Bounds: Bounds{MinX: 10.5, MinY: 0, MaxX: 20, MaxY: 10}},
	}
	got, ok := NeighborhoodAt(hoods, Point{X: 12, Y: 3})
	if !ok || got.Name != "Harbor" {
		t.Fatalf("expected Harbor, got %+v ok=%v", got, ok)
	}
	if _, ok := NeighborhoodAt(hoods, Point{X: 50, Y: 50}); ok {
		t.Fatalf("expected no neighborhood outside every box")
	}
}

func TestReluctanceShortfall(t *testing.T) {
	r := ReluctanceMetrics{QuotaRequired: 5, QuotaCompleted: 2}
	if r.Shortfall() != 3 {
		t.Fatalf("expected shortfall 3, got %d", r.Shortfall())
	}
	r.QuotaCompleted = 7
	if r.Shortfall() != 0 {
		t.Fatalf("expected shortfall 0 when over quota, got %d", r.Shortfall())
	}
}

func TestClampProbability(t *testing.T) {
	if ClampProbability(1.7) != MaxProbability {
		t.Fatalf("expected clamp to %v", MaxProbability)
	}
	if ClampProbability(-0.2) != 0 {
		t.Fatalf("expected clamp to 0")
	}
}

func TestActionSetOutcome(t *testing.T) {
	a := Action{}
	if !a.SetOutcome(OutcomeSixMonths, "family relocated") {
		t.Fatalf("expected six_months slot to be accepted")
	}
	if a.Outcomes.SixMonths != "family relocated" {
		t.Fatalf("unexpected outcome: %+v", a.Outcomes)
	}
	if a.SetOutcome(OutcomeSlot("ten_years"), "x") {
		t.Fatalf("expected unknown slot to be rejected")
	}
}
