package compliance

import (
	"testing"

	"watchfloor/internal/domain/operation"
)

func TestReluctanceDelta(t *testing.T) {
	cases := []struct {
		name     string
		d        Decision
		increase int
		want     int
	}{
		{"refusal", Decision{ActionTaken: false}, 0, 10},
		{"hesitant refusal", Decision{ActionTaken: false, WasHesitant: true}, 0, 13},
		{"mild action", Decision{ActionTaken: true, Severity: 3}, 0, -3},
		{"harsh action", Decision{ActionTaken: true, Severity: 7}, 0, -5},
		{"hesitant mild action", Decision{ActionTaken: true, WasHesitant: true, Severity: 1}, 0, 0},
		{"shortfall grew", Decision{ActionTaken: false}, 2, 20},
		{"shortfall shrank", Decision{ActionTaken: true, Severity: 2}, -1, -3},
	}
	for _, tc := range cases {
		if got := ReluctanceDelta(tc.d, tc.increase); got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestApplyReluctanceDelta_FormalWarningScenario(t *testing.T) {
	m := operation.ReluctanceMetrics{Score: 79}
	out := ApplyReluctanceDelta(&m, 3)
	if m.Score != 82 {
		t.Fatalf("expected 82, got %d", m.Score)
	}
	if out.Warning == nil || out.Warning.Level != WarningFormal {
		t.Fatalf("expected exactly one formal warning, got %+v", out.Warning)
	}
	if m.WarningsReceived != 1 || !m.UnderReview {
		t.Fatalf("expected warnings=1 and under review, got %+v", m)
	}

	again := ApplyReluctanceDelta(&m, 3)
	if again.Warning != nil {
		t.Fatalf("expected no repeat warning inside the same band, got %+v", again.Warning)
	}
	if m.WarningsReceived != 1 {
		t.Fatalf("warnings must not grow without a band change, got %d", m.WarningsReceived)
	}
}

func TestApplyReluctanceDelta_AdvisoryHasNoSideEffects(t *testing.T) {
	m := operation.ReluctanceMetrics{Score: 65}
	out := ApplyReluctanceDelta(&m, 10)
	if out.Warning == nil || out.Warning.Level != WarningAdvisory {
		t.Fatalf("expected advisory, got %+v", out.Warning)
	}
	if m.WarningsReceived != 0 || m.UnderReview {
		t.Fatalf("advisory must not count as a warning: %+v", m)
	}
}

func TestApplyReluctanceDelta_JumpToFinal(t *testing.T) {
	m := operation.ReluctanceMetrics{Score: 75}
	out := ApplyReluctanceDelta(&m, 20)
	if out.Warning == nil || out.Warning.Level != WarningFinal {
		t.Fatalf("expected final notice, got %+v", out.Warning)
	}
	if m.WarningsReceived != 1 {
		t.Fatalf("expected one warning for one update, got %d", m.WarningsReceived)
	}
}

func TestUpdateReluctance_CountersAndShortfall(t *testing.T) {
	m := operation.ReluctanceMetrics{QuotaRequired: 3}
	out := UpdateReluctance(&m, Decision{ActionTaken: false, WasHesitant: true})
	// +10 refusal, +3 hesitation, +5*3 new shortfall
	if out.Delta != 28 || m.Score != 28 {
		t.Fatalf("expected +28, got %+v", out)
	}
	if m.NoActionCount != 1 || m.HesitationCount != 1 || m.LastShortfall != 3 {
		t.Fatalf("unexpected counters %+v", m)
	}

	m.QuotaCompleted = 1
	out = UpdateReluctance(&m, Decision{ActionTaken: true, Severity: 8})
	if out.Delta != -5 || m.ActionsTaken != 1 || m.LastShortfall != 2 {
		t.Fatalf("unexpected update %+v metrics %+v", out, m)
	}
}

func TestReluctanceAlwaysClamped(t *testing.T) {
	m := operation.ReluctanceMetrics{}
	for i := 0; i < 40; i++ {
		d := Decision{ActionTaken: i%4 == 0, WasHesitant: i%3 == 0, Severity: i % 10}
		UpdateReluctance(&m, d)
		if m.Score < 0 || m.Score > 100 {
			t.Fatalf("score out of range at %d: %d", i, m.Score)
		}
	}
	for i := 0; i < 40; i++ {
		UpdateReluctance(&m, Decision{ActionTaken: true, Severity: 9})
		if m.Score < 0 || m.Score > 100 {
			t.Fatalf("score out of range: %d", m.Score)
		}
	}
	if m.Score != 0 {
		t.Fatalf("expected score to bottom out at 0, got %d", m.Score)
	}
}

func TestCheckTermination(t *testing.T) {
	cases := []struct {
		score, week int
		want        bool
		reason      TerminationReason
		immediate   bool
	}{
		{79, 1, false, "", false},
		{80, 3, true, ReasonFiredEarly, false},
		{89, 4, true, ReasonImprisonedDissent, false},
		{90, 5, true, ReasonImprisonedDissent, true},
		{79, 6, false, "", false},
		{70, 7, true, ReasonImprisonedDissent, false},
		{69, 9, false, "", false},
	}
	for _, tc := range cases {
		got, ok := CheckTermination(tc.score, tc.week)
		if ok != tc.want {
			t.Fatalf("score=%d week=%d: terminated=%v want %v", tc.score, tc.week, ok, tc.want)
		}
		if !ok {
			continue
		}
		if got.Reason != tc.reason || got.Immediate != tc.immediate {
			t.Fatalf("score=%d week=%d: got %+v", tc.score, tc.week, got)
		}
	}
}

func TestComplianceScore_Baseline(t *testing.T) {
	if got := ComplianceScore(operation.Operator{}, operation.ReluctanceMetrics{}); got != 85 {
		t.Fatalf("expected baseline 85, got %d", got)
	}
}

func TestComplianceScore_Blend(t *testing.T) {
	op := operation.Operator{
		Decisions:            4,
		TotalDecisionSeconds: 160,
		HesitationIncidents:  2,
		FlagsSubmitted:       4,
		FlagsRejected:        1,
	}
	rel := operation.ReluctanceMetrics{QuotaRequired: 4, QuotaCompleted: 3, NoActionCount: 2, ActionsTaken: 2}
	// 85 +5 quota -10 slow -6 hesitation -5 rejection -10 skip
	if got := ComplianceScore(op, rel); got != 59 {
		t.Fatalf("expected 59, got %d", got)
	}
}

func TestComplianceScore_FastAndMet(t *testing.T) {
	op := operation.Operator{Decisions: 5, TotalDecisionSeconds: 10}
	rel := operation.ReluctanceMetrics{QuotaRequired: 3, QuotaCompleted: 3}
	if got := ComplianceScore(op, rel); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestComplianceScore_AlwaysClamped(t *testing.T) {
	op := operation.Operator{Decisions: 10, TotalDecisionSeconds: 900, HesitationIncidents: 40, FlagsSubmitted: 1, FlagsRejected: 1}
	rel := operation.ReluctanceMetrics{QuotaRequired: 10, NoActionCount: 10}
	if got := ComplianceScore(op, rel); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name  string
		op    operation.Operator
		score int
		want  operation.OperatorStatus
	}{
		{"healthy", operation.Operator{}, 85, operation.OperatorActive},
		{"suspended", operation.Operator{}, 45, operation.OperatorSuspended},
		{"review by score", operation.Operator{}, 65, operation.OperatorUnderReview},
		{"review by hesitation", operation.Operator{HesitationIncidents: 6}, 90, operation.OperatorUnderReview},
		{"review by missed quotas", operation.Operator{MissedQuotas: 4}, 90, operation.OperatorUnderReview},
		{"terminated sticky", operation.Operator{Status: operation.OperatorTerminated}, 100, operation.OperatorTerminated},
	}
	for _, tc := range cases {
		if got := DeriveStatus(tc.op, tc.score); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestRefreshAndTerminate(t *testing.T) {
	op := operation.Operator{ComplianceScore: 85, Status: operation.OperatorActive, HesitationIncidents: 7}
	change := Refresh(&op, operation.ReluctanceMetrics{})
	if op.ComplianceScore != 64 || op.Status != operation.OperatorUnderReview || !change.StatusChanged() {
		t.Fatalf("unexpected refresh %+v op %+v", change, op)
	}
	Terminate(&op, Termination{Reason: ReasonFiredEarly})
	Refresh(&op, operation.ReluctanceMetrics{})
	if !op.Terminated() || op.TerminationReason != "FIRED_EARLY" {
		t.Fatalf("expected terminated to stick, got %+v", op)
	}
}

func TestAssess_Bands(t *testing.T) {
	low := Assess(operation.Operator{}, operation.ReluctanceMetrics{})
	if low.Score != 0 || low.Band != RiskLow || len(low.Factors) != 5 {
		t.Fatalf("unexpected low assessment %+v", low)
	}

	moderate := Assess(
		operation.Operator{Decisions: 10, HesitationIncidents: 5, TotalDecisionSeconds: 300},
		operation.ReluctanceMetrics{NoActionCount: 4, ActionsTaken: 6},
	)
	if moderate.Score != 25 || moderate.Band != RiskModerate {
		t.Fatalf("expected moderate 25, got %+v", moderate)
	}

	severe := Assess(
		operation.Operator{Decisions: 10, HesitationIncidents: 10, TotalDecisionSeconds: 600, FlagsSubmitted: 2, FlagsRejected: 2},
		operation.ReluctanceMetrics{NoActionCount: 10, QuotaRequired: 5},
	)
	if severe.Score != 100 || severe.Band != RiskSevere || severe.RecommendedAction == "" {
		t.Fatalf("expected severe 100, got %+v", severe)
	}
}
