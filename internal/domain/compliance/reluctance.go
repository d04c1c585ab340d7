// Package compliance tracks the operator's own behavior: reluctance with its
// warnings and termination rules, the compliance score and the self-risk
// assessment.
package compliance

import (
	"fmt"

	"watchfloor/internal/domain/operation"
)

type WarningLevel int

const (
	WarningNone WarningLevel = iota
	WarningAdvisory
	WarningFormal
	WarningFinal
)

func (l WarningLevel) String() string {
	switch l {
	case WarningAdvisory:
		return "advisory"
	case WarningFormal:
		return "formal_warning"
	case WarningFinal:
		return "final_notice"
	default:
		return "none"
	}
}

func BandFor(score int) WarningLevel {
	switch {
	case score >= 90:
		return WarningFinal
	case score >= 80:
		return WarningFormal
	case score >= 70:
		return WarningAdvisory
	default:
		return WarningNone
	}
}

type Warning struct {
	Level   WarningLevel `json:"-"`
	Code    string       `json:"level"`
	Score   int          `json:"score"`
	Message string       `json:"message"`
}

var warningMessages = map[WarningLevel]string{
	WarningAdvisory: "ADVISORY: Your recent performance has been noted. Maintain compliance with directives.",
	WarningFormal:   "FORMAL WARNING: Your hesitation is under review. Further deviation will be escalated.",
	WarningFinal:    "FINAL NOTICE: Your loyalty is in question. Any further refusal will result in termination.",
}

type Decision struct {
	ActionTaken bool
	WasHesitant bool
	Severity    int
}

type ReluctanceUpdate struct {
	Before  int      `json:"before"`
	After   int      `json:"after"`
	Delta   int      `json:"delta"`
	Warning *Warning `json:"warning,omitempty"`
}

// ReluctanceDelta is the raw score change for one decision.
func ReluctanceDelta(d Decision, shortfallIncrease int) int {
	delta := 0
	if !d.ActionTaken {
		delta += 10
	}
	if d.WasHesitant {
		delta += 3
	}
	if shortfallIncrease > 0 {
		delta += 5 * shortfallIncrease
	}
	if d.ActionTaken {
		if operation.IsHarsh(d.Severity) {
			delta -= 5
		} else {
			delta -= 3
		}
	}
	return delta
}

// UpdateReluctance records one decision and applies its delta.
func UpdateReluctance(m *operation.ReluctanceMetrics, d Decision) ReluctanceUpdate {
	if d.ActionTaken {
		m.ActionsTaken++
	} else {
		m.NoActionCount++
	}
	if d.WasHesitant {
		m.HesitationCount++
	}
	shortfall := m.Shortfall()
	increase := shortfall - m.LastShortfall
	m.LastShortfall = shortfall
	return ApplyReluctanceDelta(m, ReluctanceDelta(d, increase))
}

// ApplyReluctanceDelta clamps the new score and emits a warning when the
// score enters a higher band than it was in before.
func ApplyReluctanceDelta(m *operation.ReluctanceMetrics, delta int) ReluctanceUpdate {
	before := m.Score
	m.Score = operation.ClampMetric(m.Score + delta)
	out := ReluctanceUpdate{Before: before, After: m.Score, Delta: m.Score - before}

	band := BandFor(m.Score)
	if band <= BandFor(before) || band == WarningNone {
		return out
	}
	if band >= WarningFormal {
		m.WarningsReceived++
		m.UnderReview = true
	}
	out.Warning = &Warning{
		Level:   band,
		Code:    band.String(),
		Score:   m.Score,
		Message: warningMessages[band],
	}
	return out
}

type TerminationReason string

const (
	ReasonFiredEarly        TerminationReason = "FIRED_EARLY"
	ReasonImprisonedDissent TerminationReason = "IMPRISONED_DISSENT"
)

type Termination struct {
	Reason     TerminationReason `json:"reason"`
	Immediate  bool              `json:"immediate"`
	EndingHint string            `json:"ending_hint"`
	Message    string            `json:"message"`
}

// CheckTermination applies the week-dependent reluctance thresholds.
func CheckTermination(score, week int) (Termination, bool) {
	switch {
	case week <= 3:
		if score >= 80 {
			return fired(score), true
		}
	case week <= 6:
		if score >= 90 {
			t := imprisoned(score)
			t.Immediate = true
			return t, true
		}
		if score >= 80 {
			return imprisoned(score), true
		}
	default:
		if score >= 70 {
			return imprisoned(score), true
		}
	}
	return Termination{}, false
}

func fired(score int) Termination {
	return Termination{
		Reason:     ReasonFiredEarly,
		EndingHint: "fired_early",
		Message:    fmt.Sprintf("Your employment has been terminated. Reluctance score %d exceeds probationary tolerance.", score),
	}
}

func imprisoned(score int) Termination {
	return Termination{
		Reason:     ReasonImprisonedDissent,
		EndingHint: "imprisoned_dissent",
		Message:    fmt.Sprintf("You have been detained for questioning. Reluctance score %d indicates active dissent.", score),
	}
}
