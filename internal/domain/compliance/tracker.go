package compliance

import (
	"math"

	"watchfloor/internal/domain/operation"
)

// RecordDecision logs the latency of one decision on the operator.
func RecordDecision(op *operation.Operator, seconds float64, hesitant bool) {
	op.Decisions++
	if seconds > 0 {
		op.TotalDecisionSeconds += seconds
	}
	if hesitant {
		op.HesitationIncidents++
	}
}

func IsHesitant(seconds float64) bool {
	return seconds > operation.HesitationThresholdSeconds
}

// SkipRate is the share of decisions that were explicit refusals.
func SkipRate(rel operation.ReluctanceMetrics) float64 {
	total := rel.NoActionCount + rel.ActionsTaken
	if total == 0 {
		return 0
	}
	return float64(rel.NoActionCount) / float64(total)
}

func RejectionRate(op operation.Operator) float64 {
	if op.FlagsSubmitted == 0 {
		return 0
	}
	return math.Min(1, float64(op.FlagsRejected)/float64(op.FlagsSubmitted))
}

func quotaAdjustment(rel operation.ReluctanceMetrics) int {
	if rel.QuotaRequired <= 0 {
		return 0
	}
	ratio := float64(rel.QuotaCompleted) / float64(rel.QuotaRequired)
	switch {
	case ratio >= 1:
		return 10
	case ratio >= 0.75:
		return 5
	case ratio >= 0.5:
		return -5
	default:
		return -15
	}
}

// ComplianceScore recomputes the score from the operator's history.
func ComplianceScore(op operation.Operator, rel operation.ReluctanceMetrics) int {
	score := float64(operation.BaselineCompliance)
	score += float64(quotaAdjustment(rel))

	if op.Decisions > 0 {
		avg := op.AverageDecisionSeconds()
		if avg < operation.FastDecisionSeconds {
			score += 5
		} else if avg > operation.HesitationThresholdSeconds {
			score -= 10
		}
	}
	score -= 3 * float64(op.HesitationIncidents)
	score -= 20 * RejectionRate(op)
	if skip := SkipRate(rel); skip > 0.3 {
		score -= (skip - 0.3) * 50
	}
	return operation.ClampMetric(int(math.Round(score)))
}

func DeriveStatus(op operation.Operator, score int) operation.OperatorStatus {
	switch {
	case op.Status == operation.OperatorTerminated:
		return operation.OperatorTerminated
	case score < 50:
		return operation.OperatorSuspended
	case score < 70:
		return operation.OperatorUnderReview
	case op.HesitationIncidents > 5 || op.MissedQuotas > 3:
		return operation.OperatorUnderReview
	default:
		return operation.OperatorActive
	}
}

type StatusChange struct {
	ComplianceBefore int                      `json:"compliance_before"`
	ComplianceAfter  int                      `json:"compliance_after"`
	StatusBefore     operation.OperatorStatus `json:"status_before"`
	StatusAfter      operation.OperatorStatus `json:"status_after"`
}

func (c StatusChange) StatusChanged() bool {
	return c.StatusBefore != c.StatusAfter
}

// Refresh rewrites the operator's compliance score and status.
func Refresh(op *operation.Operator, rel operation.ReluctanceMetrics) StatusChange {
	out := StatusChange{ComplianceBefore: op.ComplianceScore, StatusBefore: op.Status}
	op.ComplianceScore = ComplianceScore(*op, rel)
	op.Status = DeriveStatus(*op, op.ComplianceScore)
	out.ComplianceAfter = op.ComplianceScore
	out.StatusAfter = op.Status
	return out
}

// Terminate marks the operator as terminated. It is sticky.
func Terminate(op *operation.Operator, t Termination) {
	op.Status = operation.OperatorTerminated
	op.TerminationReason = string(t.Reason)
}
