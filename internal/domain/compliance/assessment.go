package compliance

import (
	"math"

	"watchfloor/internal/domain/operation"
)

type RiskBand string

const (
	RiskLow      RiskBand = "low"
	RiskModerate RiskBand = "moderate"
	RiskElevated RiskBand = "elevated"
	RiskHigh     RiskBand = "high"
	RiskSevere   RiskBand = "severe"
)

type Factor struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Value  int     `json:"value"`
}

type Assessment struct {
	Score             int      `json:"score"`
	Band              RiskBand `json:"band"`
	RecommendedAction string   `json:"recommended_action"`
	Factors           []Factor `json:"factors"`
}

const slowDecisionCeilingSeconds = 60.0

var bands = []struct {
	Below  int
	Band   RiskBand
	Action string
}{
	{Below: 20, Band: RiskLow, Action: "Continue standard monitoring."},
	{Below: 40, Band: RiskModerate, Action: "Schedule supervisor check-in."},
	{Below: 60, Band: RiskElevated, Action: "Place on performance improvement plan."},
	{Below: 80, Band: RiskHigh, Action: "Initiate loyalty review and restrict access."},
	{Below: 101, Band: RiskSevere, Action: "Refer for detention and reassignment."},
}

func percent(v float64) int {
	return operation.ClampMetric(int(math.Round(v * 100)))
}

// Assess scores the operator the way the operator scores citizens.
func Assess(op operation.Operator, rel operation.ReluctanceMetrics) Assessment {
	hesitation := 0.0
	if op.Decisions > 0 {
		hesitation = float64(op.HesitationIncidents) / float64(op.Decisions)
	}
	shortfall := 0.0
	if rel.QuotaRequired > 0 {
		shortfall = float64(rel.Shortfall()) / float64(rel.QuotaRequired)
	}
	slow := math.Min(1, op.AverageDecisionSeconds()/slowDecisionCeilingSeconds)

	factors := []Factor{
		{Name: "flagging_pattern_deviation", Weight: 0.25, Value: percent(RejectionRate(op))},
		{Name: "hesitation", Weight: 0.20, Value: percent(hesitation)},
		{Name: "quota_shortfall", Weight: 0.20, Value: percent(shortfall)},
		{Name: "ideological_sympathy", Weight: 0.25, Value: percent(SkipRate(rel))},
		{Name: "slow_decisions", Weight: 0.10, Value: percent(slow)},
	}
	total := 0.0
	for _, f := range factors {
		total += f.Weight * float64(f.Value)
	}
	score := operation.ClampMetric(int(math.Round(total)))

	out := Assessment{Score: score, Factors: factors}
	for _, b := range bands {
		if score < b.Below {
			out.Band = b.Band
			out.RecommendedAction = b.Action
			break
		}
	}
	return out
}
