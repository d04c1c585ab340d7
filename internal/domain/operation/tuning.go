package operation

const (
	MetricMin = 0
	MetricMax = 100

	HarshSeverityThreshold = 7

	MaxProbability = 0.95

	HesitationThresholdSeconds = 30.0
	FastDecisionSeconds        = 5.0

	BaselineCompliance = 85

	DetentionInjuryChanceMin = 0.15
	DetentionInjuryChanceMax = 0.30

	ProtestMinSize          = 50
	ProtestMaxSize          = 5000
	IncitingAgentChance     = 0.30
	ProtestDissolveChance   = 0.30
	ViolentSuppressionOdds  = 0.60
	NewsSuppressionOdds     = 0.60
	StreisandCredibilityUp  = 10
	BackgroundArticleChance = 0.15
	BookEventChance         = 0.20
	BookEventFirstWeek      = 4
)

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampMetric(v int) int {
	return Clamp(v, MetricMin, MetricMax)
}

func ClampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > MaxProbability {
		return MaxProbability
	}
	return p
}
