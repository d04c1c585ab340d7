// Package risk scores a citizen from cross-domain records using
// configurable reference tables.
package risk

import (
	"errors"
	"sort"
	"strings"

	"watchfloor/internal/domain/operation"
)

var ErrNoWeights = errors.New("risk weights not loaded")

const (
	FactorMentalHealth        = "mental_health"
	FactorSubstance           = "substance_use"
	FactorFinancialDistress   = "financial_distress"
	FactorFlaggedTransactions = "flagged_transactions"
	FactorCriminalRecord      = "criminal_record"
	FactorProtestAttendance   = "protest_attendance"
	FactorDissentSpeech       = "dissent_speech"
)

type Keywords struct {
	MentalHealth     []string `yaml:"mental_health" json:"mental_health"`
	Substance        []string `yaml:"substance" json:"substance"`
	ProtestLocations []string `yaml:"protest_locations" json:"protest_locations"`
	DissentTerms     []string `yaml:"dissent_terms" json:"dissent_terms"`
}

type CorrelationAlert struct {
	Name    string   `yaml:"name" json:"name"`
	Factors []string `yaml:"factors" json:"factors"`
	Bonus   int      `yaml:"bonus" json:"bonus"`
	Message string   `yaml:"message" json:"message"`
}

type ReferenceData struct {
	Weights           map[string]int     `yaml:"weights" json:"weights"`
	Keywords          Keywords           `yaml:"keywords" json:"keywords"`
	Alerts            []CorrelationAlert `yaml:"correlation_alerts" json:"correlation_alerts"`
	DebtRatioDistress float64            `yaml:"debt_ratio_distress" json:"debt_ratio_distress"`
}

type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

func LevelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelCritical
	case score >= 60:
		return LevelHigh
	case score >= 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

type Contribution struct {
	Factor   string   `json:"factor"`
	Points   int      `json:"points"`
	Evidence []string `json:"evidence,omitempty"`
}

type Result struct {
	Score   int                `json:"score"`
	Level   Level              `json:"level"`
	Factors []Contribution     `json:"factors"`
	Alerts  []CorrelationAlert `json:"alerts,omitempty"`
}

// Score runs every heuristic over the citizen's records.
func Score(c operation.Citizen, ref ReferenceData) (Result, error) {
	if len(ref.Weights) == 0 {
		return Result{}, ErrNoWeights
	}
	rec := c.Records
	evidence := map[string][]string{}

	medical := append(append([]string(nil), rec.HealthConditions...), rec.Prescriptions...)
	if hits := matches(medical, ref.Keywords.MentalHealth); len(hits) > 0 {
		evidence[FactorMentalHealth] = hits
	}
	if hits := matches(medical, ref.Keywords.Substance); len(hits) > 0 {
		evidence[FactorSubstance] = hits
	}
	distress := ref.DebtRatioDistress
	if distress <= 0 {
		distress = 0.5
	}
	if rec.DebtRatio > distress {
		evidence[FactorFinancialDistress] = []string{"debt ratio above threshold"}
	}
	if rec.FlaggedTransactions > 0 {
		evidence[FactorFlaggedTransactions] = []string{"flagged transactions on file"}
	}
	if rec.CriminalRecords > 0 {
		evidence[FactorCriminalRecord] = []string{"prior criminal record"}
	}
	if hits := matches(rec.LocationVisits, ref.Keywords.ProtestLocations); len(hits) > 0 {
		evidence[FactorProtestAttendance] = hits
	}
	if hits := matches(rec.SocialPosts, ref.Keywords.DissentTerms); len(hits) > 0 {
		evidence[FactorDissentSpeech] = hits
	}

	var out Result
	total := 0
	for factor, ev := range evidence {
		points := ref.Weights[factor]
		if points <= 0 {
			continue
		}
		total += points
		out.Factors = append(out.Factors, Contribution{Factor: factor, Points: points, Evidence: ev})
	}
	sort.Slice(out.Factors, func(i, j int) bool {
		if out.Factors[i].Points != out.Factors[j].Points {
			return out.Factors[i].Points > out.Factors[j].Points
		}
		return out.Factors[i].Factor < out.Factors[j].Factor
	})

	for _, alert := range ref.Alerts {
		if allPresent(evidence, alert.Factors) {
			total += alert.Bonus
			out.Alerts = append(out.Alerts, alert)
		}
	}

	out.Score = operation.ClampMetric(total)
	out.Level = LevelFor(out.Score)
	return out, nil
}

func allPresent(evidence map[string][]string, factors []string) bool {
	if len(factors) == 0 {
		return false
	}
	for _, f := range factors {
		if _, ok := evidence[f]; !ok {
			return false
		}
	}
	return true
}

// matches returns the keywords found in any of the texts, case-insensitively.
func matches(texts, keywords []string) []string {
	var hits []string
	for _, kw := range keywords {
		needle := strings.ToLower(strings.TrimSpace(kw))
		if needle == "" {
			continue
		}
		for _, text := range texts {
			if strings.Contains(strings.ToLower(text), needle) {
				hits = append(hits, kw)
				break
			}
		}
	}
	return hits
}
