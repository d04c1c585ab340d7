package operation

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is the starting world of a playthrough.
type Scenario struct {
	OperatorID        string         `yaml:"operator_id"`
	ScriptedCitizenID string         `yaml:"scripted_citizen_id"`
	Neighborhoods     []Neighborhood `yaml:"neighborhoods"`
	Citizens          []Citizen      `yaml:"citizens"`
	Channels          []NewsChannel  `yaml:"channels"`
	Directives        []Directive    `yaml:"directives"`
}

func (s Scenario) Validate() error {
	if s.OperatorID == "" {
		return fmt.Errorf("%w: operator_id is required", ErrInvalidScenario)
	}
	if len(s.Neighborhoods) == 0 {
		return fmt.Errorf("%w: at least one neighborhood is required", ErrInvalidScenario)
	}
	if _, ok := s.DirectiveForWeek(1); !ok {
		return fmt.Errorf("%w: no directive for week 1", ErrInvalidScenario)
	}
	seen := map[string]bool{}
	for _, c := range s.Citizens {
		if c.ID == "" || seen[c.ID] {
			return fmt.Errorf("%w: citizen id %q is empty or duplicated", ErrInvalidScenario, c.ID)
		}
		seen[c.ID] = true
	}
	for _, ch := range s.Channels {
		if ch.ID == "" || seen[ch.ID] {
			return fmt.Errorf("%w: channel id %q is empty or duplicated", ErrInvalidScenario, ch.ID)
		}
		seen[ch.ID] = true
	}
	return nil
}

func (s Scenario) DirectiveForWeek(week int) (Directive, bool) {
	for _, d := range s.Directives {
		if d.Week == week {
			return d, true
		}
	}
	return Directive{}, false
}

// LastWeek is the highest directive week.
func (s Scenario) LastWeek() int {
	weeks := make([]int, 0, len(s.Directives))
	for _, d := range s.Directives {
		weeks = append(weeks, d.Week)
	}
	if len(weeks) == 0 {
		return 0
	}
	sort.Ints(weeks)
	return weeks[len(weeks)-1]
}

func (s Scenario) InitialOperator() Operator {
	op := Operator{
		ID:              s.OperatorID,
		ComplianceScore: BaselineCompliance,
		CurrentWeek:     1,
		Status:          OperatorActive,
	}
	if d, ok := s.DirectiveForWeek(1); ok {
		op.CurrentDirectiveID = d.ID
	}
	return op
}

func (s Scenario) InitialReluctance() ReluctanceMetrics {
	var m ReluctanceMetrics
	if d, ok := s.DirectiveForWeek(1); ok {
		m.QuotaRequired = d.FlagQuota
	}
	return m
}
