// Package opinion models public awareness and anger and the probabilities
// that hang off them.
package opinion

import (
	"math"

	"watchfloor/internal/domain/operation"
)

type Axis string

const (
	AxisAwareness Axis = "awareness"
	AxisAnger     Axis = "anger"
)

type Tier struct {
	Index       int
	Threshold   int
	Description string
}

var awarenessTiers = []Tier{
	{Index: 1, Threshold: 20, Description: "Local whispers"},
	{Index: 2, Threshold: 40, Description: "National coverage"},
	{Index: 3, Threshold: 60, Description: "International attention"},
	{Index: 4, Threshold: 80, Description: "Global condemnation"},
	{Index: 5, Threshold: 95, Description: "International pariah status"},
}

var angerTiers = []Tier{
	{Index: 1, Threshold: 20, Description: "Murmurs of discontent"},
	{Index: 2, Threshold: 40, Description: "Open criticism"},
	{Index: 3, Threshold: 60, Description: "Organized resistance"},
	{Index: 4, Threshold: 80, Description: "Mass unrest"},
	{Index: 5, Threshold: 95, Description: "Revolutionary fervor"},
}

func Tiers(axis Axis) []Tier {
	if axis == AxisAnger {
		return append([]Tier(nil), angerTiers...)
	}
	return append([]Tier(nil), awarenessTiers...)
}

type TierEvent struct {
	Axis        Axis   `json:"axis"`
	Tier        int    `json:"tier"`
	Threshold   int    `json:"threshold"`
	Description string `json:"description"`
}

type Change struct {
	AwarenessDelta int         `json:"awareness_delta"`
	AngerDelta     int         `json:"anger_delta"`
	TierEvents     []TierEvent `json:"tier_events,omitempty"`
}

func (c *Change) Merge(other Change) {
	c.AwarenessDelta += other.AwarenessDelta
	c.AngerDelta += other.AngerDelta
	c.TierEvents = append(c.TierEvents, other.TierEvents...)
}

// Engine mutates a PublicMetrics record in place.
type Engine struct {
	Metrics *operation.PublicMetrics
}

func NewEngine(m *operation.PublicMetrics) Engine {
	return Engine{Metrics: m}
}

func AwarenessDelta(awareness, severity int, backlash bool) int {
	delta := float64(severity)
	if awareness > 60 {
		delta *= 1 + float64(awareness-60)/40
	}
	if backlash {
		delta *= 2
	}
	return int(math.Round(delta))
}

func AngerDelta(kind operation.ActionKind, severity int, backlash bool) int {
	delta := severity
	if kind == operation.ActionICERaid || kind == operation.ActionArbitraryDetention {
		delta += 5
	}
	if backlash {
		delta += 10
	}
	return delta
}

// ApplyAction runs the standard per-action update.
func (e Engine) ApplyAction(kind operation.ActionKind, severity int, backlash bool) Change {
	return e.ApplyDelta(
		AwarenessDelta(e.Metrics.Awareness, severity, backlash),
		AngerDelta(kind, severity, backlash),
	)
}

// ApplyDelta adds non-negative deltas; negative inputs are treated as zero
// so both axes stay monotonic. Reported deltas are the clamped change.
func (e Engine) ApplyDelta(awareness, anger int) Change {
	m := e.Metrics
	if awareness < 0 {
		awareness = 0
	}
	if anger < 0 {
		anger = 0
	}
	beforeAwareness, beforeAnger := m.Awareness, m.Anger
	m.Awareness = operation.ClampMetric(m.Awareness + awareness)
	m.Anger = operation.ClampMetric(m.Anger + anger)

	out := Change{
		AwarenessDelta: m.Awareness - beforeAwareness,
		AngerDelta:     m.Anger - beforeAnger,
	}
	var events []TierEvent
	m.AwarenessTier, events = crossTiers(AxisAwareness, awarenessTiers, m.AwarenessTier, m.Awareness)
	out.TierEvents = append(out.TierEvents, events...)
	m.AngerTier, events = crossTiers(AxisAnger, angerTiers, m.AngerTier, m.Anger)
	out.TierEvents = append(out.TierEvents, events...)
	return out
}

func crossTiers(axis Axis, tiers []Tier, reached, value int) (int, []TierEvent) {
	var events []TierEvent
	for _, t := range tiers {
		if t.Index <= reached || value < t.Threshold {
			continue
		}
		events = append(events, TierEvent{
			Axis:        axis,
			Tier:        t.Index,
			Threshold:   t.Threshold,
			Description: t.Description,
		})
		reached = t.Index
	}
	return reached, events
}
