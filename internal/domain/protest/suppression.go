package protest

import (
	"fmt"
	"time"

	"watchfloor/internal/domain/operation"
)

// Outcome is the result of a suppression attempt: Success or Catastrophe.
type Outcome interface {
	Deltas() (awareness, anger int)
	Narrative() string
	outcome()
}

type Success struct {
	Status         operation.ProtestStatus
	Arrests        int
	Casualties     int
	AwarenessDelta int
	AngerDelta     int
	Message        string
}

func (s Success) Deltas() (int, int) { return s.AwarenessDelta, s.AngerDelta }
func (s Success) Narrative() string  { return s.Message }
func (Success) outcome()             {}

// Catastrophe is the failed violent suppression: the planted agent is exposed.
type Catastrophe struct {
	Status         operation.ProtestStatus
	Arrests        int
	Casualties     int
	AwarenessDelta int
	AngerDelta     int
	Message        string
}

func (c Catastrophe) Deltas() (int, int) { return c.AwarenessDelta, c.AngerDelta }
func (c Catastrophe) Narrative() string  { return c.Message }
func (Catastrophe) outcome()             {}

// SuppressLegally declares the protest illegal. It always disperses.
func SuppressLegally(p *operation.Protest, r operation.Rand, now time.Time) (Success, error) {
	if err := Transition(p, operation.ProtestDispersed, now); err != nil {
		return Success{}, err
	}
	arrests := operation.IntBetween(r, 5, 15)
	p.Arrests += arrests
	return Success{
		Status:         p.Status,
		Arrests:        arrests,
		AwarenessDelta: 8,
		AngerDelta:     6,
		Message:        fmt.Sprintf("Protest in %s declared illegal and dispersed. %d arrested.", p.Neighborhood, arrests),
	}, nil
}

// SuppressViolently uses the planted agent to provoke violence.
func SuppressViolently(p *operation.Protest, r operation.Rand, now time.Time) (Outcome, error) {
	if p.Status.Terminal() {
		return nil, fmt.Errorf("%w: %s", ErrTerminal, p.Status)
	}
	if !p.HasIncitingAgent {
		return nil, ErrNoIncitingAgent
	}

	if operation.Roll(r, operation.ViolentSuppressionOdds) {
		if err := Transition(p, operation.ProtestViolent, now); err != nil {
			return nil, err
		}
		casualties := operation.IntBetween(r, 3, 10)
		arrests := operation.IntBetween(r, 20, 50)
		p.Casualties += casualties
		p.Arrests += arrests
		return Success{
			Status:         p.Status,
			Arrests:        arrests,
			Casualties:     casualties,
			AwarenessDelta: 5,
			AngerDelta:     3,
			Message: fmt.Sprintf("Violence erupts at the %s protest. Authorities blame protesters: %d casualties, %d arrested.",
				p.Neighborhood, casualties, arrests),
		}, nil
	}

	if err := Transition(p, operation.ProtestSuppressed, now); err != nil {
		return nil, err
	}
	casualties := operation.IntBetween(r, 5, 15)
	arrests := operation.IntBetween(r, 10, 30)
	p.Casualties += casualties
	p.Arrests += arrests
	p.IncitingAgentDiscovered = true
	return Catastrophe{
		Status:         p.Status,
		Arrests:        arrests,
		Casualties:     casualties,
		AwarenessDelta: 25,
		AngerDelta:     30,
		Message: fmt.Sprintf("Government agent exposed inciting violence at the %s protest. %d casualties, %d arrested.",
			p.Neighborhood, casualties, arrests),
	}, nil
}
