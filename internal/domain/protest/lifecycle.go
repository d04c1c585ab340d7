// Package protest holds the protest state machine: spawn, natural advance and
// the two suppression gambles.
package protest

import (
	"errors"
	"fmt"
	"math"
	"time"

	"watchfloor/internal/domain/operation"
)

var (
	ErrTerminal          = errors.New("protest is in a terminal status")
	ErrInvalidTransition = errors.New("invalid protest transition")
	ErrNoIncitingAgent   = errors.New("protest has no inciting agent")
	ErrNoNeighborhood    = errors.New("no neighborhood available for protest")
)

var transitions = map[operation.ProtestStatus][]operation.ProtestStatus{
	operation.ProtestForming: {
		operation.ProtestActive,
		operation.ProtestDispersed,
		operation.ProtestViolent,
		operation.ProtestSuppressed,
	},
	operation.ProtestActive: {
		operation.ProtestDispersed,
		operation.ProtestViolent,
		operation.ProtestSuppressed,
	},
}

func CanTransition(from, to operation.ProtestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves p to status to, refusing anything outside the table.
func Transition(p *operation.Protest, to operation.ProtestStatus, now time.Time) error {
	if p.Status.Terminal() {
		return fmt.Errorf("%w: %s", ErrTerminal, p.Status)
	}
	if !CanTransition(p.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, to)
	}
	p.Status = to
	p.UpdatedAt = now
	return nil
}

type SpawnInput struct {
	OperatorID         string
	TriggerActionID    string
	Severity           int
	Anger              int
	TargetNeighborhood string
	CitizenHome        *operation.Point
	Neighborhoods      []operation.Neighborhood
	Now                time.Time
}

// Spawn creates a forming protest. The neighborhood is the explicit target,
// else the one containing the citizen's home, else a random one.
func Spawn(in SpawnInput, r operation.Rand) (operation.Protest, error) {
	hood := in.TargetNeighborhood
	if hood == "" && in.CitizenHome != nil {
		if n, ok := operation.NeighborhoodAt(in.Neighborhoods, *in.CitizenHome); ok {
			hood = n.Name
		}
	}
	if hood == "" {
		n, ok := operation.Pick(r, in.Neighborhoods)
		if !ok {
			return operation.Protest{}, ErrNoNeighborhood
		}
		hood = n.Name
	}

	return operation.Protest{
		ID:               operation.NewID("protest"),
		OperatorID:       in.OperatorID,
		Status:           operation.ProtestForming,
		Neighborhood:     hood,
		Size:             InitialSize(in.Anger, in.Severity, operation.FloatBetween(r, 0.7, 1.3)),
		TriggerActionID:  in.TriggerActionID,
		HasIncitingAgent: operation.Roll(r, operation.IncitingAgentChance),
		CreatedAt:        in.Now,
		UpdatedAt:        in.Now,
	}, nil
}

func InitialSize(anger, severity int, variance float64) int {
	base := float64(50+anger*2+severity*30) * variance
	return operation.Clamp(int(math.Round(base)), operation.ProtestMinSize, operation.ProtestMaxSize)
}

type Advance struct {
	From    operation.ProtestStatus
	To      operation.ProtestStatus
	OldSize int
	NewSize int
}

func (a Advance) Changed() bool {
	return a.From != a.To || a.OldSize != a.NewSize
}

// NaturalAdvance runs one tick: forming protests go active and grow,
// active ones may dissolve on their own.
func NaturalAdvance(p *operation.Protest, r operation.Rand, now time.Time) (Advance, error) {
	out := Advance{From: p.Status, To: p.Status, OldSize: p.Size, NewSize: p.Size}
	switch p.Status {
	case operation.ProtestForming:
		if err := Transition(p, operation.ProtestActive, now); err != nil {
			return Advance{}, err
		}
		grown := int(math.Round(float64(p.Size) * operation.FloatBetween(r, 1.1, 1.3)))
		p.Size = operation.Clamp(grown, operation.ProtestMinSize, operation.ProtestMaxSize)
	case operation.ProtestActive:
		if operation.Roll(r, operation.ProtestDissolveChance) {
			if err := Transition(p, operation.ProtestDispersed, now); err != nil {
				return Advance{}, err
			}
		}
	default:
		return Advance{}, fmt.Errorf("%w: %s", ErrTerminal, p.Status)
	}
	out.To = p.Status
	out.NewSize = p.Size
	return out, nil
}
