// Package ending resolves a playthrough into its terminal narrative.
package ending

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/ending"
	"watchfloor/internal/domain/operation"
)

var ErrInvalidRequest = errors.New("invalid ending request")

type Request struct {
	OperatorID string `json:"operator_id"`
}

type Response struct {
	State     ending.State     `json:"state"`
	Narrative ending.Narrative `json:"narrative"`
}

type UseCase struct {
	TxManager         ports.TxManager
	Operators         ports.OperatorRepository
	MetricsRepo       ports.MetricsRepository
	Flags             ports.FlagRepository
	Actions           ports.ActionRepository
	ScriptedCitizenID string
	Logger            *slog.Logger
}

func (u UseCase) logger() *slog.Logger {
	if u.Logger != nil {
		return u.Logger
	}
	return slog.Default()
}

// Execute selects and renders the ending, then writes its timeline into the
// deferred outcome slots of every recorded action.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.OperatorID = strings.TrimSpace(req.OperatorID)
	if req.OperatorID == "" {
		return Response{}, ErrInvalidRequest
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		op, err := operatorstate.Load(txCtx, u.Operators, req.OperatorID)
		if err != nil {
			return err
		}
		public, err := u.MetricsRepo.GetPublic(txCtx)
		if err != nil {
			return err
		}
		rel, err := u.MetricsRepo.GetReluctance(txCtx)
		if err != nil {
			return err
		}
		flags, err := u.Flags.List(txCtx)
		if err != nil {
			return err
		}
		actions, err := u.Actions.List(txCtx, ports.ActionFilter{OperatorID: op.ID})
		if err != nil {
			return err
		}

		state := ending.State{
			Compliance: op.ComplianceScore,
			Awareness:  public.Awareness,
			Anger:      public.Anger,
			Reluctance: rel.Score,
			Week:       op.CurrentWeek,
		}
		for _, f := range flags {
			if f.OperatorID != op.ID {
				continue
			}
			state.TotalFlags++
			if u.ScriptedCitizenID != "" && f.CitizenID == u.ScriptedCitizenID {
				state.FlaggedScriptedCitizen = true
			}
		}
		kind := ending.Select(state)
		if forced, ok := terminationEnding(op); ok {
			kind = forced
		}

		stats := ending.Stats{
			ComplianceScore: op.ComplianceScore,
			TotalFlags:      state.TotalFlags,
			FlagsRejected:   op.FlagsRejected,
			Refusals:        rel.NoActionCount,
			Week:            op.CurrentWeek,
		}
		for _, a := range actions {
			switch a.Kind {
			case operation.ActionArbitraryDetention, operation.ActionHospitalArrest:
				stats.Detentions++
				stats.FamiliesSeparated++
			case operation.ActionICERaid:
				stats.FamiliesSeparated++
			}
		}
		narrative, err := ending.Render(kind, stats)
		if err != nil {
			return err
		}
		for _, a := range actions {
			for slot, text := range narrative.Timeline {
				if err := u.Actions.SetOutcome(txCtx, a.ID, slot, fmt.Sprintf("%s: %s", a.Kind.Label(), text)); err != nil {
					return err
				}
			}
		}
		out = Response{State: state, Narrative: narrative}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	u.logger().Info("ending resolved",
		"operator_id", req.OperatorID,
		"ending", out.Narrative.Kind,
		"compliance", out.State.Compliance,
		"week", out.State.Week,
	)
	return out, nil
}

// terminationEnding maps a termination verdict onto the ending it implies.
func terminationEnding(op operation.Operator) (ending.Kind, bool) {
	if !op.Terminated() || op.TerminationReason == "" {
		return "", false
	}
	kind, err := ending.ParseKind(strings.ToLower(op.TerminationReason))
	if err != nil {
		return "", false
	}
	return kind, true
}
