// Package replay lists the operator's recorded decisions and summarizes them.
package replay

import (
	"context"
	"errors"
	"strings"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	TxManager ports.TxManager
	Actions   ports.ActionRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.OperatorID = strings.TrimSpace(req.OperatorID)
	if req.OperatorID == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Kind != "" && !req.Kind.Valid() {
		return Response{}, ErrInvalidRequest
	}
	var actions []operation.Action
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		actions, err = u.Actions.List(txCtx, ports.ActionFilter{OperatorID: req.OperatorID, Kind: req.Kind, Limit: req.Limit})
		return err
	})
	if err != nil {
		return Response{}, err
	}
	actions = filterByTimeWindow(actions, req.OccurredFrom, req.OccurredTo)
	return Response{Actions: actions, Summary: summarize(actions)}, nil
}

func filterByTimeWindow(actions []operation.Action, from, to int64) []operation.Action {
	if from <= 0 && to <= 0 {
		return actions
	}
	out := make([]operation.Action, 0, len(actions))
	for _, a := range actions {
		ts := a.CreatedAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, a)
	}
	return out
}

func summarize(actions []operation.Action) Summary {
	s := Summary{ByKind: map[operation.ActionKind]int{}}
	severity := 0
	for _, a := range actions {
		s.Total++
		s.ByKind[a.Kind]++
		severity += a.Severity
		if a.BacklashOccurred {
			s.Backlashes++
		}
		if a.WasHesitant {
			s.Hesitant++
		}
		if operation.IsHarsh(a.Severity) {
			s.HarshActions++
		}
	}
	if s.Total > 0 {
		s.AverageSeverity = float64(severity) / float64(s.Total)
	}
	return s
}
