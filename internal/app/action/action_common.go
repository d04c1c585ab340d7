package action

import (
	"context"
	"errors"
	"strings"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

// loadTarget fetches one target record, turning a missing id into an
// unavailable verdict.
func loadTarget[T any](ctx context.Context, id, what string, get func(context.Context, string) (T, error)) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, unavailable("%s target is required", what)
	}
	v, err := get(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, unavailable("%s %s not found", what, id)
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func loadCitizen(ctx context.Context, uc UseCase, ac *ActionContext) error {
	c, err := loadTarget(ctx, ac.In.Req.Targets.CitizenID, "citizen", uc.Citizens.GetByID)
	if err != nil {
		return err
	}
	ac.View.Citizen = c
	return nil
}

func knownNeighborhood(neighborhoods []operation.Neighborhood, name string) bool {
	for _, n := range neighborhoods {
		if strings.EqualFold(n.Name, name) {
			return true
		}
	}
	return false
}

// applyGamble queues the extra deltas of a gamble outcome and narrates it.
func applyGamble(ac *ActionContext, deltas func() (int, int), narrative string) {
	aw, anger := deltas()
	ac.addExtra(aw, anger)
	ac.message(narrative)
}
