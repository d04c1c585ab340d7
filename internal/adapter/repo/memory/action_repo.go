package memory

import (
	"context"
	"fmt"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type ActionRepo struct {
	store *Store
}

func NewActionRepo(store *Store) ActionRepo {
	return ActionRepo{store: store}
}

func (r ActionRepo) Add(_ context.Context, a operation.Action) error {
	r.store.actions = append(r.store.actions, a)
	return nil
}

// List returns matching actions oldest first, keeping the newest Limit.
func (r ActionRepo) List(_ context.Context, f ports.ActionFilter) ([]operation.Action, error) {
	out := make([]operation.Action, 0, len(r.store.actions))
	for _, a := range r.store.actions {
		if f.OperatorID != "" && a.OperatorID != f.OperatorID {
			continue
		}
		if f.Kind != "" && a.Kind != f.Kind {
			continue
		}
		out = append(out, a)
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out, nil
}

func (r ActionRepo) SetOutcome(_ context.Context, actionID string, slot operation.OutcomeSlot, text string) error {
	for i := range r.store.actions {
		if r.store.actions[i].ID != actionID {
			continue
		}
		if !r.store.actions[i].SetOutcome(slot, text) {
			return fmt.Errorf("unknown outcome slot %q", slot)
		}
		return nil
	}
	return ports.ErrNotFound
}

type FlagRepo struct {
	store *Store
}

func NewFlagRepo(store *Store) FlagRepo {
	return FlagRepo{store: store}
}

func (r FlagRepo) Add(_ context.Context, f operation.CitizenFlag) error {
	if _, ok := r.store.flags[f.ID]; ok {
		return ports.ErrConflict
	}
	r.store.flags[f.ID] = f
	r.store.flagOrder = append(r.store.flagOrder, f.ID)
	return nil
}

func (r FlagRepo) GetByID(_ context.Context, id string) (operation.CitizenFlag, error) {
	f, ok := r.store.flags[id]
	if !ok {
		return operation.CitizenFlag{}, ports.ErrNotFound
	}
	return f, nil
}

func (r FlagRepo) Update(_ context.Context, f operation.CitizenFlag) error {
	if _, ok := r.store.flags[f.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.flags[f.ID] = f
	return nil
}

func (r FlagRepo) List(context.Context) ([]operation.CitizenFlag, error) {
	out := make([]operation.CitizenFlag, 0, len(r.store.flagOrder))
	for _, id := range r.store.flagOrder {
		out = append(out, r.store.flags[id])
	}
	return out, nil
}
