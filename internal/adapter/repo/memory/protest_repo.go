package memory

import (
	"context"
	"sort"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type ProtestRepo struct {
	store *Store
}

func NewProtestRepo(store *Store) ProtestRepo {
	return ProtestRepo{store: store}
}

func (r ProtestRepo) GetByID(_ context.Context, id string) (operation.Protest, error) {
	p, ok := r.store.protests[id]
	if !ok {
		return operation.Protest{}, ports.ErrNotFound
	}
	return p, nil
}

func (r ProtestRepo) Add(_ context.Context, p operation.Protest) error {
	if _, ok := r.store.protests[p.ID]; ok {
		return ports.ErrConflict
	}
	r.store.protests[p.ID] = p
	return nil
}

func (r ProtestRepo) Update(_ context.Context, p operation.Protest) error {
	if _, ok := r.store.protests[p.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.protests[p.ID] = p
	return nil
}

// List returns protests oldest first.
func (r ProtestRepo) List(context.Context) ([]operation.Protest, error) {
	out := sortedValues(r.store.protests)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
