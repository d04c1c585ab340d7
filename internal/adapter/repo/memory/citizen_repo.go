package memory

import (
	"context"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type CitizenRepo struct {
	store *Store
}

func NewCitizenRepo(store *Store) CitizenRepo {
	return CitizenRepo{store: store}
}

func (r CitizenRepo) GetByID(_ context.Context, id string) (operation.Citizen, error) {
	c, ok := r.store.citizens[id]
	if !ok {
		return operation.Citizen{}, ports.ErrNotFound
	}
	return c, nil
}

func (r CitizenRepo) Save(_ context.Context, c operation.Citizen) error {
	r.store.citizens[c.ID] = c
	return nil
}

func (r CitizenRepo) List(context.Context) ([]operation.Citizen, error) {
	return sortedValues(r.store.citizens), nil
}

type NeighborhoodRepo struct {
	store *Store
}

func NewNeighborhoodRepo(store *Store) NeighborhoodRepo {
	return NeighborhoodRepo{store: store}
}

func (r NeighborhoodRepo) List(context.Context) ([]operation.Neighborhood, error) {
	return append([]operation.Neighborhood(nil), r.store.neighborhoods...), nil
}
