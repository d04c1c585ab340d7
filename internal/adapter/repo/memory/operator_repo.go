package memory

import (
	"context"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type OperatorRepo struct {
	store *Store
}

func NewOperatorRepo(store *Store) OperatorRepo {
	return OperatorRepo{store: store}
}

func (r OperatorRepo) Get(context.Context) (operation.Operator, error) {
	if r.store.operator == nil {
		return operation.Operator{}, ports.ErrNotFound
	}
	return *r.store.operator, nil
}

func (r OperatorRepo) Save(_ context.Context, op operation.Operator) error {
	r.store.operator = &op
	return nil
}

type MetricsRepo struct {
	store *Store
}

func NewMetricsRepo(store *Store) MetricsRepo {
	return MetricsRepo{store: store}
}

func (r MetricsRepo) GetPublic(context.Context) (operation.PublicMetrics, error) {
	return r.store.public, nil
}

func (r MetricsRepo) SavePublic(_ context.Context, m operation.PublicMetrics) error {
	r.store.public = m
	return nil
}

func (r MetricsRepo) GetReluctance(context.Context) (operation.ReluctanceMetrics, error) {
	return r.store.reluctance, nil
}

func (r MetricsRepo) SaveReluctance(_ context.Context, m operation.ReluctanceMetrics) error {
	r.store.reluctance = m
	return nil
}
