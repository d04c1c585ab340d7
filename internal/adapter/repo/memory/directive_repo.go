package memory

import (
	"context"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type DirectiveRepo struct {
	store *Store
}

func NewDirectiveRepo(store *Store) DirectiveRepo {
	return DirectiveRepo{store: store}
}

func (r DirectiveRepo) GetByID(_ context.Context, id string) (operation.Directive, error) {
	d, ok := r.store.directives[id]
	if !ok {
		return operation.Directive{}, ports.ErrNotFound
	}
	return d, nil
}

func (r DirectiveRepo) GetByWeek(_ context.Context, week int) (operation.Directive, error) {
	for _, d := range r.store.directives {
		if d.Week == week {
			return d, nil
		}
	}
	return operation.Directive{}, ports.ErrNotFound
}

func (r DirectiveRepo) LastWeek(context.Context) (int, error) {
	last := 0
	for _, d := range r.store.directives {
		last = max(last, d.Week)
	}
	return last, nil
}

type BookRepo struct {
	store *Store
}

func NewBookRepo(store *Store) BookRepo {
	return BookRepo{store: store}
}

func (r BookRepo) Add(_ context.Context, b operation.BookPublication) error {
	if _, ok := r.store.books[b.ID]; ok {
		return ports.ErrConflict
	}
	r.store.books[b.ID] = b
	return nil
}

func (r BookRepo) GetByID(_ context.Context, id string) (operation.BookPublication, error) {
	b, ok := r.store.books[id]
	if !ok {
		return operation.BookPublication{}, ports.ErrNotFound
	}
	return b, nil
}

func (r BookRepo) Update(_ context.Context, b operation.BookPublication) error {
	if _, ok := r.store.books[b.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.books[b.ID] = b
	return nil
}

func (r BookRepo) List(context.Context) ([]operation.BookPublication, error) {
	return sortedValues(r.store.books), nil
}
