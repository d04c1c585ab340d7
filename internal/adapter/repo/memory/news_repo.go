package memory

import (
	"context"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type NewsChannelRepo struct {
	store *Store
}

func NewNewsChannelRepo(store *Store) NewsChannelRepo {
	return NewsChannelRepo{store: store}
}

func (r NewsChannelRepo) GetByID(_ context.Context, id string) (operation.NewsChannel, error) {
	ch, ok := r.store.channels[id]
	if !ok {
		return operation.NewsChannel{}, ports.ErrNotFound
	}
	return cloneChannel(ch), nil
}

func (r NewsChannelRepo) Update(_ context.Context, ch operation.NewsChannel) error {
	if _, ok := r.store.channels[ch.ID]; !ok {
		return ports.ErrNotFound
	}
	r.store.channels[ch.ID] = cloneChannel(ch)
	return nil
}

func (r NewsChannelRepo) List(context.Context) ([]operation.NewsChannel, error) {
	out := make([]operation.NewsChannel, 0, len(r.store.channelOrder))
	for _, id := range r.store.channelOrder {
		out = append(out, cloneChannel(r.store.channels[id]))
	}
	return out, nil
}

type NewsArticleRepo struct {
	store *Store
}

func NewNewsArticleRepo(store *Store) NewsArticleRepo {
	return NewsArticleRepo{store: store}
}

func (r NewsArticleRepo) Add(_ context.Context, a operation.NewsArticle) error {
	r.store.articles = append(r.store.articles, a)
	return nil
}

func (r NewsArticleRepo) ListRecent(_ context.Context, limit int) ([]operation.NewsArticle, error) {
	n := len(r.store.articles)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]operation.NewsArticle, 0, n)
	for i := len(r.store.articles) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.store.articles[i])
	}
	return out, nil
}
