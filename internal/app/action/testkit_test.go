package action

import (
	"context"
	"sort"
	"time"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubCitizenRepo struct {
	byID  map[string]operation.Citizen
	saved int
}

func (r *stubCitizenRepo) GetByID(_ context.Context, id string) (operation.Citizen, error) {
	c, ok := r.byID[id]
	if !ok {
		return operation.Citizen{}, ports.ErrNotFound
	}
	return c, nil
}

func (r *stubCitizenRepo) Save(_ context.Context, c operation.Citizen) error {
	r.byID[c.ID] = c
	r.saved++
	return nil
}

func (r *stubCitizenRepo) List(context.Context) ([]operation.Citizen, error) {
	out := make([]operation.Citizen, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

type stubProtestRepo struct {
	byID  map[string]operation.Protest
	added []operation.Protest
}

func (r *stubProtestRepo) GetByID(_ context.Context, id string) (operation.Protest, error) {
	p, ok := r.byID[id]
	if !ok {
		return operation.Protest{}, ports.ErrNotFound
	}
	return p, nil
}

func (r *stubProtestRepo) Add(_ context.Context, p operation.Protest) error {
	r.byID[p.ID] = p
	r.added = append(r.added, p)
	return nil
}

func (r *stubProtestRepo) Update(_ context.Context, p operation.Protest) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ports.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *stubProtestRepo) List(context.Context) ([]operation.Protest, error) {
	out := make([]operation.Protest, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

type stubChannelRepo struct {
	order []string
	byID  map[string]operation.NewsChannel
}

func (r *stubChannelRepo) GetByID(_ context.Context, id string) (operation.NewsChannel, error) {
	ch, ok := r.byID[id]
	if !ok {
		return operation.NewsChannel{}, ports.ErrNotFound
	}
	ch.Reporters = append([]operation.Reporter(nil), ch.Reporters...)
	return ch, nil
}

func (r *stubChannelRepo) Update(_ context.Context, ch operation.NewsChannel) error {
	if _, ok := r.byID[ch.ID]; !ok {
		return ports.ErrNotFound
	}
	r.byID[ch.ID] = ch
	return nil
}

func (r *stubChannelRepo) List(context.Context) ([]operation.NewsChannel, error) {
	out := make([]operation.NewsChannel, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

type stubArticleRepo struct {
	articles []operation.NewsArticle
}

func (r *stubArticleRepo) Add(_ context.Context, a operation.NewsArticle) error {
	r.articles = append(r.articles, a)
	return nil
}

func (r *stubArticleRepo) ListRecent(_ context.Context, limit int) ([]operation.NewsArticle, error) {
	out := append([]operation.NewsArticle(nil), r.articles...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubMetricsRepo struct {
	public     operation.PublicMetrics
	reluctance operation.ReluctanceMetrics
}

func (r *stubMetricsRepo) GetPublic(context.Context) (operation.PublicMetrics, error) {
	return r.public, nil
}

func (r *stubMetricsRepo) SavePublic(_ context.Context, m operation.PublicMetrics) error {
	r.public = m
	return nil
}

func (r *stubMetricsRepo) GetReluctance(context.Context) (operation.ReluctanceMetrics, error) {
	return r.reluctance, nil
}

func (r *stubMetricsRepo) SaveReluctance(_ context.Context, m operation.ReluctanceMetrics) error {
	r.reluctance = m
	return nil
}

type stubOperatorRepo struct {
	op    *operation.Operator
	saved int
}

func (r *stubOperatorRepo) Get(context.Context) (operation.Operator, error) {
	if r.op == nil {
		return operation.Operator{}, ports.ErrNotFound
	}
	return *r.op, nil
}

func (r *stubOperatorRepo) Save(_ context.Context, op operation.Operator) error {
	r.op = &op
	r.saved++
	return nil
}

type stubActionRepo struct {
	actions []operation.Action
}

func (r *stubActionRepo) Add(_ context.Context, a operation.Action) error {
	r.actions = append(r.actions, a)
	return nil
}

func (r *stubActionRepo) List(_ context.Context, f ports.ActionFilter) ([]operation.Action, error) {
	out := make([]operation.Action, 0, len(r.actions))
	for _, a := range r.actions {
		if f.Kind != "" && a.Kind != f.Kind {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *stubActionRepo) SetOutcome(_ context.Context, id string, slot operation.OutcomeSlot, text string) error {
	for i := range r.actions {
		if r.actions[i].ID == id {
			r.actions[i].SetOutcome(slot, text)
			return nil
		}
	}
	return ports.ErrNotFound
}

type stubNeighborhoodRepo struct {
	items []operation.Neighborhood
}

func (r stubNeighborhoodRepo) List(context.Context) ([]operation.Neighborhood, error) {
	return r.items, nil
}

type stubBookRepo struct {
	byID map[string]operation.BookPublication
}

func (r *stubBookRepo) Add(_ context.Context, b operation.BookPublication) error {
	r.byID[b.ID] = b
	return nil
}

func (r *stubBookRepo) GetByID(_ context.Context, id string) (operation.BookPublication, error) {
	b, ok := r.byID[id]
	if !ok {
		return operation.BookPublication{}, ports.ErrNotFound
	}
	return b, nil
}

func (r *stubBookRepo) Update(_ context.Context, b operation.BookPublication) error {
	if _, ok := r.byID[b.ID]; !ok {
		return ports.ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *stubBookRepo) List(context.Context) ([]operation.BookPublication, error) {
	out := make([]operation.BookPublication, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

type stubRecorder struct {
	executed    map[operation.ActionKind]int
	unavailable map[operation.ActionKind]int
	failures    int
}

func newStubRecorder() *stubRecorder {
	return &stubRecorder{
		executed:    map[operation.ActionKind]int{},
		unavailable: map[operation.ActionKind]int{},
	}
}

func (r *stubRecorder) RecordExecuted(kind operation.ActionKind)    { r.executed[kind]++ }
func (r *stubRecorder) RecordUnavailable(kind operation.ActionKind) { r.unavailable[kind]++ }
func (r *stubRecorder) RecordFailure()                              { r.failures++ }

var fixtureNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	citizens  *stubCitizenRepo
	protests  *stubProtestRepo
	channels  *stubChannelRepo
	articles  *stubArticleRepo
	metrics   *stubMetricsRepo
	operators *stubOperatorRepo
	actions   *stubActionRepo
	books     *stubBookRepo
	recorder  *stubRecorder
}

// newFixture seeds a week-1 operator, three outlets, two neighborhoods and a
// handful of citizens and protests.
func newFixture() *fixture {
	return &fixture{
		citizens: &stubCitizenRepo{byID: map[string]operation.Citizen{
			"cit-1": {ID: "cit-1", Name: "Mara Quill", Home: operation.Point{X: 10, Y: 10}},
			"cit-2": {ID: "cit-2", Name: "Tomas Reyes", Home: operation.Point{X: 70, Y: 20}, Detained: true},
			"cit-3": {ID: "cit-3", Name: "Ines Marr", Home: operation.Point{X: 30, Y: 40}, Hospitalized: true},
		}},
		protests: &stubProtestRepo{byID: map[string]operation.Protest{
			"pr-forming": {ID: "pr-forming", Status: operation.ProtestForming, Neighborhood: "Eastside", Size: 300, HasIncitingAgent: true},
			"pr-active":  {ID: "pr-active", Status: operation.ProtestActive, Neighborhood: "Harbor", Size: 800},
			"pr-done":    {ID: "pr-done", Status: operation.ProtestDispersed, Neighborhood: "Harbor", Size: 120},
		}},
		channels: &stubChannelRepo{
			order: []string{"ch-critical", "ch-independent", "ch-state"},
			byID: map[string]operation.NewsChannel{
				"ch-critical": {ID: "ch-critical", Name: "The Ledger", Stance: operation.StanceCritical, Credibility: 60,
					Reporters: []operation.Reporter{{Name: "A. Holt"}, {Name: "J. Pike"}}},
				"ch-independent": {ID: "ch-independent", Name: "Metro Wire", Stance: operation.StanceIndependent, Credibility: 50,
					Reporters: []operation.Reporter{{Name: "R. Sand", Fired: true}}},
				"ch-state": {ID: "ch-state", Name: "National Voice", Stance: operation.StanceStateFriendly, Credibility: 40, Banned: true},
			},
		},
		articles: &stubArticleRepo{},
		metrics: &stubMetricsRepo{
			public: operation.PublicMetrics{Awareness: 10, Anger: 10},
		},
		operators: &stubOperatorRepo{op: &operation.Operator{
			ID:                 "op-1",
			ComplianceScore:    operation.BaselineCompliance,
			CurrentWeek:        1,
			Status:             operation.OperatorActive,
			CurrentDirectiveID: "dir-1",
		}},
		actions:  &stubActionRepo{},
		books:    &stubBookRepo{byID: map[string]operation.BookPublication{}},
		recorder: newStubRecorder(),
	}
}

func (f *fixture) useCase(r operation.Rand) UseCase {
	return UseCase{
		TxManager:   stubTxManager{},
		Citizens:    f.citizens,
		Protests:    f.protests,
		Channels:    f.channels,
		Articles:    f.articles,
		MetricsRepo: f.metrics,
		Operators:   f.operators,
		Actions:     f.actions,
		Neighborhoods: stubNeighborhoodRepo{items: []operation.Neighborhood{
			{Name: "Eastside", Bounds: operation.Bounds{MinX: 0, MinY: 0, MaxX: 50, MaxY: 50}},
			{Name: "Harbor", Bounds: operation.Bounds{MinX: 50, MinY: 0, MaxX: 100, MaxY: 50}},
		}},
		Books:   f.books,
		Metrics: f.recorder,
		Rand:    r,
		Now:     func() time.Time { return fixtureNow },
	}
}
