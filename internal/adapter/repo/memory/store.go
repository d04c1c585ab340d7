package memory

import (
	"sort"
	"sync"

	"watchfloor/internal/domain/operation"
)

// Store keeps one playthrough in process memory. Repositories built on it do
// not lock; callers go through TxManager.
type Store struct {
	mu            sync.RWMutex
	operator      *operation.Operator
	public        operation.PublicMetrics
	reluctance    operation.ReluctanceMetrics
	citizens      map[string]operation.Citizen
	protests      map[string]operation.Protest
	channels      map[string]operation.NewsChannel
	channelOrder  []string
	articles      []operation.NewsArticle
	actions       []operation.Action
	flags         map[string]operation.CitizenFlag
	flagOrder     []string
	directives    map[string]operation.Directive
	neighborhoods []operation.Neighborhood
	books         map[string]operation.BookPublication
}

func NewStore() *Store {
	return &Store{
		citizens:   make(map[string]operation.Citizen),
		protests:   make(map[string]operation.Protest),
		channels:   make(map[string]operation.NewsChannel),
		flags:      make(map[string]operation.CitizenFlag),
		directives: make(map[string]operation.Directive),
		books:      make(map[string]operation.BookPublication),
	}
}

// Seed replaces the store contents with the starting state of s.
func (s *Store) Seed(sc operation.Scenario) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	op := sc.InitialOperator()
	s.operator = &op
	s.public = operation.PublicMetrics{}
	s.reluctance = sc.InitialReluctance()
	s.citizens = make(map[string]operation.Citizen, len(sc.Citizens))
	for _, c := range sc.Citizens {
		s.citizens[c.ID] = c
	}
	s.channels = make(map[string]operation.NewsChannel, len(sc.Channels))
	s.channelOrder = s.channelOrder[:0]
	for _, ch := range sc.Channels {
		s.channels[ch.ID] = cloneChannel(ch)
		s.channelOrder = append(s.channelOrder, ch.ID)
	}
	s.directives = make(map[string]operation.Directive, len(sc.Directives))
	for _, d := range sc.Directives {
		s.directives[d.ID] = d
	}
	s.neighborhoods = append([]operation.Neighborhood(nil), sc.Neighborhoods...)
	s.protests = make(map[string]operation.Protest)
	s.flags = make(map[string]operation.CitizenFlag)
	s.flagOrder = nil
	s.books = make(map[string]operation.BookPublication)
	s.articles = nil
	s.actions = nil
	return nil
}

func cloneChannel(ch operation.NewsChannel) operation.NewsChannel {
	ch.Reporters = append([]operation.Reporter(nil), ch.Reporters...)
	return ch
}

func sortedValues[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
