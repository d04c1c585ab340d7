package inmemory

import (
	"sync"

	"watchfloor/internal/domain/operation"
)

type Snapshot struct {
	ActionTotal       uint64            `json:"action_total"`
	ActionExecuted    uint64            `json:"action_executed"`
	ActionUnavailable uint64            `json:"action_unavailable"`
	ActionFailure     uint64            `json:"action_failure"`
	ExecutedByKind    map[string]uint64 `json:"executed_by_kind"`
	UnavailableByKind map[string]uint64 `json:"unavailable_by_kind"`
}

type Recorder struct {
	mu            sync.Mutex
	executed      uint64
	unavailable   uint64
	failure       uint64
	byKind        map[string]uint64
	unavailByKind map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind:        map[string]uint64{},
		unavailByKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordExecuted(kind operation.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executed++
	r.byKind[string(kind)]++
}

func (r *Recorder) RecordUnavailable(kind operation.ActionKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unavailable++
	r.unavailByKind[string(kind)]++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionExecuted:    r.executed,
		ActionUnavailable: r.unavailable,
		ActionFailure:     r.failure,
		ActionTotal:       r.executed + r.unavailable + r.failure,
		ExecutedByKind:    make(map[string]uint64, len(r.byKind)),
		UnavailableByKind: make(map[string]uint64, len(r.unavailByKind)),
	}
	for k, v := range r.byKind {
		out.ExecutedByKind[k] = v
	}
	for k, v := range r.unavailByKind {
		out.UnavailableByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
