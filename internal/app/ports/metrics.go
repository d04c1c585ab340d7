package ports

import "watchfloor/internal/domain/operation"

type ActionMetrics interface {
	RecordExecuted(kind operation.ActionKind)
	RecordUnavailable(kind operation.ActionKind)
	RecordFailure()
}
