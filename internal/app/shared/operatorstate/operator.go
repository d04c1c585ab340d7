// Package operatorstate loads the playthrough's single operator for use
// cases that act on their behalf.
package operatorstate

import (
	"context"
	"errors"
	"fmt"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
)

var (
	ErrOperatorNotFound   = fmt.Errorf("operator %w", ports.ErrNotFound)
	ErrOperatorTerminated = errors.New("operator has been terminated")
)

// Load returns the operator when it exists and carries id.
func Load(ctx context.Context, repo ports.OperatorRepository, id string) (operation.Operator, error) {
	op, err := repo.Get(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		return operation.Operator{}, fmt.Errorf("%w: %s", ErrOperatorNotFound, id)
	}
	if err != nil {
		return operation.Operator{}, err
	}
	if id != "" && op.ID != id {
		return operation.Operator{}, fmt.Errorf("%w: %s", ErrOperatorNotFound, id)
	}
	return op, nil
}

// LoadActive is Load that also refuses a terminated operator.
func LoadActive(ctx context.Context, repo ports.OperatorRepository, id string) (operation.Operator, error) {
	op, err := Load(ctx, repo, id)
	if err != nil {
		return operation.Operator{}, err
	}
	if op.Terminated() {
		return operation.Operator{}, ErrOperatorTerminated
	}
	return op, nil
}
