package ports

import (
	"context"
	"fmt"

	"watchfloor/internal/domain/risk"
)

var ErrReferenceDataMissing = fmt.Errorf("reference data %w", ErrNotFound)

type ReferenceData interface {
	RiskReference(ctx context.Context) (risk.ReferenceData, error)
}
