package replay

import "watchfloor/internal/domain/operation"

type Request struct {
	OperatorID   string
	Kind         operation.ActionKind
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Summary struct {
	Total           int                          `json:"total"`
	ByKind          map[operation.ActionKind]int `json:"by_kind"`
	Backlashes      int                          `json:"backlashes"`
	Hesitant        int                          `json:"hesitant"`
	HarshActions    int                          `json:"harsh_actions"`
	AverageSeverity float64                      `json:"average_severity"`
}

type Response struct {
	Actions []operation.Action `json:"actions"`
	Summary Summary            `json:"summary"`
}
