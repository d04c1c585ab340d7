package flag

import (
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/risk"
)

type SubmitRequest struct {
	OperatorID      string  `json:"operator_id"`
	DirectiveID     string  `json:"directive_id,omitempty"`
	CitizenID       string  `json:"citizen_id"`
	FlagType        string  `json:"flag_type"`
	Justification   string  `json:"justification"`
	DecisionSeconds float64 `json:"decision_seconds"`
	WasHesitant     bool    `json:"was_hesitant"`
}

type SubmitResponse struct {
	Flag            operation.CitizenFlag   `json:"flag"`
	Risk            risk.Result             `json:"risk"`
	QuotaRequired   int                     `json:"quota_required"`
	QuotaCompleted  int                     `json:"quota_completed"`
	ReluctanceDelta int                     `json:"reluctance_delta"`
	Warnings        []string                `json:"warnings"`
	Termination     *compliance.Termination `json:"termination,omitempty"`
}

type ReviewRequest struct {
	FlagID  string                `json:"flag_id"`
	Outcome operation.FlagOutcome `json:"outcome"`
}

type ReviewResponse struct {
	Flag            operation.CitizenFlag    `json:"flag"`
	ComplianceScore int                      `json:"compliance_score"`
	Status          operation.OperatorStatus `json:"status"`
}
