package tick

import (
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/opinion"
)

type Request struct {
	OperatorID string `json:"operator_id"`
}

type ProtestUpdate struct {
	ID           string                  `json:"id"`
	Neighborhood string                  `json:"neighborhood"`
	From         operation.ProtestStatus `json:"from"`
	To           operation.ProtestStatus `json:"to"`
	OldSize      int                     `json:"old_size"`
	NewSize      int                     `json:"new_size"`
}

type Response struct {
	Week            int                        `json:"week"`
	Directive       *operation.Directive       `json:"directive,omitempty"`
	Completed       bool                       `json:"completed"`
	MissedQuota     bool                       `json:"missed_quota"`
	Shortfall       int                        `json:"shortfall"`
	ReluctanceDelta int                        `json:"reluctance_delta"`
	ComplianceScore int                        `json:"compliance_score"`
	Status          operation.OperatorStatus   `json:"status"`
	Protests        []ProtestUpdate            `json:"protests"`
	Article         *operation.NewsArticle     `json:"article,omitempty"`
	Book            *operation.BookPublication `json:"book,omitempty"`
	BooksIgnored    []string                   `json:"books_ignored,omitempty"`
	TierEvents      []opinion.TierEvent        `json:"tier_events,omitempty"`
	Warnings        []string                   `json:"warnings"`
	Termination     *compliance.Termination    `json:"termination,omitempty"`
}
