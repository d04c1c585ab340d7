package action

import (
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/opinion"
)

type Request struct {
	OperatorID      string               `json:"operator_id"`
	DirectiveID     string               `json:"directive_id,omitempty"`
	Kind            operation.ActionKind `json:"kind"`
	Justification   string               `json:"justification"`
	DecisionSeconds float64              `json:"decision_seconds"`
	WasHesitant     bool                 `json:"was_hesitant"`
	Targets         operation.Targets    `json:"targets"`
}

type NoActionRequest struct {
	OperatorID      string  `json:"operator_id"`
	DirectiveID     string  `json:"directive_id,omitempty"`
	CitizenID       string  `json:"citizen_id,omitempty"`
	Justification   string  `json:"justification,omitempty"`
	DecisionSeconds float64 `json:"decision_seconds"`
	WasHesitant     bool    `json:"was_hesitant"`
}

type ArticleRef struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Headline  string `json:"headline"`
}

type ProtestRef struct {
	ID           string `json:"id"`
	Neighborhood string `json:"neighborhood"`
	Size         int    `json:"size"`
}

type ExposureEvent struct {
	Stage     int    `json:"stage"`
	ArticleID string `json:"article_id"`
	Headline  string `json:"headline"`
}

type Result struct {
	Success             bool                    `json:"success"`
	Reason              string                  `json:"reason,omitempty"`
	ActionID            string                  `json:"action_id,omitempty"`
	Kind                operation.ActionKind    `json:"kind,omitempty"`
	Severity            int                     `json:"severity"`
	BacklashProbability float64                 `json:"backlash_probability"`
	Backlash            bool                    `json:"backlash"`
	AwarenessDelta      int                     `json:"awareness_delta"`
	AngerDelta          int                     `json:"anger_delta"`
	ReluctanceDelta     int                     `json:"reluctance_delta"`
	TierEvents          []opinion.TierEvent     `json:"tier_events,omitempty"`
	Articles            []ArticleRef            `json:"articles"`
	Protests            []ProtestRef            `json:"protests"`
	Exposure            *ExposureEvent          `json:"exposure,omitempty"`
	DetentionInjury     bool                    `json:"detention_injury"`
	Termination         *compliance.Termination `json:"termination,omitempty"`
	Messages            []string                `json:"messages"`
	Warnings            []string                `json:"warnings"`
}

func unavailableResult(kind operation.ActionKind, reason string) Result {
	return Result{
		Success:  false,
		Reason:   reason,
		Kind:     kind,
		Articles: []ArticleRef{},
		Protests: []ProtestRef{},
		Messages: []string{"Action not available: " + reason},
		Warnings: []string{},
	}
}
