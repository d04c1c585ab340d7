// Package news generates articles per outlet stance and resolves press
// suppression gambles.
package news

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"watchfloor/internal/domain/operation"
)

var ErrUnknownExposureStage = errors.New("unknown exposure stage")

// Subject carries the names substituted into headline templates.
type Subject struct {
	Neighborhood string
	CitizenName  string
}

func (s Subject) replacer(kind operation.ActionKind) *strings.Replacer {
	hood := s.Neighborhood
	if hood == "" {
		hood = "the city"
	}
	citizen := s.CitizenName
	if citizen == "" {
		citizen = "a local resident"
	}
	return strings.NewReplacer(
		"{neighborhood}", hood,
		"{citizen}", citizen,
		"{action}", strings.ToLower(kind.Label()),
	)
}

type stanceAdjust struct {
	Anger     int
	Awareness int
}

var triggeredAdjust = map[operation.Stance]stanceAdjust{
	operation.StanceCritical:      {Anger: 3, Awareness: 2},
	operation.StanceIndependent:   {Anger: 1, Awareness: 1},
	operation.StanceStateFriendly: {Anger: -2, Awareness: -2},
}

// TriggeredDeltas returns the anger and awareness impact of an article
// covering an action of the given severity.
func TriggeredDeltas(severity int, stance operation.Stance) (anger, awareness int) {
	base := severity / 2
	adj := triggeredAdjust[stance]
	return max(0, base+adj.Anger), max(0, base+adj.Awareness)
}

func TriggeredArticle(action operation.Action, channel operation.NewsChannel, subject Subject, now time.Time) operation.NewsArticle {
	tpl, ok := triggeredTemplates[templateKey{Kind: action.Kind, Stance: channel.Stance}]
	if !ok {
		tpl, ok = genericTemplates[channel.Stance]
		if !ok {
			tpl = genericTemplates[operation.StanceIndependent]
		}
	}
	r := subject.replacer(action.Kind)
	anger, awareness := TriggeredDeltas(action.Severity, channel.Stance)
	return operation.NewsArticle{
		ID:              operation.NewID("article"),
		ChannelID:       channel.ID,
		Type:            operation.ArticleTriggered,
		Headline:        r.Replace(tpl.Headline),
		Summary:         r.Replace(tpl.Summary),
		TriggerActionID: action.ID,
		AngerDelta:      anger,
		AwarenessDelta:  awareness,
		CreatedAt:       now,
	}
}

// BackgroundArticle is low-impact coverage not tied to any action.
func BackgroundArticle(channel operation.NewsChannel, r operation.Rand, now time.Time) operation.NewsArticle {
	pool := backgroundTemplates[channel.Stance]
	if len(pool) == 0 {
		pool = backgroundTemplates[operation.StanceIndependent]
	}
	tpl, _ := operation.Pick(r, pool)
	impact := 1
	if channel.Stance == operation.StanceCritical {
		impact = 2
	}
	return operation.NewsArticle{
		ID:             operation.NewID("article"),
		ChannelID:      channel.ID,
		Type:           operation.ArticleRandom,
		Headline:       tpl.Headline,
		Summary:        tpl.Summary,
		AngerDelta:     impact,
		AwarenessDelta: impact,
		CreatedAt:      now,
	}
}

// ExposureArticle reports the operator's own exposure; stage is 1..3.
func ExposureArticle(stage int, channel operation.NewsChannel, now time.Time) (operation.NewsArticle, error) {
	s, ok := exposureStages[stage]
	if !ok {
		return operation.NewsArticle{}, fmt.Errorf("%w: %d", ErrUnknownExposureStage, stage)
	}
	return operation.NewsArticle{
		ID:             operation.NewID("article"),
		ChannelID:      channel.ID,
		Type:           operation.ArticleExposure,
		Headline:       s.Headline,
		Summary:        s.Summary,
		AngerDelta:     s.AngerDelta,
		AwarenessDelta: s.AwarenessDelta,
		CreatedAt:      now,
	}, nil
}

func ExposureStageCount() int {
	return len(exposureStages)
}
