// Package eventgen decides which news, protest and book events fire, either
// in response to an action or on a directive tick.
package eventgen

import (
	"time"

	"watchfloor/internal/domain/news"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/opinion"
	"watchfloor/internal/domain/protest"
)

type ActionInput struct {
	Action        operation.Action
	Metrics       operation.PublicMetrics
	Channels      []operation.NewsChannel
	Neighborhoods []operation.Neighborhood
	CitizenHome   *operation.Point
	Subject       news.Subject
	Now           time.Time
}

type ActionEvents struct {
	Articles []operation.NewsArticle
	Protest  *operation.Protest
}

// ForAction rolls each non-banned channel independently, then one protest
// trigger.
func ForAction(in ActionInput, r operation.Rand) (ActionEvents, error) {
	var out ActionEvents
	for _, ch := range in.Channels {
		if ch.Banned {
			continue
		}
		p := opinion.NewsProbability(in.Action.Severity, in.Metrics.Awareness, ch.Stance)
		if operation.Roll(r, p) {
			out.Articles = append(out.Articles, news.TriggeredArticle(in.Action, ch, in.Subject, in.Now))
		}
	}

	if !operation.Roll(r, opinion.ProtestProbability(in.Action.Severity, in.Metrics.Anger)) {
		return out, nil
	}
	p, err := protest.Spawn(protest.SpawnInput{
		OperatorID:         in.Action.OperatorID,
		TriggerActionID:    in.Action.ID,
		Severity:           in.Action.Severity,
		Anger:              in.Metrics.Anger,
		TargetNeighborhood: in.Action.Targets.Neighborhood,
		CitizenHome:        in.CitizenHome,
		Neighborhoods:      in.Neighborhoods,
		Now:                in.Now,
	}, r)
	if err != nil {
		return ActionEvents{}, err
	}
	out.Protest = &p
	return out, nil
}

type TickInput struct {
	Week     int
	Channels []operation.NewsChannel
	Now      time.Time
}

type TickEvents struct {
	Article *operation.NewsArticle
	Book    *operation.BookPublication
}

func ForTick(in TickInput, r operation.Rand) TickEvents {
	var out TickEvents
	if operation.Roll(r, operation.BackgroundArticleChance) {
		if ch, ok := operation.Pick(r, backgroundEligible(in.Channels)); ok {
			a := news.BackgroundArticle(ch, r, in.Now)
			out.Article = &a
		}
	}
	if in.Week >= operation.BookEventFirstWeek && operation.Roll(r, operation.BookEventChance) {
		b := NewBook(in.Week, r, in.Now)
		out.Book = &b
	}
	return out
}

func backgroundEligible(channels []operation.NewsChannel) []operation.NewsChannel {
	out := make([]operation.NewsChannel, 0, len(channels))
	for _, ch := range channels {
		if ch.Banned || ch.Stance == operation.StanceStateFriendly {
			continue
		}
		out = append(out, ch)
	}
	return out
}
