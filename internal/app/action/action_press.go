package action

import (
	"context"
	"errors"

	"watchfloor/internal/domain/news"
)

type pressActionHandler struct{ BaseHandler }

func (h pressActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	ch, err := loadTarget(ctx, ac.In.Req.Targets.NewsChannelID, "news channel", uc.Channels.GetByID)
	if err != nil {
		return err
	}
	ac.View.Channel = ch
	switch err := news.CheckSuppressible(*ch, ac.In.Req.Kind); {
	case errors.Is(err, news.ErrChannelBanned):
		return unavailable("%s is already banned", ch.Name)
	case errors.Is(err, news.ErrNoActiveReporter):
		return unavailable("%s has no reporters left to fire", ch.Name)
	default:
		return err
	}
}

func (h pressActionHandler) Apply(_ context.Context, uc UseCase, ac *ActionContext) error {
	outcome, err := news.SuppressChannel(ac.View.Channel, ac.In.Req.Kind, uc.Rand)
	if err != nil {
		return err
	}
	ac.Plan.SaveChannel = true
	applyGamble(ac, outcome.Deltas, outcome.Narrative())
	if _, ok := outcome.(news.Streisand); ok {
		ac.Tmp.Result.Warnings = append(ac.Tmp.Result.Warnings, "Suppression backfired: the story is spreading.")
	}
	return nil
}
