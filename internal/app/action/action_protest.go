package action

import (
	"context"

	"watchfloor/internal/domain/protest"
)

func loadOpenProtest(ctx context.Context, uc UseCase, ac *ActionContext) error {
	p, err := loadTarget(ctx, ac.In.Req.Targets.ProtestID, "protest", uc.Protests.GetByID)
	if err != nil {
		return err
	}
	if p.Status.Terminal() {
		return unavailable("protest %s is already %s", p.ID, p.Status)
	}
	ac.View.Protest = p
	return nil
}

type declareIllegalActionHandler struct{ BaseHandler }

func (h declareIllegalActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	return loadOpenProtest(ctx, uc, ac)
}

func (h declareIllegalActionHandler) Apply(_ context.Context, uc UseCase, ac *ActionContext) error {
	outcome, err := protest.SuppressLegally(ac.View.Protest, uc.Rand, ac.In.NowAt)
	if err != nil {
		return err
	}
	ac.Plan.SaveProtest = true
	applyGamble(ac, outcome.Deltas, outcome.Narrative())
	return nil
}

type inciteViolenceActionHandler struct{ BaseHandler }

func (h inciteViolenceActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	if err := loadOpenProtest(ctx, uc, ac); err != nil {
		return err
	}
	if !ac.View.Protest.HasIncitingAgent {
		return unavailable("no agent is embedded in protest %s", ac.View.Protest.ID)
	}
	return nil
}

func (h inciteViolenceActionHandler) Apply(_ context.Context, uc UseCase, ac *ActionContext) error {
	outcome, err := protest.SuppressViolently(ac.View.Protest, uc.Rand, ac.In.NowAt)
	if err != nil {
		return err
	}
	ac.Plan.SaveProtest = true
	applyGamble(ac, outcome.Deltas, outcome.Narrative())
	if _, ok := outcome.(protest.Catastrophe); ok {
		ac.Tmp.Result.Warnings = append(ac.Tmp.Result.Warnings, "The embedded agent was exposed.")
	}
	return nil
}
