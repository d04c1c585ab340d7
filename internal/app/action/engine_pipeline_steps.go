package action

import (
	"context"
	"fmt"
	"strings"

	"watchfloor/internal/app/shared/operatorstate"
	"watchfloor/internal/domain/compliance"
	"watchfloor/internal/domain/eventgen"
	"watchfloor/internal/domain/news"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/opinion"
)

func newActionContext(req Request) ActionContext {
	return ActionContext{
		In: ActionInput{Req: req},
		Tmp: ActionTmp{Result: Result{
			Kind:     req.Kind,
			Articles: []ArticleRef{},
			Protests: []ProtestRef{},
			Messages: []string{},
			Warnings: []string{},
		}},
	}
}

func (u UseCase) ValidateRequest(req Request) (ActionContext, error) {
	req.OperatorID = strings.TrimSpace(req.OperatorID)
	req.DirectiveID = strings.TrimSpace(req.DirectiveID)
	req.Targets = normalizeTargets(req.Targets)
	if req.OperatorID == "" || req.DecisionSeconds < 0 {
		return ActionContext{}, ErrInvalidRequest
	}
	kind, err := operation.ParseActionKind(string(req.Kind))
	if err != nil {
		return ActionContext{}, err
	}
	req.Kind = kind
	return newActionContext(req), nil
}

func (u UseCase) ValidateNoActionRequest(req NoActionRequest) (ActionContext, error) {
	req.OperatorID = strings.TrimSpace(req.OperatorID)
	if req.OperatorID == "" || req.DecisionSeconds < 0 {
		return ActionContext{}, ErrInvalidRequest
	}
	return newActionContext(Request{
		OperatorID:      req.OperatorID,
		DirectiveID:     strings.TrimSpace(req.DirectiveID),
		Justification:   req.Justification,
		DecisionSeconds: req.DecisionSeconds,
		WasHesitant:     req.WasHesitant,
		Targets:         operation.Targets{CitizenID: strings.TrimSpace(req.CitizenID)},
	}), nil
}

func normalizeTargets(in operation.Targets) operation.Targets {
	return operation.Targets{
		CitizenID:     strings.TrimSpace(in.CitizenID),
		Neighborhood:  strings.TrimSpace(in.Neighborhood),
		NewsChannelID: strings.TrimSpace(in.NewsChannelID),
		ProtestID:     strings.TrimSpace(in.ProtestID),
	}
}

func (u UseCase) LoadState(ctx context.Context, ac *ActionContext) error {
	op, err := operatorstate.Load(ctx, u.Operators, ac.In.Req.OperatorID)
	if err != nil {
		return err
	}
	ac.View.Operator = op

	if ac.View.Public, err = u.MetricsRepo.GetPublic(ctx); err != nil {
		return err
	}
	if ac.View.Reluctance, err = u.MetricsRepo.GetReluctance(ctx); err != nil {
		return err
	}
	return nil
}

func (u UseCase) ResolveSpec(ac *ActionContext) error {
	spec, ok := actionRegistry()[ac.In.Req.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", operation.ErrUnknownActionKind, ac.In.Req.Kind)
	}
	ac.View.Spec = spec
	return nil
}

func (u UseCase) RunPrechecks(ctx context.Context, ac *ActionContext) error {
	if ac.View.Operator.Terminated() {
		return unavailable("operator has been terminated")
	}
	var err error
	if ac.View.Neighborhoods, err = u.Neighborhoods.List(ctx); err != nil {
		return err
	}
	if ac.View.Channels, err = u.Channels.List(ctx); err != nil {
		return err
	}
	if ac.View.Spec.Handler == nil {
		return nil
	}
	return ac.View.Spec.Handler.Precheck(ctx, u, ac)
}

func (u UseCase) isHesitant(ac *ActionContext) bool {
	return ac.In.Req.WasHesitant || compliance.IsHesitant(ac.In.Req.DecisionSeconds)
}

// RollBacklash scores the action, rolls backlash and builds the record.
func (u UseCase) RollBacklash(ac *ActionContext) error {
	req := ac.In.Req
	severity, err := operation.Severity(req.Kind)
	if err != nil {
		return err
	}
	p := opinion.BacklashProbability(severity, ac.View.Public.Awareness, ac.View.Public.Anger)
	directiveID := req.DirectiveID
	if directiveID == "" {
		directiveID = ac.View.Operator.CurrentDirectiveID
	}
	ac.Plan.Action = operation.Action{
		ID:                  operation.NewID("action"),
		OperatorID:          req.OperatorID,
		DirectiveID:         directiveID,
		Kind:                req.Kind,
		Targets:             req.Targets,
		Severity:            severity,
		BacklashProbability: p,
		BacklashOccurred:    operation.Roll(u.Rand, p),
		Justification:       req.Justification,
		DecisionSeconds:     req.DecisionSeconds,
		WasHesitant:         u.isHesitant(ac),
		CreatedAt:           ac.In.NowAt,
	}
	return nil
}

func (u UseCase) ApplyKindEffects(ctx context.Context, ac *ActionContext) error {
	if ac.View.Spec.Handler == nil {
		return nil
	}
	return ac.View.Spec.Handler.Apply(ctx, u, ac)
}

// ApplyPublicMetrics runs the standard update, then the additive gamble deltas.
func (u UseCase) ApplyPublicMetrics(ac *ActionContext) {
	a := ac.Plan.Action
	engine := opinion.NewEngine(&ac.View.Public)
	change := engine.ApplyAction(a.Kind, a.Severity, a.BacklashOccurred)
	change.Merge(engine.ApplyDelta(ac.Tmp.ExtraAwareness, ac.Tmp.ExtraAnger))
	ac.Tmp.Opinion = change
	if a.BacklashOccurred {
		ac.message("Backlash: the action provoked a stronger public reaction than expected.")
	}
	u.tierMessages(ac, change.TierEvents)
}

func (u UseCase) tierMessages(ac *ActionContext, events []opinion.TierEvent) {
	for _, ev := range events {
		ac.message(fmt.Sprintf("Public %s reached tier %d: %s", ev.Axis, ev.Tier, ev.Description))
	}
}

func (u UseCase) applyArticle(ac *ActionContext, article operation.NewsArticle) {
	change := opinion.NewEngine(&ac.View.Public).ApplyDelta(article.AwarenessDelta, article.AngerDelta)
	ac.Tmp.Opinion.Merge(change)
	u.tierMessages(ac, change.TierEvents)
	ac.Plan.ArticlesToAdd = append(ac.Plan.ArticlesToAdd, article)
}

func (u UseCase) GenerateEvents(ctx context.Context, ac *ActionContext) error {
	channels := ac.View.Channels
	if ac.Plan.SaveChannel && ac.View.Channel != nil {
		channels = make([]operation.NewsChannel, len(ac.View.Channels))
		for i, ch := range ac.View.Channels {
			if ch.ID == ac.View.Channel.ID {
				ch = *ac.View.Channel
			}
			channels[i] = ch
		}
	}

	var home *operation.Point
	if ac.View.Citizen != nil {
		h := ac.View.Citizen.Home
		home = &h
	}
	events, err := eventgen.ForAction(eventgen.ActionInput{
		Action:        ac.Plan.Action,
		Metrics:       ac.View.Public,
		Channels:      channels,
		Neighborhoods: ac.View.Neighborhoods,
		CitizenHome:   home,
		Subject:       u.subject(ac),
		Now:           ac.In.NowAt,
	}, u.Rand)
	if err != nil {
		return err
	}

	for _, article := range events.Articles {
		u.applyArticle(ac, article)
		ac.Tmp.Result.Articles = append(ac.Tmp.Result.Articles, ArticleRef{
			ID:        article.ID,
			ChannelID: article.ChannelID,
			Headline:  article.Headline,
		})
		ac.message("News: " + article.Headline)
	}
	if events.Protest != nil {
		p := *events.Protest
		ac.Plan.ProtestsToAdd = append(ac.Plan.ProtestsToAdd, p)
		ac.Tmp.Result.Protests = append(ac.Tmp.Result.Protests, ProtestRef{
			ID:           p.ID,
			Neighborhood: p.Neighborhood,
			Size:         p.Size,
		})
		ac.message(fmt.Sprintf("A protest of about %d people is forming in %s.", p.Size, p.Neighborhood))
	}
	return nil
}

func (u UseCase) subject(ac *ActionContext) news.Subject {
	var s news.Subject
	s.Neighborhood = ac.Plan.Action.Targets.Neighborhood
	if s.Neighborhood == "" && ac.View.Protest != nil {
		s.Neighborhood = ac.View.Protest.Neighborhood
	}
	if c := ac.View.Citizen; c != nil {
		s.CitizenName = c.Name
		if s.Neighborhood == "" {
			if n, ok := operation.NeighborhoodAt(ac.View.Neighborhoods, c.Home); ok {
				s.Neighborhood = n.Name
			}
		}
	}
	return s
}

func (u UseCase) UpdateReluctance(ac *ActionContext, actionTaken bool) {
	severity := 0
	if actionTaken {
		severity = ac.Plan.Action.Severity
	}
	update := compliance.UpdateReluctance(&ac.View.Reluctance, compliance.Decision{
		ActionTaken: actionTaken,
		WasHesitant: u.isHesitant(ac),
		Severity:    severity,
	})
	ac.Tmp.Result.ReluctanceDelta = update.Delta
	if update.Warning != nil {
		ac.Tmp.Result.Warnings = append(ac.Tmp.Result.Warnings, update.Warning.Message)
	}
}

func (u UseCase) CheckTermination(ac *ActionContext) {
	t, ok := compliance.CheckTermination(ac.View.Reluctance.Score, ac.View.Operator.CurrentWeek)
	if !ok {
		return
	}
	compliance.Terminate(&ac.View.Operator, t)
	ac.Tmp.Result.Termination = &t
	ac.Tmp.Result.Warnings = append(ac.Tmp.Result.Warnings, t.Message)
	u.logger().Warn("operator terminated",
		"operator_id", ac.View.Operator.ID,
		"reason", t.Reason,
		"reluctance", ac.View.Reluctance.Score,
		"week", ac.View.Operator.CurrentWeek,
	)
}

func (u UseCase) LogOperatorDecision(ac *ActionContext) {
	op := &ac.View.Operator
	compliance.RecordDecision(op, ac.In.Req.DecisionSeconds, u.isHesitant(ac))
	change := compliance.Refresh(op, ac.View.Reluctance)
	if change.StatusChanged() && !op.Terminated() {
		ac.Tmp.Result.Warnings = append(ac.Tmp.Result.Warnings,
			fmt.Sprintf("Your status is now %s (compliance %d).", change.StatusAfter, change.ComplianceAfter))
	}
}

func (u UseCase) CheckExposure(ac *ActionContext) error {
	op := &ac.View.Operator
	stage := nextExposureStage(op.ExposureStage, ac.View.Public.Awareness, ac.View.Reluctance.Score)
	if stage == 0 {
		return nil
	}
	article, err := news.ExposureArticle(stage, exposureChannel(ac.View.Channels), ac.In.NowAt)
	if err != nil {
		return err
	}
	op.ExposureStage = stage
	u.applyArticle(ac, article)
	ac.Tmp.Result.Exposure = &ExposureEvent{Stage: stage, ArticleID: article.ID, Headline: article.Headline}
	ac.Tmp.Result.Warnings = append(ac.Tmp.Result.Warnings, "Exposure: "+article.Headline)
	return nil
}

// Persist writes the action record and every planned mutation. Nothing is
// written before this step, so a failure earlier in the pipeline leaves even
// a non-transactional store untouched.
func (u UseCase) Persist(ctx context.Context, ac *ActionContext) error {
	if err := u.Actions.Add(ctx, ac.Plan.Action); err != nil {
		return err
	}
	if err := u.MetricsRepo.SavePublic(ctx, ac.View.Public); err != nil {
		return err
	}
	if err := u.MetricsRepo.SaveReluctance(ctx, ac.View.Reluctance); err != nil {
		return err
	}
	if err := u.Operators.Save(ctx, ac.View.Operator); err != nil {
		return err
	}
	if ac.Plan.SaveCitizen && ac.View.Citizen != nil {
		if err := u.Citizens.Save(ctx, *ac.View.Citizen); err != nil {
			return err
		}
	}
	if ac.Plan.SaveChannel && ac.View.Channel != nil {
		if err := u.Channels.Update(ctx, *ac.View.Channel); err != nil {
			return err
		}
	}
	if ac.Plan.SaveProtest && ac.View.Protest != nil {
		if err := u.Protests.Update(ctx, *ac.View.Protest); err != nil {
			return err
		}
	}
	if ac.Plan.SaveBook && ac.View.Book != nil {
		if err := u.Books.Update(ctx, *ac.View.Book); err != nil {
			return err
		}
	}
	for _, p := range ac.Plan.ProtestsToAdd {
		if err := u.Protests.Add(ctx, p); err != nil {
			return err
		}
	}
	for _, a := range ac.Plan.ArticlesToAdd {
		if err := u.Articles.Add(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (u UseCase) BuildResult(ac *ActionContext) Result {
	out := ac.Tmp.Result
	a := ac.Plan.Action
	out.Success = true
	out.ActionID = a.ID
	out.Kind = a.Kind
	out.Severity = a.Severity
	out.BacklashProbability = a.BacklashProbability
	out.Backlash = a.BacklashOccurred
	out.AwarenessDelta = ac.Tmp.Opinion.AwarenessDelta
	out.AngerDelta = ac.Tmp.Opinion.AngerDelta
	out.TierEvents = ac.Tmp.Opinion.TierEvents
	return out
}
