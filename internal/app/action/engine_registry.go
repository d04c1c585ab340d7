package action

import (
	"context"
	"time"

	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/opinion"
)

type ActionSpec struct {
	Kind     operation.ActionKind
	Category operation.Category
	Handler  ActionHandler
}

// ActionHandler owns the availability rule and the side effects of one kind.
type ActionHandler interface {
	Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error
	Apply(ctx context.Context, uc UseCase, ac *ActionContext) error
}

type BaseHandler struct{}

func (BaseHandler) Precheck(context.Context, UseCase, *ActionContext) error { return nil }
func (BaseHandler) Apply(context.Context, UseCase, *ActionContext) error    { return nil }

type ActionInput struct {
	Req   Request
	NowAt time.Time
}

type ActionView struct {
	Spec          ActionSpec
	Operator      operation.Operator
	Public        operation.PublicMetrics
	Reluctance    operation.ReluctanceMetrics
	Neighborhoods []operation.Neighborhood
	Channels      []operation.NewsChannel
	Citizen       *operation.Citizen
	Channel       *operation.NewsChannel
	Protest       *operation.Protest
	Book          *operation.BookPublication
}

type ActionWritePlan struct {
	Action        operation.Action
	SaveCitizen   bool
	SaveChannel   bool
	SaveProtest   bool
	SaveBook      bool
	ProtestsToAdd []operation.Protest
	ArticlesToAdd []operation.NewsArticle
}

type ActionTmp struct {
	// ExtraAwareness and ExtraAnger come from suppression gambles and are
	// applied on top of the standard update.
	ExtraAwareness int
	ExtraAnger     int
	Opinion        opinion.Change
	Result         Result
}

type ActionContext struct {
	In   ActionInput
	View ActionView
	Plan ActionWritePlan
	Tmp  ActionTmp
}

func (ac *ActionContext) addExtra(awareness, anger int) {
	ac.Tmp.ExtraAwareness += awareness
	ac.Tmp.ExtraAnger += anger
}

func (ac *ActionContext) message(msg string) {
	ac.Tmp.Result.Messages = append(ac.Tmp.Result.Messages, msg)
}

func actionRegistry() map[operation.ActionKind]ActionSpec {
	specs := map[operation.ActionKind]ActionHandler{
		operation.ActionIncreasedMonitoring:   citizenActionHandler{},
		operation.ActionTravelRestriction:     citizenActionHandler{},
		operation.ActionBankAccountFreeze:     citizenActionHandler{},
		operation.ActionArbitraryDetention:    detentionActionHandler{},
		operation.ActionHospitalArrest:        hospitalArrestActionHandler{},
		operation.ActionCurfew:                neighborhoodActionHandler{},
		operation.ActionICERaid:               neighborhoodActionHandler{},
		operation.ActionPressBan:              pressActionHandler{},
		operation.ActionPressureFiring:        pressActionHandler{},
		operation.ActionDeclareProtestIllegal: declareIllegalActionHandler{},
		operation.ActionInciteViolence:        inciteViolenceActionHandler{},
		operation.ActionBookBan:               bookBanActionHandler{},
	}
	out := make(map[operation.ActionKind]ActionSpec, len(specs))
	for kind, h := range specs {
		category, _ := operation.CategoryOf(kind)
		out[kind] = ActionSpec{Kind: kind, Category: category, Handler: h}
	}
	return out
}

func supportedActionKinds() []operation.ActionKind {
	return operation.ActionKinds()
}
