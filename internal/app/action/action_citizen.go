package action

import (
	"context"
	"fmt"

	"watchfloor/internal/domain/operation"
)

type citizenActionHandler struct{ BaseHandler }

func (h citizenActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	return loadCitizen(ctx, uc, ac)
}

type detentionActionHandler struct{ BaseHandler }

func (h detentionActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	if err := loadCitizen(ctx, uc, ac); err != nil {
		return err
	}
	if ac.View.Citizen.Detained {
		return unavailable("citizen %s is already detained", ac.View.Citizen.ID)
	}
	return nil
}

// Apply detains the citizen and rolls for an injury in custody. An injured
// citizen is hospitalized, which makes hospital_arrest available.
func (h detentionActionHandler) Apply(_ context.Context, uc UseCase, ac *ActionContext) error {
	c := ac.View.Citizen
	c.Detained = true
	chance := operation.FloatBetween(uc.Rand, operation.DetentionInjuryChanceMin, operation.DetentionInjuryChanceMax)
	if operation.Roll(uc.Rand, chance) {
		c.Hospitalized = true
		ac.Tmp.Result.DetentionInjury = true
		ac.message(fmt.Sprintf("%s was injured in custody and has been hospitalized.", c.Name))
	} else {
		ac.message(fmt.Sprintf("%s has been detained.", c.Name))
	}
	ac.Plan.SaveCitizen = true
	return nil
}

type hospitalArrestActionHandler struct{ BaseHandler }

func (h hospitalArrestActionHandler) Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error {
	if err := loadCitizen(ctx, uc, ac); err != nil {
		return err
	}
	if !ac.View.Citizen.Hospitalized {
		return unavailable("citizen %s is not hospitalized", ac.View.Citizen.ID)
	}
	return nil
}

func (h hospitalArrestActionHandler) Apply(_ context.Context, _ UseCase, ac *ActionContext) error {
	c := ac.View.Citizen
	c.Hospitalized = false
	c.Detained = true
	ac.Plan.SaveCitizen = true
	ac.message(fmt.Sprintf("%s was taken from hospital into custody.", c.Name))
	return nil
}
