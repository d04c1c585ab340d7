package bootstrap

import (
	"context"
	"testing"
	"time"

	"watchfloor/internal/adapter/refdata"
	"watchfloor/internal/adapter/repo/memory"
	"watchfloor/internal/app/action"
	"watchfloor/internal/app/ending"
	"watchfloor/internal/app/flag"
	"watchfloor/internal/app/status"
	"watchfloor/internal/app/tick"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/operation/optest"
)

func newServices(t *testing.T) (Services, operation.Scenario) {
	t.Helper()
	sc, err := refdata.LoadScenario("")
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	ref, err := refdata.NewProvider()
	if err != nil {
		t.Fatalf("load risk: %v", err)
	}
	store := memory.NewStore()
	if err := store.Seed(sc); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := Build(MemoryRepos(store), Deps{
		Rand:              optest.Always(0.99),
		Reference:         ref,
		ScriptedCitizenID: sc.ScriptedCitizenID,
		Now:               func() time.Time { return time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC) },
	})
	return svc, sc
}

func TestBuild_PlaythroughAcrossUseCases(t *testing.T) {
	svc, sc := newServices(t)
	ctx := context.Background()

	sub, err := svc.Flag.Submit(ctx, flag.SubmitRequest{
		OperatorID:      sc.OperatorID,
		CitizenID:       sc.ScriptedCitizenID,
		Justification:   "protest organizer",
		DecisionSeconds: 3,
	})
	if err != nil {
		t.Fatalf("flag: %v", err)
	}
	if sub.Risk.Score == 0 || sub.QuotaCompleted != 1 {
		t.Fatalf("unexpected flag response %+v", sub)
	}

	res, err := svc.Action.Execute(ctx, action.Request{
		OperatorID:      sc.OperatorID,
		Kind:            operation.ActionIncreasedMonitoring,
		DecisionSeconds: 4,
		Targets:         operation.Targets{CitizenID: sc.ScriptedCitizenID},
	})
	if err != nil {
		t.Fatalf("action: %v", err)
	}
	if !res.Success || res.Backlash {
		t.Fatalf("unexpected action result %+v", res)
	}

	adv, err := svc.Tick.Advance(ctx, tick.Request{OperatorID: sc.OperatorID})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if adv.Week != 2 || adv.Directive == nil || adv.Directive.ID != "directive-2" {
		t.Fatalf("unexpected advance %+v", adv)
	}

	st, err := svc.Status.Execute(ctx, status.Request{OperatorID: sc.OperatorID})
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Operator.CurrentWeek != 2 || st.Operator.FlagsSubmitted != 1 {
		t.Fatalf("unexpected status %+v", st.Operator)
	}

	end, err := svc.Ending.Execute(ctx, ending.Request{OperatorID: sc.OperatorID})
	if err != nil {
		t.Fatalf("ending: %v", err)
	}
	if end.Narrative.Kind == "" || !end.State.FlaggedScriptedCitizen {
		t.Fatalf("unexpected ending %+v", end.State)
	}

	kpi := svc.KPI.Snapshot()
	if kpi.ActionExecuted != 1 {
		t.Fatalf("expected one executed action in kpi, got %+v", kpi)
	}
}
