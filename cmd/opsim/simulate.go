package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"watchfloor/internal/adapter/random"
	"watchfloor/internal/adapter/refdata"
	"watchfloor/internal/adapter/repo/memory"
	"watchfloor/internal/app/action"
	"watchfloor/internal/app/ending"
	"watchfloor/internal/app/flag"
	"watchfloor/internal/app/status"
	"watchfloor/internal/app/tick"
	"watchfloor/internal/bootstrap"
	"watchfloor/internal/domain/operation"
)

type policy string

const (
	policyCompliant policy = "compliant"
	policyReluctant policy = "reluctant"
	policyMixed     policy = "mixed"
)

func parsePolicy(raw string) (policy, error) {
	switch p := policy(raw); p {
	case policyCompliant, policyReluctant, policyMixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy %q", raw)
	}
}

// escalation is the order a compliant operator works through the action
// catalogue, one kind per week.
var escalation = []operation.ActionKind{
	operation.ActionIncreasedMonitoring,
	operation.ActionTravelRestriction,
	operation.ActionCurfew,
	operation.ActionPressBan,
	operation.ActionArbitraryDetention,
	operation.ActionBookBan,
}

type simulationOptions struct {
	Scenario operation.Scenario
	Policy   policy
	Seed     uint64
	Logger   *slog.Logger
	// MaxWeeks bounds the loop when a scenario never completes.
	MaxWeeks int
}

type weekReport struct {
	Week        int      `json:"week"`
	Flags       int      `json:"flags"`
	QuotaMet    bool     `json:"quota_met"`
	Actions     []string `json:"actions"`
	NoActions   int      `json:"no_actions"`
	Compliance  int      `json:"compliance"`
	Reluctance  int      `json:"reluctance"`
	Awareness   int      `json:"awareness"`
	Anger       int      `json:"anger"`
	Protests    int      `json:"open_protests"`
	Terminated  bool     `json:"terminated"`
	Termination string   `json:"termination,omitempty"`
}

type simulationReport struct {
	Seed   uint64          `json:"seed"`
	Policy policy          `json:"policy"`
	Weeks  []weekReport    `json:"weeks"`
	Ending ending.Response `json:"ending"`
}

func runSimulation(ctx context.Context, opts simulationOptions) (simulationReport, error) {
	if opts.MaxWeeks <= 0 {
		opts.MaxWeeks = opts.Scenario.LastWeek() + 1
	}
	ref, err := refdata.NewProvider()
	if err != nil {
		return simulationReport{}, err
	}
	store := memory.NewStore()
	if err := store.Seed(opts.Scenario); err != nil {
		return simulationReport{}, err
	}
	src := random.NewSource(opts.Seed)
	clock := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	svc := bootstrap.Build(bootstrap.MemoryRepos(store), bootstrap.Deps{
		Rand:              src,
		Reference:         ref,
		ScriptedCitizenID: opts.Scenario.ScriptedCitizenID,
		Logger:            opts.Logger,
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
	})

	report := simulationReport{Seed: src.Seed(), Policy: opts.Policy}
	sim := simulator{svc: svc, sc: opts.Scenario, policy: opts.Policy}
	for i := 0; i < opts.MaxWeeks; i++ {
		wk, done, err := sim.playWeek(ctx)
		if err != nil {
			return simulationReport{}, fmt.Errorf("week %d: %w", wk.Week, err)
		}
		report.Weeks = append(report.Weeks, wk)
		if done {
			break
		}
	}

	end, err := svc.Ending.Execute(ctx, ending.Request{OperatorID: opts.Scenario.OperatorID})
	if err != nil {
		return simulationReport{}, fmt.Errorf("ending: %w", err)
	}
	report.Ending = end
	return report, nil
}

type simulator struct {
	svc    bootstrap.Services
	sc     operation.Scenario
	policy policy
	next   int
}

// cooperative reports whether the operator follows orders in the given week.
// The mixed policy complies for the first half of the scenario only.
func (s *simulator) cooperative(week int) bool {
	switch s.policy {
	case policyCompliant:
		return true
	case policyMixed:
		return week <= (s.sc.LastWeek()+1)/2
	default:
		return false
	}
}

func (s *simulator) playWeek(ctx context.Context) (weekReport, bool, error) {
	opID := s.sc.OperatorID
	st, err := s.svc.Status.Execute(ctx, status.Request{OperatorID: opID})
	if err != nil {
		return weekReport{}, true, err
	}
	wk := weekReport{Week: st.Operator.CurrentWeek, Actions: []string{}}

	if s.cooperative(wk.Week) {
		for n := st.Reluctance.Shortfall(); n > 0; n-- {
			sub, err := s.svc.Flag.Submit(ctx, flag.SubmitRequest{
				OperatorID:      opID,
				CitizenID:       s.nextCitizen(),
				Justification:   "pattern of concern",
				DecisionSeconds: 4,
			})
			if err != nil {
				return wk, true, err
			}
			wk.Flags++
			if sub.Termination != nil {
				break
			}
		}
		res, err := s.svc.Action.Execute(ctx, s.actionFor(wk.Week, st))
		if err != nil {
			return wk, true, err
		}
		label := string(res.Kind)
		if !res.Success {
			label += " (unavailable)"
		}
		wk.Actions = append(wk.Actions, label)
	} else {
		for i := 0; i < 2; i++ {
			res, err := s.svc.Action.SubmitNoAction(ctx, action.NoActionRequest{
				OperatorID:      opID,
				CitizenID:       s.nextCitizen(),
				Justification:   "insufficient evidence",
				DecisionSeconds: 45,
			})
			if err != nil {
				return wk, true, err
			}
			if res.Success {
				wk.NoActions++
			}
		}
	}

	st, err = s.svc.Status.Execute(ctx, status.Request{OperatorID: opID})
	if err != nil {
		return wk, true, err
	}
	wk.QuotaMet = st.Reluctance.Shortfall() == 0
	if st.Operator.Terminated() {
		s.fill(&wk, st)
		return wk, true, nil
	}

	adv, err := s.svc.Tick.Advance(ctx, tick.Request{OperatorID: opID})
	if err != nil {
		return wk, true, err
	}
	st, err = s.svc.Status.Execute(ctx, status.Request{OperatorID: opID})
	if err != nil {
		return wk, true, err
	}
	s.fill(&wk, st)
	return wk, adv.Completed || st.Operator.Terminated(), nil
}

func (s *simulator) fill(wk *weekReport, st status.Response) {
	wk.Compliance = st.Operator.ComplianceScore
	wk.Reluctance = st.Reluctance.Score
	wk.Awareness = st.Public.Awareness
	wk.Anger = st.Public.Anger
	wk.Protests = len(st.OpenProtests)
	wk.Terminated = st.Operator.Terminated()
	wk.Termination = st.Operator.TerminationReason
}

func (s *simulator) nextCitizen() string {
	if len(s.sc.Citizens) == 0 {
		return s.sc.ScriptedCitizenID
	}
	id := s.sc.Citizens[s.next%len(s.sc.Citizens)].ID
	s.next++
	return id
}

func (s *simulator) actionFor(week int, st status.Response) action.Request {
	kind := escalation[(week-1+len(escalation))%len(escalation)]
	req := action.Request{
		OperatorID:      s.sc.OperatorID,
		Kind:            kind,
		Justification:   "directive compliance",
		DecisionSeconds: 6,
	}
	category, _ := operation.CategoryOf(kind)
	switch category {
	case operation.CategoryNeighborhood:
		req.Targets.Neighborhood = s.sc.Neighborhoods[(week-1)%len(s.sc.Neighborhoods)].Name
	case operation.CategoryPress:
		for _, ch := range s.sc.Channels {
			if ch.Stance == operation.StanceCritical {
				req.Targets.NewsChannelID = ch.ID
				break
			}
		}
	case operation.CategoryProtest:
		if len(st.OpenProtests) > 0 {
			req.Targets.ProtestID = st.OpenProtests[0].ID
		}
	case operation.CategoryCitizen:
		req.Targets.CitizenID = s.nextCitizen()
	}
	return req
}
