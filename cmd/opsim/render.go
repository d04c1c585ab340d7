package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"watchfloor/internal/domain/ending"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/risk"
)

func renderReport(w io.Writer, r simulationReport) {
	fmt.Fprintf(w, "policy=%s seed=%d\n", r.Policy, r.Seed)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Week", "Flags", "Quota", "Actions", "Refusals", "Compliance", "Reluctance", "Awareness", "Anger", "Protests"})
	for _, wk := range r.Weeks {
		quota := "met"
		if !wk.QuotaMet {
			quota = "missed"
		}
		actions := strings.Join(wk.Actions, ", ")
		if actions == "" {
			actions = "-"
		}
		t.AppendRow(table.Row{wk.Week, wk.Flags, quota, actions, wk.NoActions, wk.Compliance, wk.Reluctance, wk.Awareness, wk.Anger, wk.Protests})
	}
	t.Render()
	if n := len(r.Weeks); n > 0 && r.Weeks[n-1].Terminated {
		fmt.Fprintf(w, "operator terminated: %s\n", r.Weeks[n-1].Termination)
	}
	fmt.Fprintln(w)
	renderNarrative(w, r.Ending.Narrative)
}

func renderNarrative(w io.Writer, n ending.Narrative) {
	fmt.Fprintf(w, "%s [%s]\n\n%s\n\n%s\n", n.Title, n.Kind, n.Summary, n.Epilogue)
	if len(n.Timeline) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"When", "Outcome"})
		for _, slot := range []operation.OutcomeSlot{
			operation.OutcomeImmediate,
			operation.OutcomeOneMonth,
			operation.OutcomeSixMonths,
			operation.OutcomeOneYear,
		} {
			if text, ok := n.Timeline[slot]; ok {
				t.AppendRow(table.Row{slot, text})
			}
		}
		t.Render()
	}
	if len(n.Dossier) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Parallel", "Period", "Note"})
		for _, p := range n.Dossier {
			t.AppendRow(table.Row{p.Name, p.Period, p.Note})
		}
		t.Render()
	}
}

func renderRisk(w io.Writer, c operation.Citizen, res risk.Result) {
	fmt.Fprintf(w, "%s (%s): score=%d level=%s\n", c.Name, c.ID, res.Score, res.Level)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Factor", "Points", "Evidence"})
	for _, f := range res.Factors {
		t.AppendRow(table.Row{f.Factor, f.Points, strings.Join(f.Evidence, "; ")})
	}
	t.Render()
	for _, a := range res.Alerts {
		fmt.Fprintf(w, "alert %s (+%d): %s\n", a.Name, a.Bonus, a.Message)
	}
}

func renderKinds(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Kind", "Label", "Category", "Severity", "Harsh"})
	for _, kind := range operation.ActionKinds() {
		severity, _ := operation.Severity(kind)
		category, _ := operation.CategoryOf(kind)
		t.AppendRow(table.Row{kind, kind.Label(), category, severity, operation.IsHarsh(severity)})
	}
	t.Render()
}
