package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"watchfloor/internal/adapter/refdata"
	"watchfloor/internal/config"
)

func TestMustBuildRepos_FallsBackToMemory(t *testing.T) {
	scenario, err := refdata.LoadScenario("")
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos := mustBuildRepos(logger, config.Default(), scenario)
	op, err := repos.Operators.Get(context.Background())
	if err != nil {
		t.Fatalf("get operator: %v", err)
	}
	if op.ID != scenario.OperatorID || op.CurrentWeek != 1 {
		t.Fatalf("unexpected operator %+v", op)
	}
	channels, err := repos.Channels.List(context.Background())
	if err != nil || len(channels) != len(scenario.Channels) {
		t.Fatalf("expected %d channels, got %d err=%v", len(scenario.Channels), len(channels), err)
	}
}
