package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"watchfloor/internal/adapter/refdata"
	"watchfloor/internal/domain/ending"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/risk"
)

var rootCmd = &cobra.Command{
	Use:   "opsim",
	Short: "Offline tools for the watchfloor engine",
	Long: `opsim drives the watchfloor resolution engine without the HTTP server.
- simulate: play a seeded playthrough with a fixed operator policy and report each week.
- ending: select and render an ending from raw final metrics.
- score: run risk scoring over a scenario citizen.
- kinds: list the action kinds with severity and category.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("OPSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("scenario", "", "scenario yaml (embedded scenario when empty)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "log engine events to stderr")
	_ = viper.BindPFlag("scenario", rootCmd.PersistentFlags().Lookup("scenario"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func registerCommands() {
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(endingCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(kindsCmd())
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a seeded playthrough end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := refdata.LoadScenario(viper.GetString("scenario"))
			if err != nil {
				return err
			}
			policy, err := parsePolicy(viper.GetString("policy"))
			if err != nil {
				return err
			}
			report, err := runSimulation(cmd.Context(), simulationOptions{
				Scenario: scenario,
				Policy:   policy,
				Seed:     viper.GetUint64("seed"),
				Logger:   cliLogger(),
			})
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().Uint64("seed", 1, "random seed")
	cmd.Flags().String("policy", string(policyMixed), "operator policy: compliant, reluctant or mixed")
	_ = viper.BindPFlag("seed", cmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("policy", cmd.Flags().Lookup("policy"))
	return cmd
}

func endingCmd() *cobra.Command {
	var state ending.State
	cmd := &cobra.Command{
		Use:   "ending",
		Short: "Select and render an ending from final metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := ending.Select(state)
			narrative, err := ending.Render(kind, ending.Stats{
				ComplianceScore: state.Compliance,
				TotalFlags:      state.TotalFlags,
				Week:            state.Week,
			})
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), narrative)
			}
			renderNarrative(cmd.OutOrStdout(), narrative)
			return nil
		},
	}
	cmd.Flags().IntVar(&state.Compliance, "compliance", operation.BaselineCompliance, "final compliance score")
	cmd.Flags().IntVar(&state.Awareness, "awareness", 0, "final public awareness")
	cmd.Flags().IntVar(&state.Anger, "anger", 0, "final public anger")
	cmd.Flags().IntVar(&state.Reluctance, "reluctance", 0, "final reluctance score")
	cmd.Flags().IntVar(&state.Week, "week", 1, "final week")
	cmd.Flags().IntVar(&state.TotalFlags, "flags", 0, "total flags submitted")
	cmd.Flags().BoolVar(&state.FlaggedScriptedCitizen, "flagged-scripted", false, "scripted citizen was flagged")
	return cmd
}

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <citizen-id>",
		Short: "Risk-score a scenario citizen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := refdata.LoadScenario(viper.GetString("scenario"))
			if err != nil {
				return err
			}
			ref, err := refdata.LoadRisk()
			if err != nil {
				return err
			}
			var citizen *operation.Citizen
			for i := range scenario.Citizens {
				if scenario.Citizens[i].ID == args[0] {
					citizen = &scenario.Citizens[i]
				}
			}
			if citizen == nil {
				return fmt.Errorf("citizen %q not in scenario", args[0])
			}
			res, err := risk.Score(*citizen, ref)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(cmd.OutOrStdout(), res)
			}
			renderRisk(cmd.OutOrStdout(), *citizen, res)
			return nil
		},
	}
	return cmd
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List action kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderKinds(cmd.OutOrStdout())
			return nil
		},
	}
}

func cliLogger() *slog.Logger {
	if viper.GetBool("verbose") {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
