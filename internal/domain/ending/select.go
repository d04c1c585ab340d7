// Package ending selects the terminal narrative of a playthrough and renders
// it. Selection and rendering are separate so each can be tested alone.
package ending

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEnding = errors.New("unknown ending")

type Kind string

const (
	RevolutionaryCatalyst Kind = "revolutionary_catalyst"
	InternationalPariah   Kind = "international_pariah"
	ImprisonedDissent     Kind = "imprisoned_dissent"
	FiredEarly            Kind = "fired_early"
	SuspendedOperator     Kind = "suspended_operator"
	CompliantOperator     Kind = "compliant_operator"
	ReluctantSurvivor     Kind = "reluctant_survivor"
	ReluctantOperator     Kind = "reluctant_operator"
	ResistancePath        Kind = "resistance_path"
)

func Kinds() []Kind {
	return []Kind{
		RevolutionaryCatalyst,
		InternationalPariah,
		ImprisonedDissent,
		FiredEarly,
		SuspendedOperator,
		CompliantOperator,
		ReluctantSurvivor,
		ReluctantOperator,
		ResistancePath,
	}
}

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.TrimSpace(strings.ToLower(raw)))
	if _, ok := narratives[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnding, raw)
	}
	return k, nil
}

// State is everything selection depends on.
type State struct {
	Compliance             int  `json:"compliance"`
	Awareness              int  `json:"awareness"`
	Anger                  int  `json:"anger"`
	Reluctance             int  `json:"reluctance"`
	Week                   int  `json:"week"`
	TotalFlags             int  `json:"total_flags"`
	FlaggedScriptedCitizen bool `json:"flagged_scripted_citizen"`
}

// resistanceUnlocked has no trigger yet; the ending is content only.
func resistanceUnlocked(State) bool {
	return false
}

// Select walks the priority chain; the first match wins.
func Select(s State) Kind {
	switch {
	case resistanceUnlocked(s):
		return ResistancePath
	case s.Anger >= 90:
		return RevolutionaryCatalyst
	case s.Awareness >= 80:
		return InternationalPariah
	case s.Reluctance >= 80:
		return ImprisonedDissent
	case s.Compliance < 40 && s.Week <= 4:
		return FiredEarly
	case s.Compliance < 50:
		return SuspendedOperator
	case s.Compliance >= 80 && s.TotalFlags >= 10 && s.FlaggedScriptedCitizen:
		return CompliantOperator
	case s.Compliance >= 40 && s.Compliance < 60:
		return ReluctantSurvivor
	default:
		return ReluctantOperator
	}
}
