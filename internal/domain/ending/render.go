package ending

import (
	"fmt"
	"strconv"
	"strings"

	"watchfloor/internal/domain/operation"
)

type Stats struct {
	ComplianceScore   int `json:"compliance_score"`
	TotalFlags        int `json:"total_flags"`
	FlagsRejected     int `json:"flags_rejected"`
	Refusals          int `json:"refusals"`
	FamiliesSeparated int `json:"families_separated"`
	Detentions        int `json:"detentions"`
	Week              int `json:"week"`
}

// CitizensSaved estimates how many people the operator spared.
func (s Stats) CitizensSaved() int {
	return max(0, s.Refusals+s.FlagsRejected)
}

type Parallel struct {
	Name   string `json:"name"`
	Period string `json:"period"`
	Note   string `json:"note"`
}

type Narrative struct {
	Kind     Kind                             `json:"kind"`
	Title    string                           `json:"title"`
	Summary  string                           `json:"summary"`
	Epilogue string                           `json:"epilogue"`
	Timeline map[operation.OutcomeSlot]string `json:"timeline"`
	Dossier  []Parallel                       `json:"dossier"`
	Stats    Stats                            `json:"stats"`
}

// Render substitutes stats into the narrative template for kind.
func Render(kind Kind, stats Stats) (Narrative, error) {
	tpl, ok := narratives[kind]
	if !ok {
		return Narrative{}, fmt.Errorf("%w: %q", ErrUnknownEnding, kind)
	}
	r := strings.NewReplacer(
		"{compliance}", strconv.Itoa(stats.ComplianceScore),
		"{flags}", strconv.Itoa(stats.TotalFlags),
		"{families}", strconv.Itoa(stats.FamiliesSeparated),
		"{detentions}", strconv.Itoa(stats.Detentions),
		"{saved}", strconv.Itoa(stats.CitizensSaved()),
		"{week}", strconv.Itoa(stats.Week),
	)
	out := Narrative{
		Kind:     kind,
		Title:    tpl.Title,
		Summary:  r.Replace(tpl.Summary),
		Epilogue: r.Replace(tpl.Epilogue),
		Timeline: make(map[operation.OutcomeSlot]string, len(tpl.Timeline)),
		Dossier:  append([]Parallel(nil), dossiers[kind]...),
		Stats:    stats,
	}
	for slot, text := range tpl.Timeline {
		out.Timeline[slot] = r.Replace(text)
	}
	return out, nil
}
