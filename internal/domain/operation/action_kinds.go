package operation

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownActionKind = errors.New("unknown action kind")

type ActionKind string

const (
	ActionIncreasedMonitoring   ActionKind = "increased_monitoring"
	ActionBookBan               ActionKind = "book_ban"
	ActionTravelRestriction     ActionKind = "travel_restriction"
	ActionBankAccountFreeze     ActionKind = "bank_account_freeze"
	ActionPressureFiring        ActionKind = "pressure_firing"
	ActionCurfew                ActionKind = "curfew"
	ActionDeclareProtestIllegal ActionKind = "declare_protest_illegal"
	ActionPressBan              ActionKind = "press_ban"
	ActionArbitraryDetention    ActionKind = "arbitrary_detention"
	ActionICERaid               ActionKind = "ice_raid"
	ActionHospitalArrest        ActionKind = "hospital_arrest"
	ActionInciteViolence        ActionKind = "incite_violence"
)

type Category string

const (
	CategoryCitizen      Category = "citizen"
	CategoryNeighborhood Category = "neighborhood"
	CategoryPress        Category = "press"
	CategoryBook         Category = "book"
	CategoryProtest      Category = "protest"
	CategoryHospital     Category = "hospital"
)

type kindProfile struct {
	Severity int
	Category Category
	Label    string
}

var kindTable = map[ActionKind]kindProfile{
	ActionIncreasedMonitoring:   {Severity: 1, Category: CategoryCitizen, Label: "Increased Monitoring"},
	ActionBookBan:               {Severity: 2, Category: CategoryBook, Label: "Ban Book"},
	ActionTravelRestriction:     {Severity: 3, Category: CategoryCitizen, Label: "Travel Restriction"},
	ActionBankAccountFreeze:     {Severity: 4, Category: CategoryCitizen, Label: "Freeze Bank Account"},
	ActionPressureFiring:        {Severity: 4, Category: CategoryPress, Label: "Pressure Firing"},
	ActionCurfew:                {Severity: 5, Category: CategoryNeighborhood, Label: "Neighborhood Curfew"},
	ActionDeclareProtestIllegal: {Severity: 5, Category: CategoryProtest, Label: "Declare Protest Illegal"},
	ActionPressBan:              {Severity: 6, Category: CategoryPress, Label: "Press Ban"},
	ActionArbitraryDetention:    {Severity: 7, Category: CategoryCitizen, Label: "Arbitrary Detention"},
	ActionICERaid:               {Severity: 8, Category: CategoryNeighborhood, Label: "ICE Raid"},
	ActionHospitalArrest:        {Severity: 8, Category: CategoryHospital, Label: "Hospital Arrest"},
	ActionInciteViolence:        {Severity: 9, Category: CategoryProtest, Label: "Incite Violence"},
}

// ActionKinds lists every kind in ascending severity order.
func ActionKinds() []ActionKind {
	return []ActionKind{
		ActionIncreasedMonitoring,
		ActionBookBan,
		ActionTravelRestriction,
		ActionBankAccountFreeze,
		ActionPressureFiring,
		ActionCurfew,
		ActionDeclareProtestIllegal,
		ActionPressBan,
		ActionArbitraryDetention,
		ActionICERaid,
		ActionHospitalArrest,
		ActionInciteViolence,
	}
}

func ParseActionKind(raw string) (ActionKind, error) {
	kind := ActionKind(strings.TrimSpace(strings.ToLower(raw)))
	if _, ok := kindTable[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActionKind, raw)
	}
	return kind, nil
}

func (k ActionKind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

func (k ActionKind) Label() string {
	if p, ok := kindTable[k]; ok {
		return p.Label
	}
	return string(k)
}

func Severity(kind ActionKind) (int, error) {
	p, ok := kindTable[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActionKind, string(kind))
	}
	return p.Severity, nil
}

func CategoryOf(kind ActionKind) (Category, error) {
	p, ok := kindTable[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownActionKind, string(kind))
	}
	return p.Category, nil
}

func IsHarsh(severity int) bool {
	return severity >= HarshSeverityThreshold
}
