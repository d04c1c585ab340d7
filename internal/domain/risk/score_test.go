package risk

import (
	"errors"
	"testing"

	"watchfloor/internal/domain/operation"
)

func testReference() ReferenceData {
	return ReferenceData{
		Weights: map[string]int{
			FactorMentalHealth:        15,
			FactorSubstance:           10,
			FactorFinancialDistress:   10,
			FactorFlaggedTransactions: 15,
			FactorCriminalRecord:      20,
			FactorProtestAttendance:   25,
			FactorDissentSpeech:       20,
		},
		Keywords: Keywords{
			MentalHealth:     []string{"depression", "anxiety"},
			Substance:        []string{"methadone"},
			ProtestLocations: []string{"Liberty Square"},
			DissentTerms:     []string{"strike"},
		},
		Alerts: []CorrelationAlert{
			{Name: "organizer", Factors: []string{FactorProtestAttendance, FactorDissentSpeech}, Bonus: 15},
		},
	}
}

func TestScore_CleanCitizen(t *testing.T) {
	res, err := Score(operation.Citizen{ID: "c-1"}, testReference())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Score != 0 || res.Level != LevelLow || len(res.Factors) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestScore_FactorsAndAlert(t *testing.T) {
	c := operation.Citizen{
		ID: "c-2",
		Records: operation.CitizenRecords{
			HealthConditions: []string{"Generalized Anxiety Disorder"},
			LocationVisits:   []string{"Liberty Square (evening)"},
			SocialPosts:      []string{"General STRIKE on Friday"},
		},
	}
	res, err := Score(c, testReference())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	// 15 + 25 + 20 + 15 alert
	if res.Score != 75 || res.Level != LevelHigh {
		t.Fatalf("expected 75/high, got %+v", res)
	}
	if len(res.Alerts) != 1 || res.Alerts[0].Name != "organizer" {
		t.Fatalf("expected organizer alert, got %+v", res.Alerts)
	}
	if res.Factors[0].Factor != FactorProtestAttendance {
		t.Fatalf("expected factors sorted by points, got %+v", res.Factors)
	}
}

func TestScore_ClampedAndDistress(t *testing.T) {
	c := operation.Citizen{
		Records: operation.CitizenRecords{
			HealthConditions:    []string{"depression"},
			Prescriptions:       []string{"methadone"},
			DebtRatio:           0.9,
			FlaggedTransactions: 2,
			CriminalRecords:     1,
			LocationVisits:      []string{"liberty square"},
			SocialPosts:         []string{"strike"},
		},
	}
	res, err := Score(c, testReference())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Score != 100 || res.Level != LevelCritical {
		t.Fatalf("expected clamp to 100, got %+v", res)
	}
}

func TestScore_RequiresWeights(t *testing.T) {
	if _, err := Score(operation.Citizen{}, ReferenceData{}); !errors.Is(err, ErrNoWeights) {
		t.Fatalf("expected ErrNoWeights, got %v", err)
	}
}
