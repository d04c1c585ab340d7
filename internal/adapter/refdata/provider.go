// Package refdata serves the embedded scenario and risk tables.
package refdata

import (
	"context"
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"watchfloor/internal/app/ports"
	"watchfloor/internal/domain/operation"
	"watchfloor/internal/domain/risk"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Provider implements ports.ReferenceData over a parsed risk table.
type Provider struct {
	Risk risk.ReferenceData
}

func (p Provider) RiskReference(_ context.Context) (risk.ReferenceData, error) {
	if len(p.Risk.Weights) == 0 {
		return risk.ReferenceData{}, ports.ErrReferenceDataMissing
	}
	return p.Risk, nil
}

// NewProvider loads the embedded risk table.
func NewProvider() (Provider, error) {
	ref, err := LoadRisk()
	if err != nil {
		return Provider{}, err
	}
	return Provider{Risk: ref}, nil
}

func LoadRisk() (risk.ReferenceData, error) {
	data, err := dataFS.ReadFile("data/risk.yaml")
	if err != nil {
		return risk.ReferenceData{}, err
	}
	return ParseRisk(data)
}

func ParseRisk(data []byte) (risk.ReferenceData, error) {
	var ref risk.ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return risk.ReferenceData{}, fmt.Errorf("parse risk tables: %w", err)
	}
	return ref, nil
}

// LoadScenario reads the scenario at path, or the embedded one when path is
// empty.
func LoadScenario(path string) (operation.Scenario, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = dataFS.ReadFile("data/scenario.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return operation.Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (operation.Scenario, error) {
	var s operation.Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return operation.Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return operation.Scenario{}, err
	}
	return s, nil
}
