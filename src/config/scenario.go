package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"elevsim/src/types"
)

// DefaultScenario is a single passenger going from floor 3 to floor 1.
func DefaultScenario() types.Scenario {
	return types.Scenario{
		Name:      "single passenger",
		NumFloors: DefaultNumFloors,
		Ticks:     DefaultSimTicks,
		Requests: []types.RequestSpec{
			{Time: 2, Src: 3, Dest: 1},
		},
	}
}

func LoadScenario(path string) (types.Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.Scenario{}, fmt.Errorf("opening scenario: %w", err)
	}
	defer file.Close()

	scenario, err := DecodeScenario(file)
	if err != nil {
		return types.Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return scenario, nil
}

// DecodeScenario reads a YAML scenario. Missing floors and ticks fall back to the defaults.
func DecodeScenario(r io.Reader) (types.Scenario, error) {
	var scenario types.Scenario
	if err := yaml.NewDecoder(r).Decode(&scenario); err != nil {
		if err == io.EOF {
			return DefaultScenario(), nil
		}
		return types.Scenario{}, fmt.Errorf("decoding yaml: %w", err)
	}
	if scenario.NumFloors == 0 {
		scenario.NumFloors = DefaultNumFloors
	}
	if scenario.Ticks == 0 {
		scenario.Ticks = DefaultSimTicks
	}
	if scenario.Ticks < 0 {
		return types.Scenario{}, fmt.Errorf("ticks must not be negative, got %d", scenario.Ticks)
	}
	return scenario, nil
}
