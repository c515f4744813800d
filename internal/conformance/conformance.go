// Package conformance loads and runs the externalized golden lexer
// scenarios (spec section 8, "Concrete scenarios") from a YAML fixture
// rather than inlining them as Go literals, the way the teacher's
// integration tests load their corpus from testdata/ instead of
// hardcoding MIB text in _test.go files.
package conformance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one golden lexer test case: a source string, the
// expected token-kind sequence (by Kind.String name), and the
// diagnostic codes expected in source order.
type Scenario struct {
	Name        string   `yaml:"name"`
	Source      string   `yaml:"source"`
	Tokens      []string `yaml:"tokens"`
	Diagnostics []string `yaml:"diagnostics"`
}

// scenarioFile is the top-level shape of testdata/scenarios.yaml.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses a scenario fixture from path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: reading %s: %w", path, err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("conformance: parsing %s: %w", path, err)
	}
	return f.Scenarios, nil
}
