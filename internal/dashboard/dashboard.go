// =============================================================================
// PFAS Reporting Toolkit - Regulatory Dashboard
// =============================================================================
//
// This module analyzes a company profile and reports which regulatory
// categories apply and which risk areas to watch. It exists alongside the
// PFAS pipeline as the onboarding "what regulations touch us at all"
// view.
//
// PROFILE FORMAT (JSON):
//   {
//     "geography": ["USA", "EU"],
//     "industry":  ["manufacturing"],
//     "products":  ["electronics"],
//     "suppliers": ["chemical"]
//   }
//
// RULES:
//   Each profile aspect has a ruleset mapping a value (e.g. "USA") to the
//   regulatory categories and risks it triggers. The built-in rulesets
//   cover the common cases; a YAML rules file can replace them entirely.
//
//   CUSTOMIZATION: supply dashboard.rules_file in config.yaml with the
//   same aspect -> value -> {categories, risks} shape to use your own
//   regulatory mapping.
//
// =============================================================================

package dashboard

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// RULE TYPES
// =============================================================================

// Rule lists the regulatory categories and risks triggered by one
// profile value.
type Rule struct {
	Categories []string `yaml:"categories" json:"categories"`
	Risks      []string `yaml:"risks" json:"risks"`
}

// Ruleset maps profile values (e.g. "USA", "finance") to their rules.
type Ruleset map[string]Rule

// Rules maps a profile aspect ("geography", "industry", "products",
// "suppliers") to its ruleset.
type Rules map[string]Ruleset

// DefaultRules returns the built-in regulatory mapping.
func DefaultRules() Rules {
	return Rules{
		"geography": {
			"USA":  {Categories: []string{"OSHA", "EPA"}, Risks: []string{"labor", "environment"}},
			"EU":   {Categories: []string{"GDPR", "REACH"}, Risks: []string{"privacy", "chemical"}},
			"Asia": {Categories: []string{"APAC Trade"}, Risks: []string{"import/export"}},
		},
		"industry": {
			"finance":       {Categories: []string{"SOX"}, Risks: []string{"fraud"}},
			"manufacturing": {Categories: []string{"ISO9001"}, Risks: []string{"quality"}},
		},
		"products": {
			"electronics": {Categories: []string{"WEEE"}, Risks: []string{"e-waste"}},
			"food":        {Categories: []string{"FDA"}, Risks: []string{"contamination"}},
		},
		"suppliers": {
			"chemical": {Categories: []string{"Hazmat"}, Risks: []string{"hazardous materials"}},
			"software": {Categories: []string{"Licensing"}, Risks: []string{"intellectual property"}},
		},
	}
}

// LoadRules reads a complete replacement ruleset from a YAML file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rulesets", path)
	}

	return rules, nil
}

// =============================================================================
// PROFILE
// =============================================================================

// Profile describes the organization being analyzed. Unknown values are
// simply ignored; they trigger no rules.
type Profile struct {
	Geography []string `json:"geography"`
	Industry  []string `json:"industry"`
	Products  []string `json:"products"`
	Suppliers []string `json:"suppliers"`
}

// LoadProfile reads an organization profile from a JSON file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return &profile, nil
}

// aspects pairs each profile aspect with its values for rule lookup.
func (p *Profile) aspects() map[string][]string {
	return map[string][]string{
		"geography": p.Geography,
		"industry":  p.Industry,
		"products":  p.Products,
		"suppliers": p.Suppliers,
	}
}

// =============================================================================
// ANALYSIS
// =============================================================================

// Result holds the outcome of a profile analysis: sorted, deduplicated
// lists of applicable regulatory categories and potential risks.
type Result struct {
	Categories []string `json:"categories"`
	Risks      []string `json:"risks"`
}

// Analyze evaluates a profile against the rules. Pure function: same
// profile and rules always produce the same result.
func Analyze(profile *Profile, rules Rules) Result {
	categories := make(map[string]struct{})
	risks := make(map[string]struct{})

	for aspect, values := range profile.aspects() {
		ruleset, ok := rules[aspect]
		if !ok {
			continue
		}
		for _, value := range values {
			rule, ok := ruleset[value]
			if !ok {
				continue
			}
			for _, c := range rule.Categories {
				categories[c] = struct{}{}
			}
			for _, r := range rule.Risks {
				risks[r] = struct{}{}
			}
		}
	}

	return Result{
		Categories: sortedKeys(categories),
		Risks:      sortedKeys(risks),
	}
}

// sortedKeys returns the keys of a set in sorted order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
