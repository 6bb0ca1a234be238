package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpaceRule is the minimum habitability thresholds for one space type.
type SpaceRule struct {
	MinAreaM2  float64 `yaml:"min_area_m2"`
	MinHeightM float64 `yaml:"min_height_m"`
}

// SpaceTypeKeywords pairs a space type label with the substrings that
// identify it. Classification walks these in slice order and the first
// keyword hit wins, so the order below is part of the contract.
type SpaceTypeKeywords struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet is the compliance configuration: the ordered classification
// table plus per-type thresholds. Built once at startup, read-only
// afterwards.
type RuleSet struct {
	Types []SpaceTypeKeywords
	Rules map[string]SpaceRule
}

// DefaultRuleSet returns the built-in Barcelona habitability rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Types: []SpaceTypeKeywords{
			{Label: "Living Room", Keywords: []string{"living", "lounge", "sala", "salon", "estar", "menjador"}},
			{Label: "Bedroom", Keywords: []string{"bedroom", "bed", "dorm", "habitacio", "dormitori"}},
			{Label: "Kitchen", Keywords: []string{"kitchen", "cuina", "cocina"}},
			{Label: "Bathroom", Keywords: []string{"bath", "bathroom", "toilet", "wc", "lavabo", "aseo", "bany"}},
			{Label: "Corridor", Keywords: []string{"corridor", "hall", "pasillo", "passage", "rebedor", "distrib"}},
		},
		Rules: map[string]SpaceRule{
			"Living Room": {MinAreaM2: 16.0, MinHeightM: 2.6},
			"Bedroom":     {MinAreaM2: 9.0, MinHeightM: 2.6},
			"Kitchen":     {MinAreaM2: 8.0, MinHeightM: 2.6},
			"Bathroom":    {MinAreaM2: 4.0, MinHeightM: 2.3},
			"Corridor":    {MinAreaM2: 1.5, MinHeightM: 2.3},
		},
	}
}

type ruleFile struct {
	SpaceTypes []SpaceTypeKeywords  `yaml:"space_types"`
	Rules      map[string]SpaceRule `yaml:"rules"`
}

// LoadRuleSet reads a yaml rules file and merges it over the defaults.
// The file may replace the keyword table, the thresholds, or both.
func LoadRuleSet(path string) (RuleSet, error) {
	rs := DefaultRuleSet()

	data, err := os.ReadFile(path)
	if err != nil {
		return rs, fmt.Errorf("read rules: %w", err)
	}
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return rs, fmt.Errorf("parse rules yaml: %w", err)
	}

	if len(rf.SpaceTypes) > 0 {
		rs.Types = rf.SpaceTypes
	}
	for label, rule := range rf.Rules {
		rs.Rules[label] = rule
	}

	if err := rs.Validate(); err != nil {
		return rs, fmt.Errorf("rules %s: %w", path, err)
	}
	return rs, nil
}

// Validate checks the rule-set invariants: non-empty deduplicated
// keywords per type and strictly positive thresholds.
func (rs RuleSet) Validate() error {
	if len(rs.Types) == 0 {
		return fmt.Errorf("no space types configured")
	}
	seenLabels := make(map[string]bool)
	for _, st := range rs.Types {
		if st.Label == "" {
			return fmt.Errorf("space type with empty label")
		}
		if seenLabels[st.Label] {
			return fmt.Errorf("duplicate space type %q", st.Label)
		}
		seenLabels[st.Label] = true
		if len(st.Keywords) == 0 {
			return fmt.Errorf("space type %q has no keywords", st.Label)
		}
	}
	for label, rule := range rs.Rules {
		if rule.MinAreaM2 <= 0 || rule.MinHeightM <= 0 {
			return fmt.Errorf("space type %q has non-positive thresholds", label)
		}
	}
	return nil
}

// dedupedKeywords returns the keyword list for matching: normalized,
// order preserved, duplicates dropped. Source rule tables have carried
// duplicated entries before; duplicates cannot change first-match
// outcomes, so they are removed rather than trusted.
func dedupedKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized := NormalizeText(kw)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}
