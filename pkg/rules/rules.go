// Package rules applies an ordered list of substitutions to a text slot.
package rules

import (
	"fmt"

	"github.com/acorn-io/strsub/pkg/errors"
	"github.com/acorn-io/strsub/pkg/replace"
	"sigs.k8s.io/yaml"
)

// Rule replaces every occurrence of Pattern with Replacement.
type Rule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement,omitempty"`
	// Escape JSON-escapes Replacement before it is substituted.
	Escape bool `json:"escape,omitempty"`
}

// Set is an ordered list of rules.
type Set struct {
	Rules []Rule `json:"rules"`
}

// Logger receives a line for every rule applied and for every rule whose
// pattern does not occur in the text it is applied to.
type Logger func(format string, args ...any)

// Load parses a rule set from YAML or JSON.
func Load(data []byte) (*Set, error) {
	set := &Set{}
	if err := yaml.UnmarshalStrict(data, set); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	for i, rule := range set.Rules {
		if rule.Pattern == "" {
			return nil, errors.NewRuleError(i, rule.Pattern, errors.ErrEmptyPattern)
		}
	}
	return set, nil
}

// Apply runs each rule against slot in order and stops at the first failure.
// Rules applied before the failure remain applied. Each rule is matched
// against the text left by the rules before it.
func (s *Set) Apply(slot *replace.Slot, log Logger) error {
	for i, rule := range s.Rules {
		if log != nil && rule.Pattern != "" && replace.Count(slot.String(), rule.Pattern) == 0 {
			log("rule %d pattern %q does not occur in input", i, rule.Pattern)
		}

		var (
			result string
			err    error
		)
		if rule.Escape {
			result, err = slot.ReplaceAllEscaped(rule.Pattern, rule.Replacement)
		} else {
			result, err = slot.ReplaceAll(rule.Pattern, rule.Replacement)
		}
		if err != nil {
			return errors.NewRuleError(i, rule.Pattern, err)
		}
		if log != nil {
			log("rule %d %q applied, result length %d", i, rule.Pattern, len(result))
		}
	}
	return nil
}
