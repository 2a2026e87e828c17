// Package aggregate accumulates technique and tactic occurrence counts
// across the rule mappings of one CSV file.
package aggregate

import (
	"strings"

	"github.com/rcegan/Splunk-MITRE-Generator/internal/mapping"
)

// Coverage holds the aggregated state for one input file. Counts live in
// maps keyed by ID; the companion order slices record first-seen order so
// downstream iteration is deterministic.
type Coverage struct {
	TechniqueCounts map[string]int
	TacticCounts    map[string]int
	Rules           []mapping.RuleMapping

	techniqueOrder []string
	tacticOrder    []string
}

// New returns an empty Coverage.
func New() *Coverage {
	return &Coverage{
		TechniqueCounts: make(map[string]int),
		TacticCounts:    make(map[string]int),
	}
}

// Add folds one rule mapping into the coverage state. Rules with no
// non-empty technique are not retained.
func (c *Coverage) Add(rule mapping.RuleMapping) {
	counted := 0
	for _, technique := range rule.Techniques {
		technique = strings.TrimSpace(technique)
		if technique == "" {
			continue
		}
		counted++

		if c.TechniqueCounts[technique] == 0 {
			c.techniqueOrder = append(c.techniqueOrder, technique)
		}
		c.TechniqueCounts[technique]++

		// Sub-techniques count toward their parent technique's tactic
		// bucket, never toward a bucket of their own.
		tactic := technique
		if dot := strings.IndexByte(technique, '.'); dot >= 0 {
			tactic = technique[:dot]
		}
		if c.TacticCounts[tactic] == 0 {
			c.tacticOrder = append(c.tacticOrder, tactic)
		}
		c.TacticCounts[tactic]++
	}

	if counted > 0 {
		c.Rules = append(c.Rules, rule)
	}
}

// AddAll folds a sequence of rule mappings in order.
func (c *Coverage) AddAll(rules []mapping.RuleMapping) {
	for _, rule := range rules {
		c.Add(rule)
	}
}

// Techniques returns the technique IDs in first-seen order.
func (c *Coverage) Techniques() []string {
	return c.techniqueOrder
}

// Tactics returns the tactic keys in first-seen order.
func (c *Coverage) Tactics() []string {
	return c.tacticOrder
}

// MaxCount returns the highest technique count, or 1 when nothing has
// been counted. The gradient ceiling must never be zero.
func (c *Coverage) MaxCount() int {
	max := 0
	for _, count := range c.TechniqueCounts {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

// RuleNamesFor returns the names of the retained rules whose technique
// list contains id, in retained order.
func (c *Coverage) RuleNamesFor(id string) []string {
	var names []string
	for _, rule := range c.Rules {
		for _, technique := range rule.Techniques {
			if strings.TrimSpace(technique) == id {
				names = append(names, rule.Name)
				break
			}
		}
	}
	return names
}
