/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package mapper

import (
	"math"
	"strings"

	"github.com/xmldef/xmldef/pkg/schemas"
)

// occursTracker counts child occurrences within one parent scope.
// Created per node read, discarded when the node's children are
// consumed. Never shared across sibling scopes.
type occursTracker struct {
	rules   []schemas.IChildRule
	counts  []schemas.Occurs
	choices []schemas.IChoiceRule
	picks   [][]schemas.Occurs
}

func newOccursTracker(def schemas.INodeDef) *occursTracker {
	t := &occursTracker{}
	def.ChildRules(func(r schemas.IChildRule) {
		t.rules = append(t.rules, r)
		t.counts = append(t.counts, 0)
	})
	def.ChoiceRules(func(r schemas.IChoiceRule) {
		t.choices = append(t.choices, r)
		t.picks = append(t.picks, make([]schemas.Occurs, r.TypesCount()))
	})
	return t
}

// childSeen counts an occurrence of the specified child rule. over is
// raised once, at the occurrence exceeding the rule maximum.
func (t *occursTracker) childSeen(rule int) (count schemas.Occurs, over bool) {
	if t.counts[rule] < math.MaxUint16 {
		t.counts[rule]++
	}
	count = t.counts[rule]
	max := t.rules[rule].MaxOccurs()
	over = (max != schemas.Occurs_Unbounded) && (count == max+1)
	return count, over
}

// choiceSeen counts an occurrence of the specified type of the
// specified choice rule. Selection modes are counted, not enforced.
func (t *occursTracker) choiceSeen(rule, typ int) {
	if t.picks[rule][typ] < math.MaxUint16 {
		t.picks[rule][typ]++
	}
}

// underCount is one child rule occurrence minimum violation.
type underCount struct {
	rule schemas.IChildRule
	got  schemas.Occurs
}

// underCounts sweeps the child rules for counts below the rule minimum,
// one violation per rule. A rule is swept only when at least one of its
// candidate types applies to the active version.
func (t *occursTracker) underCounts(reg schemas.IRegistry, version schemas.Version) (uu []underCount) {
	for i, r := range t.rules {
		if t.counts[i] >= r.MinOccurs() {
			continue
		}
		if !ruleRelevant(reg, r, version) {
			continue
		}
		uu = append(uu, underCount{rule: r, got: t.counts[i]})
	}
	return uu
}

// ruleRelevant reports whether at least one candidate type of the rule
// applies to the specified version.
func ruleRelevant(reg schemas.IRegistry, r schemas.IChildRule, version schemas.Version) bool {
	relevant := false
	r.Types(func(n schemas.QName) {
		if relevant {
			return
		}
		if d := reg.NodeDefByName(n); d != nil && d.Version().Matches(version) {
			relevant = true
		}
	})
	return relevant
}

// ruleTypes renders the candidate type list of a child or choice rule.
func ruleTypes(r interface{ Types(func(schemas.QName)) }) string {
	nn := make([]string, 0, 2)
	r.Types(func(n schemas.QName) { nn = append(nn, n.String()) })
	return strings.Join(nn, ", ")
}
