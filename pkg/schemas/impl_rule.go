/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

// Implements IChildRule
type childRule struct {
	types []QName
	min   Occurs
	max   Occurs
}

func newChildRule(types []QName, minOccurs, maxOccurs Occurs) *childRule {
	return &childRule{types: types, min: minOccurs, max: maxOccurs}
}

func (r *childRule) Types(cb func(QName)) {
	for _, t := range r.types {
		cb(t)
	}
}

func (r *childRule) TypesCount() int { return len(r.types) }

func (r *childRule) MinOccurs() Occurs { return r.min }

func (r *childRule) MaxOccurs() Occurs { return r.max }

// Implements IChoiceRule
type choiceRule struct {
	mode  SelectionMode
	types []QName
}

func newChoiceRule(mode SelectionMode, types []QName) *choiceRule {
	return &choiceRule{mode: mode, types: types}
}

func (r *choiceRule) Mode() SelectionMode { return r.mode }

func (r *choiceRule) Types(cb func(QName)) {
	for _, t := range r.types {
		cb(t)
	}
}

func (r *choiceRule) TypesCount() int { return len(r.types) }
