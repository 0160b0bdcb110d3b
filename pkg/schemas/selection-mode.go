/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import "strings"

//go:generate stringer -type=SelectionMode -output=selection-mode_string.go

// SelectionMode is the alternation policy of a choice rule: which
// combination of the listed node types a valid parent scope holds.
//
// Occurrences are counted per listed type while reading; the policy itself
// is not cross-checked at the end of the scope.
type SelectionMode uint8

const (
	SelectionMode_null SelectionMode = iota

	// Exactly one node of one of the listed types
	SelectionMode_One

	// At least one node, any combination of the listed types
	SelectionMode_AnyCombination

	// At least one node of each listed type
	SelectionMode_OneOfEach

	// One or more nodes of exactly one listed type
	SelectionMode_ManyOfOne

	// Any number of nodes of exactly one listed type
	SelectionMode_AnyOfOne

	SelectionMode_FakeLast
)

// Renders an SelectionMode in human-readable form, without `SelectionMode_` prefix,
// suitable for debugging or error messages
func (m SelectionMode) TrimString() string {
	const pref = "SelectionMode" + "_"
	return strings.TrimPrefix(m.String(), pref)
}
