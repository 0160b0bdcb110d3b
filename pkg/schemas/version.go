/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import "strings"

// Used as delimiter between version positions
const VersionQualifierChar = "."

// Version is a document version pattern: dot-separated positions, each a
// literal or the «*» wildcard, e.g. «1.0.0» or «1.*.*».
//
// The null (empty) version matches every other version.
type Version string

// Null (empty) Version
const NullVersion = Version("")

// Wildcard version position
const VersionAnyPos = "*"

// Matches reports whether two version patterns are compatible.
//
// Positions are compared one by one; a wildcard on either side matches the
// position unconditionally. Positions absent on one side are unconstrained.
// The null version matches everything, in both directions.
func (v Version) Matches(o Version) bool {
	if v == NullVersion || o == NullVersion {
		return true
	}

	vv := strings.Split(string(v), VersionQualifierChar)
	oo := strings.Split(string(o), VersionQualifierChar)

	for i := 0; (i < len(vv)) || (i < len(oo)); i++ {
		vp, op := VersionAnyPos, VersionAnyPos
		if i < len(vv) {
			vp = vv[i]
		}
		if i < len(oo) {
			op = oo[i]
		}
		if (vp == VersionAnyPos) || (op == VersionAnyPos) {
			continue
		}
		if vp != op {
			return false
		}
	}

	return true
}

// Returns Version as string
func (v Version) String() string { return string(v) }
