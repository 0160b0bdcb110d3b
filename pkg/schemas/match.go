/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import "strings"

// Matches reports whether the node type definition applies to the element
// tag under the active document version.
//
// The definition version pattern must match the active version. A null
// definition tag matches any element tag; a named tag must be equal,
// case-insensitively when the definition folds tag case.
func Matches(d INodeDef, tag string, version Version) bool {
	if d == nil {
		return false
	}
	if !d.Version().Matches(version) {
		return false
	}
	switch t := d.Tag(); {
	case t == "":
		return true
	case d.TagFold():
		return strings.EqualFold(t, tag)
	default:
		return t == tag
	}
}
