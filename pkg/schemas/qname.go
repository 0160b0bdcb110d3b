/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import (
	"fmt"
	"strings"
)

// Used as delimiter in qualified names
const QNameQualifierChar = "."

// QName is a node type qualified name, unique per registry.
//
// <pkg>.<entity>
type QName struct {
	pkg    string
	entity string
}

// Null (empty) QName
var NullQName = QName{}

// Builds a qualified name from two parts (from package name and from entity name)
func NewQName(pkgName, entityName string) QName {
	return QName{pkg: pkgName, entity: entityName}
}

// Parse a qualified name from string.
//
// # Panics:
//   - if string is not a valid qualified name
func MustParseQName(val string) QName {
	q, err := ParseQName(val)
	if err != nil {
		panic(err)
	}
	return q
}

// Parse a qualified name from string
func ParseQName(val string) (res QName, err error) {
	s := strings.Split(val, QNameQualifierChar)
	if len(s) != 2 {
		return NullQName, ErrInvalid("qualified name «%v»", val)
	}
	return NewQName(s[0], s[1]), nil
}

// Returns package name
func (qn QName) Pkg() string { return qn.pkg }

// Returns entity name
func (qn QName) Entity() string { return qn.entity }

// Returns QName as string
func (qn QName) String() string { return qn.pkg + QNameQualifierChar + qn.entity }

// Returns has qualified name valid package and entity identifiers and error if not
func ValidQName(qName QName) (bool, error) {
	if qName == NullQName {
		return false, ErrMissed("qualified name")
	}
	if ok, err := ValidIdent(qName.Pkg()); !ok {
		return false, fmt.Errorf("qualified name «%v» package: %w", qName, err)
	}
	if ok, err := ValidIdent(qName.Entity()); !ok {
		return false, fmt.Errorf("qualified name «%v» entity: %w", qName, err)
	}
	return true, nil
}
