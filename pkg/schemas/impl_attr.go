/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import (
	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/scalars"
)

// Implements IAttrDef
type attrDef struct {
	IBinding
	name     string
	required bool
}

func newAttrDef(name string, bind IBinding, required bool) *attrDef {
	return &attrDef{IBinding: bind, name: name, required: required}
}

func (a *attrDef) Name() string { return a.name }

func (a *attrDef) Required() bool { return a.required }

// Field returns a binding over the node field selected by access.
//
// N is the concrete node type. V is the field type: a scalar kind the
// scalars package supports, a pointer to one for nullable attributes, or
// a self-describing scalar.
func Field[N elements.Node, V any](access func(N) *V) IBinding {
	return fieldBinding[N, V]{access}
}

// Implements IBinding over a struct field
type fieldBinding[N elements.Node, V any] struct {
	access func(N) *V
}

func (b fieldBinding[N, V]) Set(n elements.Node, text string) error {
	t, ok := n.(N)
	if !ok {
		return EnrichError(ErrWrongNodeType, "%T", n)
	}
	return scalars.Parse(text, b.access(t))
}

func (b fieldBinding[N, V]) Get(n elements.Node) (string, bool, error) {
	t, ok := n.(N)
	if !ok {
		return "", false, EnrichError(ErrWrongNodeType, "%T", n)
	}
	v := *b.access(t)
	s, err := scalars.Format(v)
	if err != nil {
		return "", false, err
	}
	return s, scalars.IsZero(v), nil
}
