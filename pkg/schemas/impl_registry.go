/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import (
	"errors"

	"github.com/xmldef/xmldef/pkg/elements"
)

// Implements IRegistry and IRegistryBuilder
type registry struct {
	defs        map[QName]*nodeDef
	defsOrdered []*nodeDef
}

func newRegistry() *registry {
	return &registry{defs: make(map[QName]*nodeDef)}
}

func (r *registry) AddNode(name QName, factory NodeFactory) INodeDefBuilder {
	if ok, err := ValidQName(name); !ok {
		panic(err)
	}
	if _, ok := r.defs[name]; ok {
		panic(ErrAlreadyExists("node type «%v»", name))
	}
	if factory == nil {
		panic(ErrMissed("factory for node type «%v»", name))
	}
	d := newNodeDef(name, factory)
	r.defs[name] = d
	r.defsOrdered = append(r.defsOrdered, d)
	return d
}

func (r *registry) Build() (IRegistry, error) {
	var err error
	for _, d := range r.defsOrdered {
		err = errors.Join(err, d.validate(r))
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *registry) MustBuild() IRegistry {
	reg, err := r.Build()
	if err != nil {
		panic(err)
	}
	return reg
}

func (r *registry) NodeDef(name QName) INodeDef {
	if d := r.NodeDefByName(name); d != nil {
		return d
	}
	return NullNodeDef
}

func (r *registry) NodeDefByName(name QName) INodeDef {
	if d, ok := r.defs[name]; ok {
		return d
	}
	return nil
}

func (r *registry) NodeDefs(cb func(INodeDef)) {
	for _, d := range r.defsOrdered {
		cb(d)
	}
}

func (r *registry) NewNode(name QName) elements.Node {
	d, ok := r.defs[name]
	if !ok {
		return nil
	}
	n := d.factory()
	elements.Setup(n, d)
	return n
}
