/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import (
	"errors"
	"strings"

	"golang.org/x/exp/slices"
)

// Implements INodeDef, INodeDefBuilder and elements.Def
type nodeDef struct {
	name         QName
	factory      NodeFactory
	tag          string
	tagFold      bool
	version      Version
	skipFlags    uint64
	parents      []QName
	attrs        map[string]*attrDef
	attrsOrdered []*attrDef
	nsAttr       string
	text         IBinding
	childRules   []*childRule
	choiceRules  []*choiceRule
	unsupported  []string
	admits       map[string]struct{}
}

func newNodeDef(name QName, factory NodeFactory) *nodeDef {
	return &nodeDef{
		name:    name,
		factory: factory,
		attrs:   make(map[string]*attrDef),
		admits:  make(map[string]struct{}),
	}
}

func (d *nodeDef) QName() QName { return d.name }

func (d *nodeDef) TypeName() string { return d.name.String() }

func (d *nodeDef) Tag() string { return d.tag }

func (d *nodeDef) TagFold() bool { return d.tagFold }

func (d *nodeDef) Version() Version { return d.version }

func (d *nodeDef) SkipFlags() uint64 { return d.skipFlags }

func (d *nodeDef) IsText() bool { return d.text != nil }

func (d *nodeDef) Text() IBinding { return d.text }

func (d *nodeDef) NamespaceAttr() string { return d.nsAttr }

func (d *nodeDef) AdmitsParent(name QName) bool {
	return (len(d.parents) == 0) || slices.Contains(d.parents, name)
}

func (d *nodeDef) Attr(name string) IAttrDef {
	if a, ok := d.attrs[strings.ToLower(name)]; ok {
		return a
	}
	return nil
}

func (d *nodeDef) Attrs(cb func(IAttrDef)) {
	for _, a := range d.attrsOrdered {
		cb(a)
	}
}

func (d *nodeDef) ChildRules(cb func(IChildRule)) {
	for _, r := range d.childRules {
		cb(r)
	}
}

func (d *nodeDef) ChoiceRules(cb func(IChoiceRule)) {
	for _, r := range d.choiceRules {
		cb(r)
	}
}

func (d *nodeDef) AdmitsChild(typeName string) bool {
	_, ok := d.admits[typeName]
	return ok
}

func (d *nodeDef) Unsupported(tag string) bool {
	return slices.Contains(d.unsupported, strings.ToLower(tag))
}

func (d *nodeDef) SetTag(tag string) INodeDefBuilder {
	d.tag = tag
	return d
}

func (d *nodeDef) SetTagFold(fold bool) INodeDefBuilder {
	d.tagFold = fold
	return d
}

func (d *nodeDef) SetVersion(v Version) INodeDefBuilder {
	d.version = v
	return d
}

func (d *nodeDef) SetSkipFlags(flags uint64) INodeDefBuilder {
	d.skipFlags = flags
	return d
}

func (d *nodeDef) AddParent(names ...QName) INodeDefBuilder {
	for _, n := range names {
		if n == NullQName {
			panic(ErrMissed("parent type name in «%v»", d.name))
		}
		d.parents = append(d.parents, n)
	}
	return d
}

func (d *nodeDef) AddAttr(name string, bind IBinding, required bool) INodeDefBuilder {
	if name == "" {
		panic(ErrMissed("attribute name in «%v»", d.name))
	}
	if bind == nil {
		panic(ErrMissed("binding for attribute «%s» in «%v»", name, d.name))
	}
	k := strings.ToLower(name)
	if _, ok := d.attrs[k]; ok {
		panic(ErrAlreadyExists("attribute «%s» in «%v»", name, d.name))
	}
	a := newAttrDef(name, bind, required)
	d.attrs[k] = a
	d.attrsOrdered = append(d.attrsOrdered, a)
	return d
}

func (d *nodeDef) SetNamespaceAttr(name string) INodeDefBuilder {
	if name == "" {
		panic(ErrMissed("namespace attribute name in «%v»", d.name))
	}
	d.nsAttr = name
	return d
}

func (d *nodeDef) SetText(bind IBinding) INodeDefBuilder {
	if bind == nil {
		panic(ErrMissed("text binding for «%v»", d.name))
	}
	if (len(d.childRules) > 0) || (len(d.choiceRules) > 0) {
		panic(ErrIncompatible("«%v» declares child rules, can not carry text content", d.name))
	}
	d.text = bind
	return d
}

func (d *nodeDef) AddChildRule(minOccurs, maxOccurs Occurs, types ...QName) INodeDefBuilder {
	if d.text != nil {
		panic(ErrIncompatible("«%v» carries text content, can not declare child rules", d.name))
	}
	if maxOccurs == 0 {
		panic(ErrOutOfBounds("max occurs is zero in child rule of «%v»", d.name))
	}
	if maxOccurs < minOccurs {
		panic(ErrOutOfBounds("max occurs (%v) less than min occurs (%v) in child rule of «%v»", maxOccurs, minOccurs, d.name))
	}
	d.childRules = append(d.childRules, newChildRule(d.admitTypes("child rule", types), minOccurs, maxOccurs))
	return d
}

func (d *nodeDef) AddChoiceRule(mode SelectionMode, types ...QName) INodeDefBuilder {
	if d.text != nil {
		panic(ErrIncompatible("«%v» carries text content, can not declare choice rules", d.name))
	}
	if (mode == SelectionMode_null) || (mode >= SelectionMode_FakeLast) {
		panic(ErrInvalid("selection mode %v in choice rule of «%v»", mode, d.name))
	}
	d.choiceRules = append(d.choiceRules, newChoiceRule(mode, d.admitTypes("choice rule", types)))
	return d
}

func (d *nodeDef) AddUnsupported(tags ...string) INodeDefBuilder {
	for _, t := range tags {
		if t == "" {
			panic(ErrMissed("unsupported child tag in «%v»", d.name))
		}
		d.unsupported = append(d.unsupported, strings.ToLower(t))
	}
	return d
}

// admitTypes checks the rule type list and extends the set of admitted
// child types.
func (d *nodeDef) admitTypes(rule string, types []QName) []QName {
	if len(types) == 0 {
		panic(ErrMissed("types in %s of «%v»", rule, d.name))
	}
	for _, t := range types {
		if t == NullQName {
			panic(ErrMissed("type name in %s of «%v»", rule, d.name))
		}
		d.admits[t.String()] = struct{}{}
	}
	return types
}

// validate checks that every referenced node type and the designated
// namespace attribute exist.
func (d *nodeDef) validate(r *registry) (err error) {
	check := func(rule string, types []QName) {
		for _, t := range types {
			if r.NodeDefByName(t) == nil {
				err = errors.Join(err, ErrNotFound("«%v»: %s references unknown node type «%v»", d.name, rule, t))
			}
		}
	}
	for _, rule := range d.childRules {
		check("child rule", rule.types)
	}
	for _, rule := range d.choiceRules {
		check("choice rule", rule.types)
	}
	check("parent list", d.parents)
	if (d.nsAttr != "") && (d.Attr(d.nsAttr) == nil) {
		err = errors.Join(err, ErrNotFound("«%v»: namespace attribute «%s»", d.name, d.nsAttr))
	}
	return err
}
