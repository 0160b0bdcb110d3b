/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

// Package schemas provides the declarative node type registry: per node
// type the element tag and version applicability, attribute bindings,
// child rules with occurrence bounds, choice rules and unsupported child
// markers. The registry is declared once through a builder and is
// immutable read-only state thereafter.
package schemas

import "github.com/xmldef/xmldef/pkg/elements"

// NodeFactory constructs a fresh instance of the declared node type.
type NodeFactory func() elements.Node

// IRegistry is the read-only set of node type definitions.
//
// Safe for concurrent use by multiple readers.
type IRegistry interface {
	// Returns node type definition by qualified name.
	//
	// Returns NullNodeDef if not found.
	NodeDef(name QName) INodeDef

	// Returns node type definition by qualified name.
	//
	// Returns nil if not found.
	NodeDefByName(name QName) INodeDef

	// Enumerates all node type definitions in definition order.
	NodeDefs(cb func(INodeDef))

	// Creates a node instance of the specified type with the embedded
	// element state stamped.
	//
	// Returns nil if the type is not found.
	NewNode(name QName) elements.Node
}

// IRegistryBuilder assembles a registry.
type IRegistryBuilder interface {
	// Adds a node type definition with the specified qualified name and
	// instance factory.
	//
	// # Panics:
	//   - if name is invalid,
	//   - if a type with the name is already added,
	//   - if factory is nil.
	AddNode(name QName, factory NodeFactory) INodeDefBuilder

	// Validates the added definitions and returns the registry.
	//
	// Child rule, choice rule and parent references to unknown node types
	// and namespace references to unknown attributes are validation errors,
	// joined per definition.
	Build() (IRegistry, error)

	// Validates the added definitions and returns the registry.
	//
	// # Panics:
	//   - if validation fails.
	MustBuild() IRegistry
}

// INodeDef is a node type definition.
//
// Implements elements.Def.
type INodeDef interface {
	// Returns the qualified type name.
	QName() QName

	// Returns the qualified type name string. Unique per registry.
	TypeName() string

	// Returns the declared element tag.
	//
	// Empty tag is a wildcard: such type matches any tag whose version
	// matches, and instances carry per-instance names.
	Tag() string

	// Returns whether the tag matches element names case-insensitively.
	TagFold() bool

	// Returns the declared version pattern. NullVersion matches all.
	Version() Version

	// Returns the skip flags. Reading omits subtrees whose type flags
	// intersect the reader's ignore mask.
	SkipFlags() uint64

	// Returns whether the type carries text content instead of children.
	IsText() bool

	// Returns the text content binding, nil unless IsText.
	Text() IBinding

	// Returns the name of the attribute designated as the namespace
	// declaration, empty when none. Writing emits it with the start tag
	// and excludes it from the attribute loop.
	NamespaceAttr() string

	// Returns whether the specified type is admissible as a parent.
	// A definition with no declared parents admits any.
	AdmitsParent(name QName) bool

	// Returns the attribute binding by case-insensitive name match, nil
	// if not found.
	Attr(name string) IAttrDef

	// Enumerates attribute bindings in declaration order.
	Attrs(cb func(IAttrDef))

	// Enumerates child rules in declaration order.
	ChildRules(cb func(IChildRule))

	// Enumerates choice rules in declaration order.
	ChoiceRules(cb func(IChoiceRule))

	// Returns whether some child rule or choice rule lists the specified
	// node type.
	AdmitsChild(typeName string) bool

	// Returns whether the tag matches a declared known-but-unsupported
	// child marker. Matching is case-insensitive.
	Unsupported(tag string) bool
}

// INodeDefBuilder assembles one node type definition.
type INodeDefBuilder interface {
	INodeDef

	// Sets the declared element tag.
	SetTag(tag string) INodeDefBuilder

	// Sets case-insensitive tag matching.
	SetTagFold(fold bool) INodeDefBuilder

	// Sets the version pattern the type applies to.
	SetVersion(v Version) INodeDefBuilder

	// Sets the skip flags.
	SetSkipFlags(flags uint64) INodeDefBuilder

	// Adds admissible parent types. No parents admits any.
	//
	// # Panics:
	//   - if a name is null.
	AddParent(names ...QName) INodeDefBuilder

	// Adds an attribute binding.
	//
	// # Panics:
	//   - if name is empty,
	//   - if an attribute with the name is already added (case-insensitive),
	//   - if binding is nil.
	AddAttr(name string, bind IBinding, required bool) INodeDefBuilder

	// Designates an added attribute as the namespace declaration.
	//
	// # Panics:
	//   - if name is empty.
	SetNamespaceAttr(name string) INodeDefBuilder

	// Sets the text content binding, making the type a text node.
	//
	// # Panics:
	//   - if binding is nil,
	//   - if the type already declares child or choice rules.
	SetText(bind IBinding) INodeDefBuilder

	// Adds a child rule over the candidate types with the specified
	// occurrence bounds.
	//
	// # Panics:
	//   - if the type carries text content,
	//   - if no candidate types are specified or a name is null,
	//   - if minOccurs exceeds maxOccurs,
	//   - if maxOccurs is zero.
	AddChildRule(minOccurs, maxOccurs Occurs, types ...QName) INodeDefBuilder

	// Adds a choice rule over the listed types.
	//
	// # Panics:
	//   - if the type carries text content,
	//   - if mode is not a valid selection mode,
	//   - if no types are specified or a name is null.
	AddChoiceRule(mode SelectionMode, types ...QName) INodeDefBuilder

	// Adds known-but-unsupported child tag markers.
	//
	// # Panics:
	//   - if a tag is empty.
	AddUnsupported(tags ...string) INodeDefBuilder
}

// IBinding converts one bound value between its text form and the typed
// node field.
type IBinding interface {
	// Parses text into the bound field of the node.
	Set(n elements.Node, text string) error

	// Formats the current value of the bound field. zero reports whether
	// the value equals the field type's zero value.
	Get(n elements.Node) (text string, zero bool, err error)
}

// IAttrDef is a named attribute binding.
type IAttrDef interface {
	IBinding

	// Returns the attribute name as written in the document.
	Name() string

	// Returns whether writing emits the attribute even when the value is
	// zero. Reading does not enforce presence.
	Required() bool
}

// IChildRule is an occurrence rule over an ordered candidate set of
// concrete node types. The first candidate whose definition matches the
// read tag and active version resolves the child.
type IChildRule interface {
	// Enumerates candidate types in declaration order.
	Types(cb func(QName))

	// Returns the number of candidate types.
	TypesCount() int

	// Returns the minimal occurrences of matched children. Zero means
	// optional.
	MinOccurs() Occurs

	// Returns the maximal occurrences of matched children.
	MaxOccurs() Occurs
}

// IChoiceRule is an alternation rule over a fixed list of concrete node
// types.
type IChoiceRule interface {
	// Returns the selection mode.
	Mode() SelectionMode

	// Enumerates listed types in declaration order.
	Types(cb func(QName))

	// Returns the number of listed types.
	TypesCount() int
}
