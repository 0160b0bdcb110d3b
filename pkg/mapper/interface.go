/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

// Package mapper reads XML documents into typed element trees driven by
// a schema registry and writes such trees back.
//
// Reading resolves every child tag against the parent type's child and
// choice rules, counts rule occurrences and reports cardinality
// violations to the logger without interrupting the read. Writing
// mirrors the read order and elides optional zero attributes.
package mapper

import (
	"github.com/xmldef/xmldef/pkg/schemas"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

// Cursor is the pull side of the document stream. *xmlio.Reader
// implements it.
type Cursor interface {
	// Advances to the next token. Returns xmlio.TokenKind_EOF with no
	// error at the end of the document.
	Next() (xmlio.TokenKind, error)

	// Returns the kind of the current token.
	Kind() xmlio.TokenKind

	// Returns the element name of the current start or end tag.
	Tag() string

	// Returns the attributes of the current start tag in document order.
	Attrs() []xmlio.Attr

	// Returns the character data of the current text token.
	Text() string

	// Reads past the subtree of the current start tag, leaving the
	// cursor on the matching end tag.
	Skip() error

	// Returns the number of input bytes consumed so far.
	Pos() int64

	// Returns the document size in bytes, zero when unknown.
	Len() int64
}

// Writer is the push side of the document stream. *xmlio.Writer
// implements it.
type Writer interface {
	StartDocument() error
	StartElement(name string, attrs ...xmlio.Attr) error
	Text(s string) error
	EndElement() error
	EndDocument() error
}

// AttrHandler switches reading to manual attribute handling: every raw
// attribute of the node's start tag is handed over as is, declared
// bindings are not consulted.
type AttrHandler interface {
	HandleAttr(name, value string)
}

// ChildResolver switches reading to manual child resolution: every
// child tag is resolved by the node itself, rules are not consulted and
// occurrences are not counted. NullQName skips the child subtree.
type ChildResolver interface {
	ResolveChild(tag string, version schemas.Version) schemas.QName
}

// Versioner pins the document version for the node's subtree. A non
// empty version replaces the active version once the node's attributes
// are read, so the version may come from an attribute.
type Versioner interface {
	DocVersion() schemas.Version
}

// ReadStartHandler is notified when the node is attached to the tree,
// before its attributes are read.
type ReadStartHandler interface {
	OnReadStart()
}

// AttrsReadHandler is notified when the node's attributes are read,
// before its children.
type AttrsReadHandler interface {
	OnAttrsRead()
}

// ReadEndHandler is notified when the node's subtree is read or
// skipped. Cancelled reads unwind without notifications.
type ReadEndHandler interface {
	OnReadEnd()
}

// Option customizes reading.
type Option func(*importer)

// WithIgnoreFlags sets the ignore mask. Subtrees of node types whose
// skip flags intersect the mask are skipped: the node is attached, its
// content is not read.
func WithIgnoreFlags(mask uint64) Option {
	return func(im *importer) { im.ignore = mask }
}

// WithProgress sets the progress callback. The consumed input fraction
// is reported at attribute and child boundaries, never decreases and
// reaches 1 only when the read completes.
func WithProgress(cb func(fraction float64)) Option {
	return func(im *importer) { im.progress = cb }
}

// WithResolutionCache sets the size of the per-read child resolution
// cache, DefaultResolutionCache unless specified. Sizes not above zero
// disable caching.
func WithResolutionCache(size int) Option {
	return func(im *importer) { im.cacheSize = size }
}

// DefaultResolutionCache is the child resolution cache size used unless
// WithResolutionCache specifies another.
const DefaultResolutionCache = 512

// ImportStats counts reading events and diagnostics.
type ImportStats struct {
	// Nodes instantiated, skipped subtree roots included.
	Nodes int

	// Subtrees skipped by flags, by parent admission or by manual child
	// resolution.
	SkippedSubtrees int

	// Attributes without a matching binding.
	UnmatchedAttrs int

	// Attribute and text values the bound field could not parse.
	InvalidValues int

	// Child tags no rule could resolve.
	UnmatchedChildren int

	// Child tags matching an unsupported child marker.
	UnsupportedChildren int

	// Child rule occurrence maximum violations.
	OverCounts int

	// Child rule occurrence minimum violations.
	UnderCounts int

	// Child resolutions served from the cache.
	CacheHits int
}
