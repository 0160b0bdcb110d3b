/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 * @author: Nikolay Nikitin
 */

package mapper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/untillpro/goutils/logger"

	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/scalars"
	"github.com/xmldef/xmldef/pkg/schemas"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

// importer reads one document. Never reused across reads: the
// resolution cache and the counters are per read.
type importer struct {
	ctx          context.Context
	reg          schemas.IRegistry
	cursor       Cursor
	ignore       uint64
	progress     func(float64)
	cacheSize    int
	cache        *lru.Cache[resolveKey, resolution]
	lastFraction float64
	stats        ImportStats
}

func newImporter(ctx context.Context, reg schemas.IRegistry, cursor Cursor, opts []Option) *importer {
	im := &importer{ctx: ctx, reg: reg, cursor: cursor, cacheSize: DefaultResolutionCache}
	for _, opt := range opts {
		opt(im)
	}
	if im.cacheSize > 0 {
		cache, err := lru.New[resolveKey, resolution](im.cacheSize)
		if err != nil {
			panic(err)
		}
		im.cache = cache
	}
	return im
}

// importRoot scans the document forward for an element matching the
// root node type and reads the tree from it. Top level content not
// matching the root is skipped.
func (im *importer) importRoot(root schemas.QName) (elements.Node, error) {
	def := im.reg.NodeDefByName(root)
	if def == nil {
		return nil, schemas.ErrNodeTypeNotFound(root)
	}
	if def.Tag() == "" {
		err := fmt.Errorf("root type «%v»: %w", root, ErrUnnamedRootType)
		logger.Error(err.Error())
		return nil, err
	}
	for {
		if err := im.ctx.Err(); err != nil {
			return nil, err
		}
		kind, err := im.cursor.Next()
		if err != nil {
			return nil, malformed(err)
		}
		switch kind {
		case xmlio.TokenKind_EOF:
			return nil, fmt.Errorf("root element «%s»: %w", def.Tag(), ErrRootNotFound)
		case xmlio.TokenKind_StartTag:
			if schemas.Matches(def, im.cursor.Tag(), schemas.NullVersion) {
				return im.readNode(def, nil, schemas.NullVersion)
			}
			if err := im.cursor.Skip(); err != nil {
				return nil, malformed(err)
			}
		}
	}
}

// readNode reads one node: instantiates it, attaches it to the parent
// and populates attributes and content per the node type definition.
//
// The cursor must be on the node's start tag; on return it is on the
// matching end tag.
func (im *importer) readNode(def schemas.INodeDef, parent elements.Node, version schemas.Version) (elements.Node, error) {
	if err := im.ctx.Err(); err != nil {
		return nil, err
	}

	n := im.reg.NewNode(def.QName())
	if parent != nil {
		if _, err := elements.AddChildren(parent, n); err != nil {
			return nil, err
		}
	}
	if def.Tag() == "" {
		n.Elem().SetName(im.cursor.Tag())
	}
	im.stats.Nodes++

	if h, ok := n.(ReadStartHandler); ok {
		h.OnReadStart()
	}

	if im.cursor.Kind() != xmlio.TokenKind_StartTag {
		im.stats.SkippedSubtrees++
		logger.Warning(fmt.Sprintf("%s: unexpected %s, start tag expected", n.Elem().Path(), im.cursor.Kind()))
		return im.endNode(n)
	}
	if def.SkipFlags()&im.ignore != 0 {
		im.stats.SkippedSubtrees++
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%s: subtree skipped by flags", n.Elem().Path()))
		}
		if err := im.cursor.Skip(); err != nil {
			return nil, malformed(err)
		}
		return im.endNode(n)
	}
	if parent != nil {
		if pd, ok := parent.Elem().Def().(schemas.INodeDef); ok && !def.AdmitsParent(pd.QName()) {
			im.stats.SkippedSubtrees++
			logger.Warning(fmt.Sprintf("%s: parent type «%v» is not admitted, subtree skipped", n.Elem().Path(), pd.QName()))
			if err := im.cursor.Skip(); err != nil {
				return nil, malformed(err)
			}
			return im.endNode(n)
		}
	}

	openTag := im.cursor.Tag()

	if err := im.readAttrs(n, def); err != nil {
		return nil, err
	}

	if v, ok := n.(Versioner); ok {
		if dv := v.DocVersion(); dv != schemas.NullVersion {
			version = dv
		}
	}

	if h, ok := n.(AttrsReadHandler); ok {
		h.OnAttrsRead()
	}

	if def.IsText() {
		if err := im.readText(n, def); err != nil {
			return nil, err
		}
	} else {
		if err := im.readChildren(n, def, version); err != nil {
			return nil, err
		}
	}

	if tag := im.cursor.Tag(); tag != openTag {
		return nil, fmt.Errorf("%w: element «%s» closed by «%s»", ErrMalformedDocument, openTag, tag)
	}
	return im.endNode(n)
}

// endNode notifies the read end hook.
func (im *importer) endNode(n elements.Node) (elements.Node, error) {
	if h, ok := n.(ReadEndHandler); ok {
		h.OnReadEnd()
	}
	return n, nil
}

// readAttrs populates the node from the start tag attributes, matching
// binding names case-insensitively. Nodes handling attributes manually
// receive every raw pair instead.
func (im *importer) readAttrs(n elements.Node, def schemas.INodeDef) error {
	if h, ok := n.(AttrHandler); ok {
		for _, a := range im.cursor.Attrs() {
			if err := im.ctx.Err(); err != nil {
				return err
			}
			h.HandleAttr(a.Name, a.Value)
			im.reportProgress()
		}
		return nil
	}
	for _, a := range im.cursor.Attrs() {
		if err := im.ctx.Err(); err != nil {
			return err
		}
		if attr := def.Attr(a.Name); attr != nil {
			if err := attr.Set(n, a.Value); err != nil {
				if errors.Is(err, scalars.ErrUnsupportedKind) {
					return err
				}
				im.stats.InvalidValues++
				logger.Warning(fmt.Sprintf("%s: attribute «%s» value «%s» is not valid: %v", n.Elem().Path(), a.Name, a.Value, err))
			}
		} else {
			im.stats.UnmatchedAttrs++
			logger.Warning(fmt.Sprintf("%s: unmatched attribute «%s»", n.Elem().Path(), a.Name))
		}
		im.reportProgress()
	}
	return nil
}

// readText accumulates character data up to the node's end tag and sets
// it through the text binding. Elements inside a text node are skipped.
func (im *importer) readText(n elements.Node, def schemas.INodeDef) error {
	text := strings.Builder{}
	for {
		if err := im.ctx.Err(); err != nil {
			return err
		}
		kind, err := im.cursor.Next()
		if err != nil {
			return malformed(err)
		}
		switch kind {
		case xmlio.TokenKind_Text:
			text.WriteString(im.cursor.Text())
		case xmlio.TokenKind_StartTag:
			im.stats.UnmatchedChildren++
			logger.Warning(fmt.Sprintf("%s: unmatched child «%s»", n.Elem().Path(), im.cursor.Tag()))
			if err := im.cursor.Skip(); err != nil {
				return malformed(err)
			}
		case xmlio.TokenKind_EndTag:
			if bind := def.Text(); bind != nil {
				if err := bind.Set(n, text.String()); err != nil {
					if errors.Is(err, scalars.ErrUnsupportedKind) {
						return err
					}
					im.stats.InvalidValues++
					logger.Warning(fmt.Sprintf("%s: text «%s» is not valid: %v", n.Elem().Path(), text.String(), err))
				}
			}
			return nil
		case xmlio.TokenKind_EOF:
			return fmt.Errorf("%w: unexpected end of document", ErrMalformedDocument)
		}
	}
}

// readChildren reads child elements up to the node's end tag, resolving
// each tag to a node type and counting rule occurrences. The sibling
// position advances for every child tag, matched or not. Character data
// between children is not mapped.
func (im *importer) readChildren(n elements.Node, def schemas.INodeDef, version schemas.Version) error {
	tracker := newOccursTracker(def)
	resolver, manual := n.(ChildResolver)
	for {
		if err := im.ctx.Err(); err != nil {
			return err
		}
		kind, err := im.cursor.Next()
		if err != nil {
			return malformed(err)
		}
		switch kind {
		case xmlio.TokenKind_Text:
			continue
		case xmlio.TokenKind_EOF:
			return fmt.Errorf("%w: unexpected end of document", ErrMalformedDocument)
		case xmlio.TokenKind_EndTag:
			im.sweepUnderCounts(n, tracker, version)
			return nil
		case xmlio.TokenKind_StartTag:
			im.reportProgress()
			tag := im.cursor.Tag()
			if manual {
				if err := im.readResolvedChild(n, resolver, tag, version); err != nil {
					return err
				}
				continue
			}
			res := im.resolve(def, tag, version)
			switch res.kind {
			case resolveUnsupported:
				im.stats.UnsupportedChildren++
				logger.Warning(fmt.Sprintf("%s: unsupported child «%s» skipped", n.Elem().Path(), tag))
				if err := im.skipChild(n); err != nil {
					return err
				}
			case resolveChild:
				if _, over := tracker.childSeen(res.rule); over {
					im.stats.OverCounts++
					rule := tracker.rules[res.rule]
					logger.Warning(fmt.Sprintf("%s: more than %v children of «%s»", n.Elem().Path(), rule.MaxOccurs(), ruleTypes(rule)))
				}
				if _, err := im.readNode(im.reg.NodeDefByName(res.typ), n, version); err != nil {
					return err
				}
			case resolveChoice:
				tracker.choiceSeen(res.rule, res.pick)
				if _, err := im.readNode(im.reg.NodeDefByName(res.typ), n, version); err != nil {
					return err
				}
			default:
				im.stats.UnmatchedChildren++
				logger.Warning(fmt.Sprintf("%s: unmatched child «%s»", n.Elem().Path(), tag))
				if err := im.skipChild(n); err != nil {
					return err
				}
			}
		}
	}
}

// readResolvedChild reads one child of a node resolving children
// manually.
func (im *importer) readResolvedChild(n elements.Node, r ChildResolver, tag string, version schemas.Version) error {
	typ := r.ResolveChild(tag, version)
	if typ == schemas.NullQName {
		im.stats.SkippedSubtrees++
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%s: child «%s» skipped by resolver", n.Elem().Path(), tag))
		}
		return im.skipChild(n)
	}
	def := im.reg.NodeDefByName(typ)
	if def == nil {
		im.stats.UnmatchedChildren++
		logger.Warning(fmt.Sprintf("%s: child «%s» resolved to unknown type «%v»", n.Elem().Path(), tag, typ))
		return im.skipChild(n)
	}
	_, err := im.readNode(def, n, version)
	return err
}

// skipChild consumes the current child subtree keeping the sibling
// position advancing.
func (im *importer) skipChild(n elements.Node) error {
	n.Elem().ReservePos()
	if err := im.cursor.Skip(); err != nil {
		return malformed(err)
	}
	return nil
}

func (im *importer) sweepUnderCounts(n elements.Node, t *occursTracker, version schemas.Version) {
	for _, u := range t.underCounts(im.reg, version) {
		im.stats.UnderCounts++
		logger.Warning(fmt.Sprintf("%s: expected at least %v children of «%s», read %v", n.Elem().Path(), u.rule.MinOccurs(), ruleTypes(u.rule), u.got))
	}
}

type resolveKind uint8

const (
	resolveNone resolveKind = iota
	resolveChild
	resolveChoice
	resolveUnsupported
)

// resolveKey identifies one child resolution decision.
type resolveKey struct {
	owner   schemas.QName
	tag     string
	version schemas.Version
}

// resolution is the outcome of resolving a child tag against the owner
// type rules. The outcome depends on the owner type, the tag and the
// active version only, so it is cacheable.
type resolution struct {
	kind resolveKind
	typ  schemas.QName
	rule int
	pick int
}

func (im *importer) resolve(def schemas.INodeDef, tag string, version schemas.Version) resolution {
	if im.cache == nil {
		return im.resolveTag(def, tag, version)
	}
	key := resolveKey{owner: def.QName(), tag: tag, version: version}
	if res, ok := im.cache.Get(key); ok {
		im.stats.CacheHits++
		return res
	}
	res := im.resolveTag(def, tag, version)
	im.cache.Add(key, res)
	return res
}

// resolveTag resolves a child tag: unsupported markers first, then
// child rules in declaration order, then choice rules in declaration
// order with the first rule and type pair winning.
func (im *importer) resolveTag(def schemas.INodeDef, tag string, version schemas.Version) resolution {
	if def.Unsupported(tag) {
		return resolution{kind: resolveUnsupported}
	}
	res := resolution{kind: resolveNone}
	rule := 0
	def.ChildRules(func(r schemas.IChildRule) {
		if res.kind == resolveNone {
			if typ, ok := im.matchCandidate(r, tag, version); ok {
				res = resolution{kind: resolveChild, typ: typ, rule: rule}
			}
		}
		rule++
	})
	if res.kind != resolveNone {
		return res
	}
	rule = 0
	def.ChoiceRules(func(r schemas.IChoiceRule) {
		if res.kind == resolveNone {
			pick := 0
			r.Types(func(typ schemas.QName) {
				if res.kind == resolveNone {
					if d := im.reg.NodeDefByName(typ); d != nil && schemas.Matches(d, tag, version) {
						res = resolution{kind: resolveChoice, typ: typ, rule: rule, pick: pick}
					}
				}
				pick++
			})
		}
		rule++
	})
	return res
}

// matchCandidate scans the rule candidates for the first definition
// matching the tag and version, falling back to the first wildcard tag
// definition with a matching version.
func (im *importer) matchCandidate(r schemas.IChildRule, tag string, version schemas.Version) (schemas.QName, bool) {
	named, wildcard := schemas.NullQName, schemas.NullQName
	r.Types(func(typ schemas.QName) {
		d := im.reg.NodeDefByName(typ)
		if d == nil || !schemas.Matches(d, tag, version) {
			return
		}
		if d.Tag() == "" {
			if wildcard == schemas.NullQName {
				wildcard = typ
			}
		} else if named == schemas.NullQName {
			named = typ
		}
	})
	if named != schemas.NullQName {
		return named, true
	}
	if wildcard != schemas.NullQName {
		return wildcard, true
	}
	return schemas.NullQName, false
}

// reportProgress reports the consumed input fraction. Reports are
// monotone; the final 1 is reported by the entry point on completion.
func (im *importer) reportProgress() {
	if im.progress == nil {
		return
	}
	size := im.cursor.Len()
	if size <= 0 {
		return
	}
	f := float64(im.cursor.Pos()) / float64(size)
	if f >= 1 || f <= im.lastFraction {
		return
	}
	im.lastFraction = f
	im.progress(f)
}

func (im *importer) finishProgress() {
	if im.progress == nil {
		return
	}
	im.lastFraction = 1
	im.progress(1)
}
