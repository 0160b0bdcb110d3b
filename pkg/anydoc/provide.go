/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package anydoc

import (
	"bytes"
	"context"

	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/mapper"
	"github.com/xmldef/xmldef/pkg/schemas"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

var (
	// QNameRoot names the document root node type. The root tag is bound
	// by New.
	QNameRoot = schemas.MustParseQName("any.Doc")

	// QNameAny names the universal nested node type, wildcard tag.
	QNameAny = schemas.MustParseQName("any.Node")
)

// New builds a registry reading any document whose root element is
// rootTag. Nested elements of any tag become AnyNode trees.
func New(rootTag string) schemas.IRegistry {
	anyNode := func() elements.Node { return &AnyNode{} }

	b := schemas.New()
	b.AddNode(QNameRoot, anyNode).
		SetTag(rootTag).
		AddChildRule(0, schemas.Occurs_Unbounded, QNameAny)
	b.AddNode(QNameAny, anyNode).
		AddChildRule(0, schemas.Occurs_Unbounded, QNameAny)
	return b.MustBuild()
}

// Import reads the document into an AnyNode tree. The root element tag
// is taken from the document itself.
func Import(ctx context.Context, data []byte, opts ...mapper.Option) (*AnyNode, mapper.ImportStats, error) {
	tag, err := rootTag(data)
	if err != nil {
		return nil, mapper.ImportStats{}, err
	}
	reg := New(tag)
	cursor := xmlio.NewReader(bytes.NewReader(data))
	n, stats, err := mapper.ImportWithStats(ctx, reg, QNameRoot, cursor, opts...)
	if err != nil {
		return nil, stats, err
	}
	return n.(*AnyNode), stats, nil
}

// rootTag scans the document prolog for the root element tag.
func rootTag(data []byte) (string, error) {
	r := xmlio.NewReader(bytes.NewReader(data))
	for {
		kind, err := r.Next()
		if err != nil {
			return "", err
		}
		switch kind {
		case xmlio.TokenKind_StartTag:
			return r.Tag(), nil
		case xmlio.TokenKind_EOF:
			return "", mapper.ErrRootNotFound
		}
	}
}
