/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package mapper

import (
	"bytes"
	"context"

	"github.com/valyala/bytebufferpool"

	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/schemas"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

// Import reads a document from the cursor into a tree of the specified
// root type.
//
// The root type must declare a tag; top level content not matching it
// is skipped. Recoverable mapping problems are reported to the logger
// and do not interrupt the read; malformed documents, unsupported
// binding targets and context cancellation do.
func Import(ctx context.Context, reg schemas.IRegistry, root schemas.QName, cursor Cursor, opts ...Option) (elements.Node, error) {
	n, _, err := ImportWithStats(ctx, reg, root, cursor, opts...)
	return n, err
}

// ImportWithStats is Import returning the reading counters alongside.
func ImportWithStats(ctx context.Context, reg schemas.IRegistry, root schemas.QName, cursor Cursor, opts ...Option) (elements.Node, ImportStats, error) {
	im := newImporter(ctx, reg, cursor, opts)
	n, err := im.importRoot(root)
	if err != nil {
		return nil, im.stats, err
	}
	im.finishProgress()
	return n, im.stats, nil
}

// Unmarshal reads a document from data into a tree of the specified
// root type.
func Unmarshal(ctx context.Context, reg schemas.IRegistry, root schemas.QName, data []byte, opts ...Option) (elements.Node, error) {
	return Import(ctx, reg, root, xmlio.NewReader(bytes.NewReader(data)), opts...)
}

// Marshal writes the tree under n into a document returned as bytes.
func Marshal(ctx context.Context, n elements.Node) ([]byte, error) {
	return marshal(ctx, n, "", "")
}

// MarshalIndent is Marshal with nested elements indented.
func MarshalIndent(ctx context.Context, n elements.Node, prefix, indent string) ([]byte, error) {
	return marshal(ctx, n, prefix, indent)
}

func marshal(ctx context.Context, n elements.Node, prefix, indent string) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w := xmlio.NewWriter(buf)
	if prefix != "" || indent != "" {
		w.SetIndent(prefix, indent)
	}
	if err := Export(ctx, n, w); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
