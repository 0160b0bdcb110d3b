/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 */

package mapper

import (
	"context"
	"fmt"
	"strings"

	"github.com/xmldef/xmldef/pkg/elements"
	"github.com/xmldef/xmldef/pkg/schemas"
	"github.com/xmldef/xmldef/pkg/xmlio"
)

// Export writes the tree under n into the writer, document start and
// end included.
//
// The write mirrors the read order: the namespace declaration and the
// attributes in declaration order on the start tag, optional zero
// values elided; text content for text node types, children in position
// order otherwise. The tree is not re-validated.
func Export(ctx context.Context, n elements.Node, w Writer) error {
	if err := w.StartDocument(); err != nil {
		return err
	}
	if err := exportNode(ctx, n, w); err != nil {
		return err
	}
	return w.EndDocument()
}

func exportNode(ctx context.Context, n elements.Node, w Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	def, ok := n.Elem().Def().(schemas.INodeDef)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, n)
	}
	name := n.Elem().Name()
	if name == "" {
		return fmt.Errorf("%w: «%v» element name is missed", ErrMalformedDocument, def.QName())
	}

	attrs, err := exportAttrs(ctx, n, def)
	if err != nil {
		return err
	}
	if err := w.StartElement(name, attrs...); err != nil {
		return err
	}

	if def.IsText() {
		if bind := def.Text(); bind != nil {
			text, _, err := bind.Get(n)
			if err != nil {
				return err
			}
			if text != "" {
				if err := w.Text(text); err != nil {
					return err
				}
			}
		}
	} else {
		n.Elem().Children(func(k elements.Node) bool {
			err = exportNode(ctx, k, w)
			return err == nil
		})
		if err != nil {
			return err
		}
	}

	return w.EndElement()
}

// exportAttrs collects the attributes to write: the namespace
// declaration first, then the bindings in declaration order. A zero
// value is elided unless the binding is required.
func exportAttrs(ctx context.Context, n elements.Node, def schemas.INodeDef) ([]xmlio.Attr, error) {
	attrs := []xmlio.Attr(nil)

	ns := def.NamespaceAttr()
	if ns != "" {
		if a := def.Attr(ns); a != nil {
			text, zero, err := a.Get(n)
			if err != nil {
				return nil, err
			}
			if !zero || a.Required() {
				attrs = append(attrs, xmlio.Attr{Name: a.Name(), Value: text})
			}
		}
	}

	var err error
	def.Attrs(func(a schemas.IAttrDef) {
		if err != nil {
			return
		}
		if ns != "" && strings.EqualFold(a.Name(), ns) {
			return
		}
		if err = ctx.Err(); err != nil {
			return
		}
		text, zero, e := a.Get(n)
		if e != nil {
			err = e
			return
		}
		if zero && !a.Required() {
			return
		}
		attrs = append(attrs, xmlio.Attr{Name: a.Name(), Value: text})
	})
	if err != nil {
		return nil, err
	}
	return attrs, nil
}
