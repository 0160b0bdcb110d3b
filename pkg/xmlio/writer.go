/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 */

package xmlio

import (
	"encoding/xml"
	"io"
)

// Writer is a push writer assembling an XML document element by element.
// Attribute values and character data are escaped by the underlying
// encoder.
type Writer struct {
	e     *xml.Encoder
	cnt   *countingWriter
	stack []xml.Name
}

// NewWriter returns a writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	cnt := &countingWriter{w: w}
	return &Writer{e: xml.NewEncoder(cnt), cnt: cnt}
}

// SetIndent instructs the writer to emit nested elements on fresh lines,
// each prefixed and indented per nesting level.
func (w *Writer) SetIndent(prefix, indent string) {
	w.e.Indent(prefix, indent)
}

// StartDocument writes the document header.
func (w *Writer) StartDocument() error {
	return w.e.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)})
}

// StartElement opens an element with the specified attributes, emitted in
// the specified order.
func (w *Writer) StartElement(name string, attrs ...Attr) error {
	n := xml.Name{Local: name}
	aa := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		aa = append(aa, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := w.e.EncodeToken(xml.StartElement{Name: n, Attr: aa}); err != nil {
		return err
	}
	w.stack = append(w.stack, n)
	return nil
}

// Text writes character data into the open element.
func (w *Writer) Text(s string) error {
	return w.e.EncodeToken(xml.CharData(s))
}

// EndElement closes the innermost open element.
func (w *Writer) EndElement() error {
	n := w.stack[len(w.stack)-1]
	if err := w.e.EncodeToken(xml.EndElement{Name: n}); err != nil {
		return err
	}
	w.stack = w.stack[:len(w.stack)-1]
	return nil
}

// EndDocument closes every open element and flushes the encoder.
func (w *Writer) EndDocument() error {
	for len(w.stack) > 0 {
		if err := w.EndElement(); err != nil {
			return err
		}
	}
	return w.e.Flush()
}

// Pos returns the number of bytes produced so far. The encoder is flushed
// to keep the count exact.
func (w *Writer) Pos() int64 {
	_ = w.e.Flush()
	return w.cnt.n
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
