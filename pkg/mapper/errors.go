/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package mapper

import (
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when the document structure can not
// be read: tokenizer failures, mismatched close tags, unexpected end of
// document, elements without a resolvable name.
var ErrMalformedDocument = errors.New("malformed document")

// ErrUnnamedRootType is returned when the root node type declares no
// tag to look the root element up by.
var ErrUnnamedRootType = errors.New("root node type has no tag")

// ErrRootNotFound is returned when the document ends before an element
// matching the root node type is found.
var ErrRootNotFound = errors.New("root element not found")

// ErrForeignNode is returned when writing meets a node whose definition
// does not come from a schema registry.
var ErrForeignNode = errors.New("foreign node")

// malformed ties a tokenizer failure to ErrMalformedDocument.
func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
}
