/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Maxim Geraskin
 */

package xmlio

// TokenKind is the kind of the document token under the reader cursor.
type TokenKind uint8

const (
	TokenKind_null TokenKind = iota

	// Element start tag. Tag and attributes are available.
	TokenKind_StartTag

	// Element end tag. Tag is available.
	TokenKind_EndTag

	// Character data between tags. Text is available.
	TokenKind_Text

	// End of document.
	TokenKind_EOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenKind_StartTag:
		return "start tag"
	case TokenKind_EndTag:
		return "end tag"
	case TokenKind_Text:
		return "text"
	case TokenKind_EOF:
		return "end of document"
	}
	return "null"
}
