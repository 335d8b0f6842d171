// Package token splits dotted path expressions into member/index tokens.
//
// A path is a sequence of segments separated by '.', each naming a member
// and optionally ending in a bracketed non-negative integer indexer:
//
//	OriginalSource.Items[0].Title
//
// Tokenizing never fails. A segment whose indexer cannot be parsed as a
// base-10 non-negative integer (missing bracket, sign, fraction, empty)
// folds back into a plain member name that still contains the bracket
// characters; resolving such a name later reports not found.
package token

import (
	"strconv"
	"strings"
)

// Token is one parsed path segment: a member name and an optional index.
// The zero index is distinguished from "no index" by HasIndex.
type Token struct {
	Name     string
	Index    int
	HasIndex bool
}

// String renders the token in path syntax.
func (t Token) String() string {
	if !t.HasIndex {
		return t.Name
	}
	return t.Name + "[" + strconv.Itoa(t.Index) + "]"
}

// Tokenize splits a path expression into its ordered tokens.
//
// Segments are trimmed of surrounding whitespace and empty segments are
// discarded, so "Child..Name" and " Child . Name " both tokenize the same
// as "Child.Name". A segment may consist solely of an indexer ("[0]"),
// which produces a token with an empty name.
func Tokenize(path string) []Token {
	segments := strings.Split(path, ".")
	tokens := make([]Token, 0, len(segments))

	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		tokens = append(tokens, parseSegment(segment))
	}

	return tokens
}

// parseSegment extracts a trailing "[<index>]" indexer from a trimmed
// segment. The index candidate is the text between the last '[' and the
// trailing ']'; anything ParseUint rejects (signs, fractions, whitespace,
// empty text, values too large for a non-negative int) folds the entire
// segment into a plain name.
func parseSegment(segment string) Token {
	if !strings.HasSuffix(segment, "]") {
		return Token{Name: segment}
	}

	open := strings.LastIndexByte(segment, '[')
	if open < 0 {
		return Token{Name: segment}
	}

	index, err := strconv.ParseUint(segment[open+1:len(segment)-1], 10, strconv.IntSize-1)
	if err != nil {
		return Token{Name: segment}
	}

	return Token{Name: segment[:open], Index: int(index), HasIndex: true}
}
