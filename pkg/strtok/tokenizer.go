// Package strtok splits a string on a literal delimiter, one token at a time.
package strtok

import (
	"strings"
)

// A Tokenizer walks a source string and hands back the text between
// successive occurrences of a delimiter.
//
// It's forward-only: each call to Next() consumes one token and there's no
// way to rewind. Callers usually drive it like:
//
//	t := strtok.New("a,b,c", ",")
//	for t.HasNext() {
//		fmt.Println(t.Next())
//	}
//
// The delimiter is matched as a literal byte sequence, never as a pattern.
// An empty delimiter never matches, so the whole source comes back as a
// single token.
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	source    string
	delimiter string
	pos       int

	sourceLen    int
	delimiterLen int
}

// New returns a Tokenizer positioned at the start of source.
func New(source, delimiter string) *Tokenizer {
	return &Tokenizer{
		source:       source,
		delimiter:    delimiter,
		pos:          0,
		sourceLen:    len(source),
		delimiterLen: len(delimiter),
	}
}

// HasNext reports whether any of the source is left unconsumed.
//
// Note that this is about input, not tokens. A source ending in the delimiter
// is exhausted as soon as that final delimiter is consumed.
func (t *Tokenizer) HasNext() bool {
	return t.pos < t.sourceLen
}

// Next returns the text up to the next delimiter and moves past it.
//
// Once the source is exhausted, Next returns "" and leaves the tokenizer
// where it is.
func (t *Tokenizer) Next() string {
	if !t.HasNext() {
		return ""
	}

	rest := t.source[t.pos:]
	i := t.index(rest)
	if i == -1 {
		t.pos = t.sourceLen
		return rest
	}

	t.pos += i + t.delimiterLen
	return rest[:i]
}

// NextTrimmed is Next with leading and trailing white space removed.
func (t *Tokenizer) NextTrimmed() string {
	return strings.TrimSpace(t.Next())
}

// Position returns the number of bytes of the source consumed so far.
func (t *Tokenizer) Position() int {
	return t.pos
}

// Remaining returns the unconsumed part of the source without advancing.
func (t *Tokenizer) Remaining() string {
	return t.source[t.pos:]
}

// Tokens drains the tokenizer.
func (t *Tokenizer) Tokens() []string {
	return t.drain(t.Next)
}

// TrimmedTokens drains the tokenizer, trimming each token.
func (t *Tokenizer) TrimmedTokens() []string {
	return t.drain(t.NextTrimmed)
}

func (t *Tokenizer) drain(next func() string) []string {
	result := []string{}
	for t.HasNext() {
		result = append(result, next())
	}
	return result
}

// strings.Index matches the empty string at offset 0, which would never
// advance the cursor.
func (t *Tokenizer) index(s string) int {
	if t.delimiterLen == 0 {
		return -1
	}
	return strings.Index(s, t.delimiter)
}

// Split returns every token of source. Unlike strings.Split, a source that
// ends in the delimiter doesn't get a trailing empty token, and an empty
// source has no tokens at all.
func Split(source, delimiter string) []string {
	return New(source, delimiter).Tokens()
}
