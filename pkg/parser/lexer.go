/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"io"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The lexer works line by line: indentation of a line is translated into
// Indent/Dedent tokens, the end of a line into NL. Inside brackets both are
// suppressed, so container literals may span lines.
type ndlLexerDefinition struct{}

func (d *ndlLexerDefinition) Symbols() map[string]lexer.TokenType {
	return symbols
}

func (d *ndlLexerDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenize(filename, string(data))
	if err != nil {
		return nil, err
	}
	return &tokenIterator{tokens: tokens}, nil
}

type tokenIterator struct {
	tokens []lexer.Token
	next   int
	eof    lexer.Position
}

func (l *tokenIterator) Next() (lexer.Token, error) {
	if l.next < len(l.tokens) {
		t := l.tokens[l.next]
		l.next++
		l.eof = t.Pos
		return t, nil
	}
	return lexer.Token{Type: lexer.EOF, Pos: l.eof}, nil
}

var lexRules = []struct {
	typ lexer.TokenType
	re  *regexp.Regexp
}{
	{tokFloat, regexp.MustCompile(`^[+-]?\d+\.\d+`)},
	{tokInt, regexp.MustCompile(`^[+-]?\d+`)},
	{tokString, regexp.MustCompile(`^("(\\"|[^"])*"|'(\\'|[^'])*')`)},
	{tokOperator, regexp.MustCompile(`^([+\-*/|&]=|=)`)},
	{tokEllipsis, regexp.MustCompile(`^\.\.\.`)},
	{tokIdent, regexp.MustCompile(`^[a-zA-Z_]\w*`)},
	{tokPunct, regexp.MustCompile(`^[()<>\[\]{}:,.@+]`)},
}

func tokenize(filename, source string) ([]lexer.Token, error) {
	tokens := make([]lexer.Token, 0, 64)
	indents := []int{0}
	depth := 0
	offset := 0

	lines := strings.Split(source, "\n")
	for li, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		lineNo := li + 1
		col := 1
		rest := line
		at := func() lexer.Position {
			return lexer.Position{Filename: filename, Offset: offset + col - 1, Line: lineNo, Column: col}
		}
		advance := func(n int) {
			rest = rest[n:]
			col += n
		}

		if depth == 0 {
			n := 0
			for n < len(rest) && rest[n] == ' ' {
				n++
			}
			if n < len(rest) && rest[n] == '\t' {
				return nil, errTokenize(at(), "tab in indentation")
			}
			if content := rest[n:]; content == "" || content[0] == '#' {
				offset += len(raw) + 1
				continue
			}
			advance(n)
			if n > indents[len(indents)-1] {
				indents = append(indents, n)
				tokens = append(tokens, lexer.Token{Type: tokIndent, Value: "", Pos: at()})
			} else {
				for n < indents[len(indents)-1] {
					indents = indents[:len(indents)-1]
					tokens = append(tokens, lexer.Token{Type: tokDedent, Value: "", Pos: at()})
				}
				if n != indents[len(indents)-1] {
					return nil, errTokenize(at(), "unindent does not match any outer block")
				}
			}
		} else {
			n := 0
			for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
				n++
			}
			advance(n)
			if rest == "" || rest[0] == '#' {
				offset += len(raw) + 1
				continue
			}
		}

		for len(rest) > 0 {
			if rest[0] == ' ' || rest[0] == '\t' {
				advance(1)
				continue
			}
			if rest[0] == '#' {
				break
			}
			matched := false
			for _, rule := range lexRules {
				m := rule.re.FindString(rest)
				if m == "" {
					continue
				}
				tokens = append(tokens, lexer.Token{Type: rule.typ, Value: m, Pos: at()})
				if rule.typ == tokPunct {
					switch m {
					case "(", "[", "{", "<":
						depth++
					case ")", "]", "}", ">":
						if depth > 0 {
							depth--
						}
					}
				}
				advance(len(m))
				matched = true
				break
			}
			if !matched {
				return nil, errTokenize(at(), "unexpected character «%c»", rest[0])
			}
		}

		if depth == 0 {
			tokens = append(tokens, lexer.Token{Type: tokNL, Value: "\n", Pos: at()})
		}
		offset += len(raw) + 1
	}

	end := lexer.Position{Filename: filename, Offset: len(source), Line: len(lines), Column: 1}
	for len(indents) > 1 {
		indents = indents[:len(indents)-1]
		tokens = append(tokens, lexer.Token{Type: tokDedent, Value: "", Pos: end})
	}
	return tokens, nil
}
