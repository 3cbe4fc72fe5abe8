/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Token types emitted by the NDL lexer. Indent, Dedent and NL are synthetic:
// the lexer derives them from line structure so the grammar can treat blocks
// like any other production.
const (
	tokNL lexer.TokenType = -(iota + 2)
	tokIndent
	tokDedent
	tokIdent
	tokInt
	tokFloat
	tokString
	tokOperator
	tokEllipsis
	tokPunct
)

var symbols = map[string]lexer.TokenType{
	"EOF":      lexer.EOF,
	"NL":       tokNL,
	"Indent":   tokIndent,
	"Dedent":   tokDedent,
	"Ident":    tokIdent,
	"Int":      tokInt,
	"Float":    tokFloat,
	"String":   tokString,
	"Operator": tokOperator,
	"Ellipsis": tokEllipsis,
	"Punct":    tokPunct,
}
