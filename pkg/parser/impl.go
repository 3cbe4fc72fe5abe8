/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"github.com/alecthomas/participle/v2"
)

var ndlParser = participle.MustBuild[FileAST](
	participle.Lexer(&ndlLexerDefinition{}),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

func parseImpl(fileName string, content string) (*FileAST, error) {
	ast, err := ndlParser.ParseString(fileName, content)
	if err != nil {
		return nil, errParse(fileName, err)
	}
	return ast, nil
}
