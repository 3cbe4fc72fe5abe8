/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

// Parses a single NDL source file into its AST
func ParseFile(fileName string, content string) (*FileAST, error) {
	return parseImpl(fileName, content)
}
