/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ndllang/ndl/pkg/ndl"
)

var ErrTokenizeError = errors.New("tokenize error")

func errTokenize(pos lexer.Position, msg string, args ...any) error {
	return fmt.Errorf("%s: %w", pos.String(), ndl.EnrichError(ErrTokenizeError, msg, args...))
}

var ErrParseError = errors.New("parse error")

func errParse(fileName string, err error) error {
	return fmt.Errorf("%s: %w: %w", fileName, ErrParseError, err)
}
