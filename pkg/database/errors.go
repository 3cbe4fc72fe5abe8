/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package database

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

func errorAt(err error, pos *lexer.Position) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}
