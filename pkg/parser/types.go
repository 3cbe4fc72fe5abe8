/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parsed source file: imports first, then objects.
type FileAST struct {
	Pos lexer.Position

	Imports []*ImportAST `parser:"@@*"`
	Objects []*ObjectAST `parser:"@@*"`
}

// `import ns.sub` or `import ns.sub as alias`
type ImportAST struct {
	Pos lexer.Position

	Namespace *RefAST `parser:"'import' @@"`
	Alias     string  `parser:"('as' @Ident)? NL"`
}

// Object declaration:
//
//	Name<Target>[+Parent, ...](Parent, ...):
//	    <members and nested objects>
//
// A target marks the object as a patch; the loader accepts the
// inheritance-add list on patches only.
type ObjectAST struct {
	Pos lexer.Position

	Name       string    `parser:"@Ident"`
	Target     *RefAST   `parser:"('<' @@ '>')?"`
	ParentsAdd []*RefAST `parser:"('[' '+' @@ (',' '+' @@)* ']')?"`
	Parents    []*RefAST `parser:"'(' (@@ (',' @@)*)? ')' ':' NL"`
	Body       *BodyAST  `parser:"@@"`
}

// Indented object body: `pass`/`...` or a run of members and nested objects.
type BodyAST struct {
	Pos lexer.Position

	Pass  string         `parser:"Indent ( ( @('pass' | Ellipsis) NL )"`
	Items []*BodyItemAST `parser:"| @@+ ) Dedent"`
}

type BodyItemAST struct {
	Member *MemberAST `parser:"@@"`
	Object *ObjectAST `parser:"| @@"`
}

// Member declaration: `name [: type] [op value]`. The `@` prefix count is
// the override depth.
type MemberAST struct {
	Pos lexer.Position

	Overrides []string  `parser:"@'@'*"`
	Name      string    `parser:"@Ident"`
	Type      *TypeAST  `parser:"(':' @@)?"`
	Operation string    `parser:"( @Operator"`
	Value     *ValueAST `parser:"  @@ )? NL"`
}

// Returns the override depth declared by the `@` prefix
func (m *MemberAST) OverrideDepth() int { return len(m.Overrides) }

// Type usage: a primitive name, a container with an element payload, or an
// object reference.
type TypeAST struct {
	Pos lexer.Position

	Name    *RefAST  `parser:"@@"`
	Payload *TypeAST `parser:"('(' @@ ')')?"`
}

// Literal or reference value.
type ValueAST struct {
	Pos lexer.Position

	Float     *float64    `parser:"@Float"`
	Int       *int64      `parser:"| @Int"`
	BoolLit   *string     `parser:"| @('True' | 'False')"`
	StringLit *string     `parser:"| @String"`
	IsSet     bool        `parser:"| ( @'{'"`
	SetItems  []*ValueAST `parser:"    (@@ (',' @@)*)? '}' )"`
	IsOrdSet  bool        `parser:"| ( @'<'"`
	OrdItems  []*ValueAST `parser:"    (@@ (',' @@)*)? '>' )"`
	Ref       *RefAST     `parser:"| @@"`
}

// Possibly dotted identifier, e.g. `alias.sub.Name`.
type RefAST struct {
	Pos lexer.Position

	Parts []string `parser:"@Ident ('.' @Ident)*"`
}

func (r *RefAST) String() string {
	return strings.Join(r.Parts, ".")
}
