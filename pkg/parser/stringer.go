/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package parser

import (
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

const indentStep = "    "

// Renders the AST back to canonical NDL source. Reparsing the result yields
// a structurally equivalent AST.
func (f *FileAST) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, imp := range f.Imports {
		buf.WriteString("import ")
		buf.WriteString(imp.Namespace.String())
		if imp.Alias != "" {
			buf.WriteString(" as ")
			buf.WriteString(imp.Alias)
		}
		buf.WriteString("\n")
	}
	if len(f.Imports) > 0 && len(f.Objects) > 0 {
		buf.WriteString("\n")
	}
	for i, obj := range f.Objects {
		if i > 0 {
			buf.WriteString("\n")
		}
		obj.strb(buf, 0)
	}
	return buf.String()
}

func (o *ObjectAST) strb(buf *bytebufferpool.ByteBuffer, level int) {
	prefix := strings.Repeat(indentStep, level)
	buf.WriteString(prefix)
	buf.WriteString(o.Name)
	if o.Target != nil {
		buf.WriteString("<")
		buf.WriteString(o.Target.String())
		buf.WriteString(">")
	}
	if len(o.ParentsAdd) > 0 {
		buf.WriteString("[")
		for i, p := range o.ParentsAdd {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString("+")
			buf.WriteString(p.String())
		}
		buf.WriteString("]")
	}
	buf.WriteString("(")
	for i, p := range o.Parents {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.String())
	}
	buf.WriteString("):\n")

	inner := strings.Repeat(indentStep, level+1)
	if o.Body.Pass != "" {
		buf.WriteString(inner)
		buf.WriteString(o.Body.Pass)
		buf.WriteString("\n")
		return
	}
	for _, item := range o.Body.Items {
		switch {
		case item.Member != nil:
			item.Member.strb(buf, level+1)
		case item.Object != nil:
			item.Object.strb(buf, level+1)
		}
	}
}

func (m *MemberAST) strb(buf *bytebufferpool.ByteBuffer, level int) {
	buf.WriteString(strings.Repeat(indentStep, level))
	buf.WriteString(strings.Repeat("@", m.OverrideDepth()))
	buf.WriteString(m.Name)
	if m.Type != nil {
		buf.WriteString(" : ")
		buf.WriteString(m.Type.String())
	}
	if m.Operation != "" {
		buf.WriteString(" ")
		buf.WriteString(m.Operation)
		buf.WriteString(" ")
		buf.WriteString(m.Value.String())
	}
	buf.WriteString("\n")
}

func (t *TypeAST) String() string {
	if t.Payload != nil {
		return t.Name.String() + "(" + t.Payload.String() + ")"
	}
	return t.Name.String()
}

func (v *ValueAST) String() string {
	switch {
	case v.Float != nil:
		s := strconv.FormatFloat(*v.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case v.Int != nil:
		return strconv.FormatInt(*v.Int, 10)
	case v.BoolLit != nil:
		return *v.BoolLit
	case v.StringLit != nil:
		return strconv.Quote(*v.StringLit)
	case v.IsSet:
		return joinValues("{", "}", v.SetItems)
	case v.IsOrdSet:
		return joinValues("<", ">", v.OrdItems)
	case v.Ref != nil:
		return v.Ref.String()
	}
	return ""
}

func joinValues(open, close string, items []*ValueAST) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return open + strings.Join(parts, ", ") + close
}
