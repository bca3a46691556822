// Package astutil renders dst type expressions back to Go source for generated stubs.
package astutil

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/dave/dst"
)

// Qualifier rewrites a bare type identifier, e.g. to add a package prefix when
// the stub lives outside the interface's package. It gets only identifiers
// that are not part of a selector expression.
type Qualifier func(name string) string

// Keep is the Qualifier that leaves every identifier alone.
func Keep(name string) string {
	return name
}

// PackageRefs returns the package names referenced through selector
// expressions in expr, such as "io" in "map[string]io.Reader".
func PackageRefs(expr dst.Expr) []string {
	var refs []string

	dst.Inspect(expr, func(node dst.Node) bool {
		selector, ok := node.(*dst.SelectorExpr)
		if !ok {
			return true
		}

		if ident, ok := selector.X.(*dst.Ident); ok {
			refs = append(refs, ident.Name)
		}

		return false
	})

	return refs
}

// QualifyExported prefixes exported identifiers with pkg, leaving predeclared
// and unexported names untouched.
func QualifyExported(pkg string) Qualifier {
	return func(name string) string {
		if name == "" || !token.IsExported(name) {
			return name
		}

		return pkg + "." + name
	}
}

// TypeString renders a type expression as Go source.
//
//nolint:cyclop // one case per expression kind
func TypeString(expr dst.Expr, qualify Qualifier) string {
	switch typed := expr.(type) {
	case nil:
		return ""
	case *dst.Ident:
		return qualify(typed.Name)
	case *dst.BasicLit:
		return typed.Value
	case *dst.SelectorExpr:
		return TypeString(typed.X, Keep) + "." + typed.Sel.Name
	case *dst.StarExpr:
		return "*" + TypeString(typed.X, qualify)
	case *dst.ArrayType:
		return "[" + TypeString(typed.Len, Keep) + "]" + TypeString(typed.Elt, qualify)
	case *dst.MapType:
		return "map[" + TypeString(typed.Key, qualify) + "]" + TypeString(typed.Value, qualify)
	case *dst.ChanType:
		return chanPrefix(typed.Dir) + TypeString(typed.Value, qualify)
	case *dst.Ellipsis:
		return "..." + TypeString(typed.Elt, qualify)
	case *dst.FuncType:
		return "func" + Signature(typed, qualify)
	case *dst.InterfaceType:
		return interfaceString(typed, qualify)
	case *dst.StructType:
		return structString(typed, qualify)
	case *dst.IndexExpr:
		return TypeString(typed.X, qualify) + "[" + TypeString(typed.Index, qualify) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typed.Indices))
		for i, index := range typed.Indices {
			indices[i] = TypeString(index, qualify)
		}

		return TypeString(typed.X, qualify) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + TypeString(typed.X, qualify) + ")"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// Signature renders the parameter and result lists of a function type, without
// the leading "func" keyword: "(int, string) (bool, error)".
func Signature(funcType *dst.FuncType, qualify Qualifier) string {
	params := fieldTypes(funcType.Params, qualify)
	results := fieldTypes(funcType.Results, qualify)

	rendered := "(" + strings.Join(params, ", ") + ")"

	switch len(results) {
	case 0:
		return rendered
	case 1:
		return rendered + " " + results[0]
	default:
		return rendered + " (" + strings.Join(results, ", ") + ")"
	}
}

func chanPrefix(dir dst.ChanDir) string {
	switch dir {
	case dst.SEND:
		return "chan<- "
	case dst.RECV:
		return "<-chan "
	default:
		return "chan "
	}
}

// fieldTypes renders one type per declared name, so "a, b int" gives two entries.
func fieldTypes(fields *dst.FieldList, qualify Qualifier) []string {
	if fields == nil {
		return nil
	}

	var types []string

	for _, field := range fields.List {
		rendered := TypeString(field.Type, qualify)

		for range max(len(field.Names), 1) {
			types = append(types, rendered)
		}
	}

	return types
}

func interfaceString(iface *dst.InterfaceType, qualify Qualifier) string {
	if iface.Methods == nil || len(iface.Methods.List) == 0 {
		return "interface{}"
	}

	elements := make([]string, 0, len(iface.Methods.List))

	for _, method := range iface.Methods.List {
		funcType, ok := method.Type.(*dst.FuncType)
		if !ok || len(method.Names) == 0 {
			elements = append(elements, TypeString(method.Type, qualify))

			continue
		}

		elements = append(elements, method.Names[0].Name+Signature(funcType, qualify))
	}

	return "interface{ " + strings.Join(elements, "; ") + " }"
}

func structString(structType *dst.StructType, qualify Qualifier) string {
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return "struct{}"
	}

	fields := make([]string, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		names := make([]string, len(field.Names))
		for i, name := range field.Names {
			names[i] = name.Name
		}

		rendered := TypeString(field.Type, qualify)
		if len(names) > 0 {
			rendered = strings.Join(names, ", ") + " " + rendered
		}

		if field.Tag != nil {
			rendered += " " + field.Tag.Value
		}

		fields = append(fields, rendered)
	}

	return "struct{ " + strings.Join(fields, "; ") + " }"
}
