// Package detect finds the interface to stub in parsed package files and
// describes its methods: parameter names, rendered types, and declared defaults.
package detect

import (
	"errors"
	"fmt"
	"go/parser"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/dave/dst"
	astutil "github.com/toejough/golem/golemgen/run/0_util"
)

// Import is one import the generated stub needs.
type Import struct {
	Name string // the name the stub refers to the package by
	Path string
}

// Line renders the import spec, with an explicit name only when it differs
// from the last element of the path.
func (i Import) Line() string {
	if i.Name == "" || i.Name == path.Base(i.Path) {
		return strconv.Quote(i.Path)
	}

	return i.Name + " " + strconv.Quote(i.Path)
}

// Interface describes the interface to stub.
type Interface struct {
	Name    string
	Methods []Method
	Imports []Import
}

// Method is one method of the interface, including promoted ones.
type Method struct {
	Name    string
	Params  []Param
	Results []string
}

// Param is one parameter of a method.
type Param struct {
	Name       string // name used in the golem.Signature
	Ident      string // identifier used in the generated Go code
	Type       string // rendered type, "...T" for a variadic parameter
	Default    string // Go expression from a //golem:default directive
	HasDefault bool
}

// DefaultDirective prefixes method doc lines that declare a parameter default:
//
//	//golem:default timeout=time.Second
const DefaultDirective = "//golem:default "

// FindImport returns the import a file in files uses for the package named
// pkgName, matching either an explicit import name or the path's last element.
func FindImport(files []*dst.File, pkgName string) (Import, error) {
	for _, file := range files {
		if imp, ok := importFor(file.Imports, pkgName); ok {
			return imp, nil
		}
	}

	return Import{}, fmt.Errorf("%w: %s", errPackageNotInImports, pkgName)
}

// FindInterface finds the interface called name in files and describes it.
// qualify rewrites bare type names, for stubs generated outside the
// interface's own package. Embedded interfaces declared in files are
// flattened; embedded interfaces from other packages are not supported.
func FindInterface(files []*dst.File, name string, qualify astutil.Qualifier) (Interface, error) {
	finder := &interfaceFinder{files: files, qualify: qualify, seen: map[string]bool{}}

	err := finder.collect(name)
	if err != nil {
		return Interface{}, err
	}

	if len(finder.methods) == 0 {
		return Interface{}, fmt.Errorf("%w: %s", errNoMethods, name)
	}

	return Interface{Name: name, Methods: finder.methods, Imports: finder.imports}, nil
}

// unexported variables.
var (
	errDefaultOrder          = errors.New("defaulted parameters must come last")
	errExternalEmbedded      = errors.New("embedded interface from another package is not supported")
	errGenericInterface      = errors.New("generic interfaces are not supported")
	errInterfaceNotFound     = errors.New("interface not found")
	errInvalidDefault        = errors.New("invalid default directive")
	errNoMethods             = errors.New("interface has no methods")
	errPackageNotInImports   = errors.New("package not found in imports")
	errReservedMethodName    = errors.New("method name collides with a stub field")
	errUnknownDefault        = errors.New("default for unknown parameter")
	errUnresolvedPackageRef  = errors.New("type refers to a package the declaring file does not import")
	errUnsupportedEmbeddedTy = errors.New("unsupported embedded type")
)

type interfaceFinder struct {
	files   []*dst.File
	qualify astutil.Qualifier
	seen    map[string]bool
	methods []Method
	imports []Import
}

func (f *interfaceFinder) addImports(expr dst.Expr, fileImports []*dst.ImportSpec) error {
	for _, ref := range astutil.PackageRefs(expr) {
		imp, ok := importFor(fileImports, ref)
		if !ok {
			return fmt.Errorf("%w: %s", errUnresolvedPackageRef, ref)
		}

		if !slices.Contains(f.imports, imp) {
			f.imports = append(f.imports, imp)
		}
	}

	return nil
}

func (f *interfaceFinder) collect(name string) error {
	if f.seen[name] {
		return nil
	}

	f.seen[name] = true

	spec, file := f.lookup(name)
	if spec == nil {
		return fmt.Errorf("%w: %s", errInterfaceNotFound, name)
	}

	if spec.TypeParams != nil && len(spec.TypeParams.List) > 0 {
		return fmt.Errorf("%w: %s", errGenericInterface, name)
	}

	iface, ok := spec.Type.(*dst.InterfaceType)
	if !ok {
		return fmt.Errorf("%w: %s is not an interface", errInterfaceNotFound, name)
	}

	for _, field := range iface.Methods.List {
		err := f.collectField(field, file)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

func (f *interfaceFinder) collectField(field *dst.Field, file *dst.File) error {
	if len(field.Names) == 0 {
		switch embedded := field.Type.(type) {
		case *dst.Ident:
			return f.collect(embedded.Name)
		case *dst.SelectorExpr:
			return fmt.Errorf("%w: %s", errExternalEmbedded, astutil.TypeString(embedded, astutil.Keep))
		default:
			return fmt.Errorf("%w: %T", errUnsupportedEmbeddedTy, field.Type)
		}
	}

	funcType, ok := field.Type.(*dst.FuncType)
	if !ok {
		return fmt.Errorf("%w: %T", errUnsupportedEmbeddedTy, field.Type)
	}

	name := field.Names[0].Name
	if name == "Mock" || name == "Methods" {
		return fmt.Errorf("%w: %s", errReservedMethodName, name)
	}

	if slices.ContainsFunc(f.methods, func(m Method) bool { return m.Name == name }) {
		return nil
	}

	err := f.addImports(funcType, file.Imports)
	if err != nil {
		return err
	}

	method := Method{
		Name:    name,
		Params:  f.params(funcType.Params),
		Results: f.results(funcType.Results),
	}

	err = applyDefaults(&method, field.Decs.Start)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	f.methods = append(f.methods, method)

	return nil
}

func (f *interfaceFinder) lookup(name string) (*dst.TypeSpec, *dst.File) {
	for _, file := range f.files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if ok && typeSpec.Name.Name == name {
					return typeSpec, file
				}
			}
		}
	}

	return nil, nil
}

func (f *interfaceFinder) params(fields *dst.FieldList) []Param {
	var params []Param

	for _, field := range fields.List {
		rendered := astutil.TypeString(field.Type, f.qualify)
		names := field.Names

		if len(names) == 0 {
			names = []*dst.Ident{{Name: "_"}}
		}

		for _, ident := range names {
			name := ident.Name
			if name == "_" {
				name = "arg" + strconv.Itoa(len(params))
			}

			params = append(params, Param{Name: name, Ident: goIdent(name), Type: rendered})
		}
	}

	return params
}

func (f *interfaceFinder) results(fields *dst.FieldList) []string {
	if fields == nil {
		return nil
	}

	var results []string

	for _, field := range fields.List {
		rendered := astutil.TypeString(field.Type, f.qualify)

		for range max(len(field.Names), 1) {
			results = append(results, rendered)
		}
	}

	return results
}

// applyDefaults reads //golem:default directives from a method's doc comment.
func applyDefaults(method *Method, doc dst.Decorations) error {
	for _, line := range doc {
		spec, ok := strings.CutPrefix(line, DefaultDirective)
		if !ok {
			continue
		}

		name, expr, ok := strings.Cut(strings.TrimSpace(spec), "=")
		name, expr = strings.TrimSpace(name), strings.TrimSpace(expr)

		if !ok || name == "" || expr == "" {
			return fmt.Errorf("%w: %q", errInvalidDefault, line)
		}

		if _, err := parser.ParseExpr(expr); err != nil {
			return fmt.Errorf("%w: %q: %w", errInvalidDefault, line, err)
		}

		index := slices.IndexFunc(method.Params, func(p Param) bool { return p.Name == name })
		if index < 0 {
			return fmt.Errorf("%w: %s", errUnknownDefault, name)
		}

		method.Params[index].Default = expr
		method.Params[index].HasDefault = true
	}

	for i := 1; i < len(method.Params); i++ {
		if method.Params[i-1].HasDefault && !method.Params[i].HasDefault {
			return fmt.Errorf("%w: %s follows a defaulted parameter", errDefaultOrder, method.Params[i].Name)
		}
	}

	return nil
}

// goIdent renames parameters that would shadow names the generated method body uses.
func goIdent(name string) string {
	switch name {
	case "s", "response", "golem":
		return name + "Arg"
	default:
		return name
	}
}

func importFor(specs []*dst.ImportSpec, pkgName string) (Import, bool) {
	for _, spec := range specs {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		if spec.Name != nil {
			if spec.Name.Name == pkgName {
				return Import{Name: pkgName, Path: importPath}, true
			}

			continue
		}

		if packageNameOf(importPath) == pkgName {
			return Import{Name: pkgName, Path: importPath}, true
		}
	}

	return Import{}, false
}

// packageNameOf guesses a package's name from its import path, skipping a
// major-version element and a ".vN" suffix: "gopkg.in/yaml.v3" gives "yaml".
func packageNameOf(importPath string) string {
	base := path.Base(importPath)

	if len(base) > 1 && base[0] == 'v' && isDigits(base[1:]) {
		base = path.Base(path.Dir(importPath))
	}

	if stem, suffix, ok := strings.Cut(base, ".v"); ok && isDigits(suffix) {
		base = stem
	}

	return strings.ReplaceAll(base, "-", "_")
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
