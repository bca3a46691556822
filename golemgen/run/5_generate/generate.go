// Package generate renders golem stub source from a detected interface.
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/dave/dst/decorator"
	detect "github.com/toejough/golem/golemgen/run/3_detect"
)

// Stub is everything the template needs for one generated stub.
type Stub struct {
	Package   string // package the stub is generated into
	Name      string // stub type name
	Interface string // the interface type as the stub's package refers to it
	MockName  string // owner name used in failure messages
	Imports   []detect.Import
	Methods   []detect.Method
}

// Format reprints Go source in canonical form.
func Format(source string) (string, error) {
	file, err := decorator.Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidSource, err)
	}

	var buf bytes.Buffer

	err = decorator.Fprint(&buf, file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidSource, err)
	}

	return buf.String(), nil
}

// Source renders and formats the stub.
func Source(stub Stub) (string, error) {
	var buf bytes.Buffer

	err := stubTemplate.Execute(&buf, stub)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", stub.Name, err)
	}

	return Format(buf.String())
}

// SignatureVar names the package-level Signature variable of a stub method.
func SignatureVar(stubName, methodName string) string {
	first, size := utf8.DecodeRuneInString(stubName)

	return string(unicode.ToLower(first)) + stubName[size:] + methodName + "Signature"
}

// unexported constants.
const (
	stubSource = `// Code generated by golemgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/toejough/golem"
{{- range .Imports}}
	{{.Line}}
{{- end}}
)

// {{.Name}} is a golem stub of {{.Interface}}. Register expectations on its
// Methods, hand it to the code under test, and verify with AssertSaturated.
type {{.Name}} struct {
	*golem.Mock

	Methods {{.Name}}Methods
}

// {{.Name}}Methods holds the stubbed methods of {{.Name}}.
type {{.Name}}Methods struct {
{{- range .Methods}}
	{{.Name}} *golem.Method
{{- end}}
}
{{range .Methods}}
// {{.Name}} dispatches the call to the matching expectation.
func (s *{{$.Name}}) {{.Name}}({{params .}}){{results .}} {
	{{if .Results}}response := {{end}}s.Methods.{{.Name}}.Call({{args .}})
{{- if .Results}}

	return {{returns .}}
{{- end}}
}
{{end}}
// New{{.Name}} creates a {{.Name}} reporting failures to t.
func New{{.Name}}(t golem.TestReporter) *{{.Name}} {
	mock := golem.NewMock(t, {{quote .MockName}})

	return &{{.Name}}{
		Mock: mock,
		Methods: {{.Name}}Methods{
{{- range .Methods}}
			{{.Name}}: mock.Method({{sigVar $.Name .Name}}),
{{- end}}
		},
	}
}

// unexported variables.
var (
	_ {{.Interface}} = (*{{.Name}})(nil)
{{range .Methods}}
	{{sigVar $.Name .Name}} = golem.NewSignature({{quote .Name}}{{range .Params}}, {{paramDecl .}}{{end}})
{{- end}}
)
`
)

// unexported variables.
var (
	errInvalidSource = errors.New("generated source is not valid Go")
	//nolint:gochecknoglobals // parsed once, read-only afterwards
	stubTemplate = template.Must(template.New("stub").Funcs(template.FuncMap{
		"args":      callArgs,
		"paramDecl": paramDecl,
		"params":    paramList,
		"quote":     strconv.Quote,
		"results":   resultList,
		"returns":   returnList,
		"sigVar":    SignatureVar,
	}).Parse(stubSource))
)

func callArgs(method detect.Method) string {
	idents := make([]string, len(method.Params))
	for i, param := range method.Params {
		idents[i] = param.Ident
	}

	return strings.Join(idents, ", ")
}

func paramDecl(param detect.Param) string {
	if param.HasDefault {
		return "golem.Default(" + strconv.Quote(param.Name) + ", " + param.Default + ")"
	}

	return "golem.Param(" + strconv.Quote(param.Name) + ")"
}

func paramList(method detect.Method) string {
	parts := make([]string, len(method.Params))
	for i, param := range method.Params {
		parts[i] = param.Ident + " " + param.Type
	}

	return strings.Join(parts, ", ")
}

func resultList(method detect.Method) string {
	switch len(method.Results) {
	case 0:
		return ""
	case 1:
		return " " + method.Results[0]
	default:
		return " (" + strings.Join(method.Results, ", ") + ")"
	}
}

func returnList(method detect.Method) string {
	parts := make([]string, len(method.Results))
	for i, result := range method.Results {
		parts[i] = fmt.Sprintf("golem.Result[%s](response, %d)", result, i)
	}

	return strings.Join(parts, ", ")
}
