package generate_test

import (
	"testing"

	"github.com/akedrou/textdiff"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	detect "github.com/toejough/golem/golemgen/run/3_detect"
	generate "github.com/toejough/golem/golemgen/run/5_generate"
)

func calculatorStub() generate.Stub {
	return generate.Stub{
		Package:   "calc_test",
		Name:      "CalculatorStub",
		Interface: "calc.Calculator",
		MockName:  "Calculator",
		Imports: []detect.Import{
			{Name: "calc", Path: "example.com/calc"},
			{Name: "yaml", Path: "gopkg.in/yaml.v3"},
		},
		Methods: []detect.Method{
			{
				Name: "Add",
				Params: []detect.Param{
					{Name: "a", Ident: "a", Type: "int"},
					{Name: "b", Ident: "b", Type: "int", Default: "1", HasDefault: true},
				},
				Results: []string{"int"},
			},
			{
				Name:    "Divide",
				Params:  []detect.Param{{Name: "a", Ident: "a", Type: "float64"}, {Name: "b", Ident: "b", Type: "float64"}},
				Results: []string{"float64", "error"},
			},
			{Name: "Reset"},
			{
				Name:    "Sum",
				Params:  []detect.Param{{Name: "values", Ident: "values", Type: "...int"}},
				Results: []string{"int"},
			},
			{
				Name:   "Load",
				Params: []detect.Param{{Name: "s", Ident: "sArg", Type: "*yaml.Node"}},
			},
		},
	}
}

func TestSource_RendersStub(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source, err := generate.Source(calculatorStub())
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(source).To(HavePrefix("// Code generated by golemgen. DO NOT EDIT.\n\npackage calc_test\n"))

	for _, fragment := range []string{
		`"github.com/toejough/golem"`,
		`"example.com/calc"`,
		`yaml "gopkg.in/yaml.v3"`,
		"type CalculatorStub struct {",
		"*golem.Mock",
		"func (s *CalculatorStub) Add(a int, b int) int {",
		"response := s.Methods.Add.Call(a, b)",
		"return golem.Result[int](response, 0)",
		"func (s *CalculatorStub) Divide(a float64, b float64) (float64, error) {",
		"return golem.Result[float64](response, 0), golem.Result[error](response, 1)",
		"func (s *CalculatorStub) Reset() {\n\ts.Methods.Reset.Call()\n}",
		"func (s *CalculatorStub) Sum(values ...int) int {",
		"s.Methods.Sum.Call(values)",
		"func (s *CalculatorStub) Load(sArg *yaml.Node) {\n\ts.Methods.Load.Call(sArg)\n}",
		"func NewCalculatorStub(t golem.TestReporter) *CalculatorStub {",
		`mock := golem.NewMock(t, "Calculator")`,
		"mock.Method(calculatorStubAddSignature),",
		"_ calc.Calculator = (*CalculatorStub)(nil)",
		`golem.NewSignature("Add", golem.Param("a"), golem.Default("b", 1))`,
		`golem.NewSignature("Reset")`,
		`golem.NewSignature("Load", golem.Param("s"))`,
	} {
		g.Expect(source).To(ContainSubstring(fragment))
	}
}

func TestSource_DeclaresEveryMethod(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source, err := generate.Source(calculatorStub())
	g.Expect(err).NotTo(HaveOccurred())

	file, err := decorator.Parse(source)
	g.Expect(err).NotTo(HaveOccurred())

	var methods []string

	for _, decl := range file.Decls {
		if fn, ok := decl.(*dst.FuncDecl); ok && fn.Recv != nil {
			methods = append(methods, fn.Name.Name)
		}
	}

	g.Expect(methods).To(Equal([]string{"Add", "Divide", "Reset", "Sum", "Load"}))
}

// TestSource_IsCanonical checks that generated code needs no further formatting.
func TestSource_IsCanonical(t *testing.T) {
	t.Parallel()

	source, err := generate.Source(calculatorStub())
	if err != nil {
		t.Fatalf("Source: %v", err)
	}

	again, err := generate.Format(source)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if diff := textdiff.Unified("generated", "reformatted", source, again); diff != "" {
		t.Errorf("generated source is not canonical:\n%s", diff)
	}
}

func TestFormat_RejectsInvalidSource(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := generate.Format("package p\nfunc {")

	g.Expect(err).To(MatchError(HavePrefix("generated source is not valid Go")))
}

func TestSignatureVar(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(generate.SignatureVar("CalculatorStub", "Add")).To(Equal("calculatorStubAddSignature"))
	g.Expect(generate.SignatureVar("Émile", "Go")).To(Equal("émileGoSignature"))
}
