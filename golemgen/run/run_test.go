package run_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	. "github.com/onsi/gomega" //nolint:revive // Dot import intentional for Gomega matcher DSL

	"github.com/toejough/golem/golemgen/run"
)

const (
	calcSource = `package calc

import "context"

type Calculator interface {
	Total() Result
	//golem:default b=1
	Add(a, b int) int
	Divide(ctx context.Context, a, b float64) (float64, error)
}

type Result struct{}
`
	calcTestSource = `package calc_test

import (
	"testing"

	"example.com/calc"
)

//go:generate golemgen calc.Calculator --name CalcStub

func TestSomething(t *testing.T) {}
`
	localSource = `package shop

type Store interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

type Clock interface {
	Now() int64
}
`
)

func TestRun_LocalInterface(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	fileSys := newMemoryFileSystem()
	out := &bytes.Buffer{}

	err := run.Run(
		[]string{"golemgen", "Store"},
		env("shop", "shop.go"),
		fileSys,
		sourceLoader{".": {localSource}},
		out,
	)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out.String()).To(ContainSubstring("generated_StoreStub.go written successfully."))

	content := fileSys.content(t, "generated_StoreStub.go")
	for _, fragment := range []string{
		"package shop",
		"type StoreStub struct {",
		"func NewStoreStub(t golem.TestReporter) *StoreStub {",
		`golem.NewMock(t, "Store")`,
		"func (s *StoreStub) Get(key string) (string, bool) {",
		"func (s *StoreStub) Put(key string, value string) {",
		`golem.NewSignature("Put", golem.Param("key"), golem.Param("value"))`,
	} {
		g.Expect(content).To(ContainSubstring(fragment))
	}

	g.Expect(content).NotTo(ContainSubstring("Now()"))
}

func TestRun_QualifiedInterface(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	fileSys := newMemoryFileSystem()

	err := run.Run(
		[]string{"golemgen", "calc.Calculator", "--name", "CalcStub"},
		env("calc_test", "calc_test.go"),
		fileSys,
		sourceLoader{".": {calcTestSource}, "example.com/calc": {calcSource}},
		&bytes.Buffer{},
	)

	g.Expect(err).NotTo(HaveOccurred())

	content := fileSys.content(t, "generated_CalcStub_test.go")
	for _, fragment := range []string{
		"package calc_test",
		`"example.com/calc"`,
		`"context"`,
		"type CalcStub struct {",
		`golem.NewMock(t, "Calculator")`,
		"calc.Calculator",
		"func (s *CalcStub) Add(a int, b int) int {",
		"func (s *CalcStub) Divide(ctx context.Context, a float64, b float64) (float64, error) {",
		"func (s *CalcStub) Total() calc.Result {",
		`golem.NewSignature("Add", golem.Param("a"), golem.Default("b", 1))`,
	} {
		g.Expect(content).To(ContainSubstring(fragment))
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	fileSys := newMemoryFileSystem()
	fileSys.files["stubs.yaml"] = []byte(`stubs:
  - interface: Store
  - interface: Clock
    name: FakeClock
`)
	out := &bytes.Buffer{}

	err := run.Run(
		[]string{"golemgen", "--config", "stubs.yaml"},
		env("shop", "shop.go"),
		fileSys,
		sourceLoader{".": {localSource}},
		out,
	)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fileSys.content(t, "generated_StoreStub.go")).To(ContainSubstring("type StoreStub struct {"))
	g.Expect(fileSys.content(t, "generated_FakeClock.go")).To(ContainSubstring("func (s *FakeClock) Now() int64 {"))
	g.Expect(out.String()).To(And(
		ContainSubstring("generated_StoreStub.go written successfully.\n"),
		ContainSubstring("generated_FakeClock.go written successfully.\n"),
	))
}

func TestRun_ArgumentAndConfigCombine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	fileSys := newMemoryFileSystem()
	fileSys.files["stubs.yaml"] = []byte("stubs:\n  - interface: Clock\n")

	err := run.Run(
		[]string{"golemgen", "Store", "--config", "stubs.yaml"},
		env("shop", "shop_test.go"),
		fileSys,
		sourceLoader{".": {localSource}},
		&bytes.Buffer{},
	)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(fileSys.files).To(HaveKey("generated_StoreStub_test.go"))
	g.Expect(fileSys.files).To(HaveKey("generated_ClockStub_test.go"))
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []string
		env     func(string) string
		files   map[string]string
		sources sourceLoader
		want    string
	}{
		{
			name:    "no interface",
			args:    []string{"golemgen"},
			env:     env("shop", "shop.go"),
			sources: sourceLoader{".": {localSource}},
			want:    "no interface given",
		},
		{
			name:    "unknown flag",
			args:    []string{"golemgen", "Store", "--bogus"},
			env:     env("shop", "shop.go"),
			sources: sourceLoader{".": {localSource}},
			want:    "failed to parse arguments",
		},
		{
			name:    "not run by go generate",
			args:    []string{"golemgen", "Store"},
			env:     env("", ""),
			sources: sourceLoader{".": {localSource}},
			want:    "GOPACKAGE environment variable not set",
		},
		{
			name:    "unknown interface",
			args:    []string{"golemgen", "Cache"},
			env:     env("shop", "shop.go"),
			sources: sourceLoader{".": {localSource}},
			want:    "Cache: interface not found",
		},
		{
			name:    "package not imported",
			args:    []string{"golemgen", "other.Store"},
			env:     env("shop", "shop.go"),
			sources: sourceLoader{".": {localSource}},
			want:    "other.Store: package not found in imports: other",
		},
		{
			name:    "package fails to load",
			args:    []string{"golemgen", "calc.Calculator"},
			env:     env("calc_test", "calc_test.go"),
			sources: sourceLoader{".": {calcTestSource}},
			want:    `failed to load package "example.com/calc"`,
		},
		{
			name:    "missing config",
			args:    []string{"golemgen", "--config", "stubs.yaml"},
			env:     env("shop", "shop.go"),
			sources: sourceLoader{".": {localSource}},
			want:    "failed to read config",
		},
		{
			name:    "malformed config",
			args:    []string{"golemgen", "--config", "stubs.yaml"},
			env:     env("shop", "shop.go"),
			files:   map[string]string{"stubs.yaml": "stubs: [unclosed"},
			sources: sourceLoader{".": {localSource}},
			want:    "failed to parse config stubs.yaml",
		},
		{
			name:    "config entry without interface",
			args:    []string{"golemgen", "--config", "stubs.yaml"},
			env:     env("shop", "shop.go"),
			files:   map[string]string{"stubs.yaml": "stubs:\n  - name: Orphan\n"},
			sources: sourceLoader{".": {localSource}},
			want:    "a config entry has no interface",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)
			fileSys := newMemoryFileSystem()

			for name, data := range tc.files {
				fileSys.files[name] = []byte(data)
			}

			err := run.Run(tc.args, tc.env, fileSys, tc.sources, &bytes.Buffer{})

			g.Expect(err).To(MatchError(ContainSubstring(tc.want)))
			g.Expect(fileSys.written).To(BeEmpty())
		})
	}
}

func TestRun_WriteFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)
	fileSys := newMemoryFileSystem()
	fileSys.writeErr = errors.New("read-only file system")

	err := run.Run(
		[]string{"golemgen", "Store"},
		env("shop", "shop.go"),
		fileSys,
		sourceLoader{".": {localSource}},
		&bytes.Buffer{},
	)

	g.Expect(err).To(MatchError("Store: error writing generated_StoreStub.go: read-only file system"))
}

type memoryFileSystem struct {
	files    map[string][]byte
	written  []string
	writeErr error
}

func newMemoryFileSystem() *memoryFileSystem {
	return &memoryFileSystem{files: map[string][]byte{}}
}

func (m *memoryFileSystem) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
	}

	return data, nil
}

func (m *memoryFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}

	m.files[name] = data
	m.written = append(m.written, name)

	return nil
}

func (m *memoryFileSystem) content(t *testing.T, name string) string {
	t.Helper()

	data, ok := m.files[name]
	if !ok {
		t.Fatalf("expected %s to be written; have %v", name, m.written)
	}

	return string(data)
}

// sourceLoader serves packages from in-memory sources keyed by import path.
type sourceLoader map[string][]string

func (l sourceLoader) Load(importPath string) ([]*dst.File, error) {
	sources, ok := l[importPath]
	if !ok {
		return nil, fmt.Errorf("no package %s", importPath)
	}

	files := make([]*dst.File, 0, len(sources))

	for _, source := range sources {
		file, err := decorator.Parse(source)
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return files, nil
}

func env(pkgName, goFile string) func(string) string {
	return func(key string) string {
		switch key {
		case "GOPACKAGE":
			return pkgName
		case "GOFILE":
			return goFile
		default:
			return ""
		}
	}
}
