package core_test

import (
	"fmt"

	"github.com/toejough/golem/internal/core"
)

// fakeReporter records failures instead of stopping the test, so tests can
// assert on the exact message a stub produced.
type fakeReporter struct {
	fatals   []string
	logs     []string
	cleanups []func()
}

func (f *fakeReporter) Cleanup(fn func()) {
	f.cleanups = append(f.cleanups, fn)
}

func (f *fakeReporter) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func (f *fakeReporter) Helper() {}

func (f *fakeReporter) Logf(format string, args ...any) {
	f.logs = append(f.logs, fmt.Sprintf(format, args...))
}

// runCleanups runs registered cleanups last-in first-out, like testing.T.
func (f *fakeReporter) runCleanups() {
	for i := len(f.cleanups) - 1; i >= 0; i-- {
		f.cleanups[i]()
	}
}

// bareReporter has neither Cleanup nor Logf.
type bareReporter struct {
	fatals []string
}

func (b *bareReporter) Fatalf(format string, args ...any) {
	b.fatals = append(b.fatals, fmt.Sprintf(format, args...))
}

func (b *bareReporter) Helper() {}

// iface mirrors a small interface with a defaulted method and a nullary one:
//
//	foo(a, b, c=1, d=nil)
//	bar()
type iface struct {
	mock *core.Mock
}

func (i iface) bar(args ...any) any { return i.barMethod().Call(args...) }

func (i iface) barMethod() *core.Method { return i.mock.Method(barSig) }

func (i iface) foo(args ...any) any { return i.fooMethod().Call(args...) }

func (i iface) fooMethod() *core.Method { return i.mock.Method(fooSig) }

//nolint:gochecknoglobals // signatures are built once per stubbed method
var (
	barSig = core.NewSignature("bar")
	fooSig = core.NewSignature("foo",
		core.Param("a"), core.Param("b"), core.Default("c", 1), core.Default("d", nil))
)

func newIface() (iface, *fakeReporter) {
	reporter := &fakeReporter{}

	return iface{mock: core.NewMock(reporter, "Interface")}, reporter
}
