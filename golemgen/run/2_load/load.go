// Package load parses the Go files of a package into dst trees, keeping
// comments attached so method directives survive.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Package loads the package at importPath. "." is the working directory and
// includes its test files, since stubs are usually declared for interfaces in
// the package under test. Other packages are resolved through go/build and
// loaded without their tests. Files that fail to parse are skipped.
func Package(importPath string) ([]*dst.File, error) {
	dir, err := Dir(importPath)
	if err != nil {
		return nil, err
	}

	names, err := goFiles(dir, importPath == ".")
	if err != nil {
		return nil, err
	}

	dec := decorator.NewDecorator(token.NewFileSet())
	files := make([]*dst.File, 0, len(names))

	for _, name := range names {
		file, err := dec.ParseFile(name, nil, 0)
		if err != nil {
			continue
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: nothing parseable in %s", errNoGoFiles, dir)
	}

	return files, nil
}

// Dir resolves importPath to a directory. A bare name that matches a local
// subdirectory wins over a standard library package of the same name.
func Dir(importPath string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if importPath == "." {
		return wd, nil
	}

	if !strings.Contains(importPath, "/") {
		local := filepath.Join(wd, importPath)
		if info, statErr := os.Stat(local); statErr == nil && info.IsDir() {
			return local, nil
		}
	}

	pkg, err := build.Import(importPath, wd, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}

// unexported variables.
var (
	errNoGoFiles = errors.New("no go files")
)

func goFiles(dir string, includeTests bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()

		switch {
		case entry.IsDir(), !strings.HasSuffix(name, ".go"):
			continue
		case !includeTests && strings.HasSuffix(name, "_test.go"):
			continue
		case strings.HasPrefix(name, "generated_"):
			continue
		}

		names = append(names, filepath.Join(dir, name))
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoGoFiles, dir)
	}

	slices.Sort(names)

	return names, nil
}
