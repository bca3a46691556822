// golemgen generates golem stubs for Go interfaces.
// Install it with `go install github.com/toejough/golem/golemgen@latest` and add a
// `//go:generate golemgen <interface>` comment to the file that needs the stub. The stub is named
// <interface>Stub unless `--name <StubName>` is given, and is written to generated_<StubName>.go in the package
// containing the `//go:generate` comment (generated_<StubName>_test.go for test files). The interface may live in
// the same package or be written as pkg.Interface for an imported package. `--config stubs.yaml` generates several
// stubs at once.
package main

import (
	"fmt"
	"os"

	"github.com/dave/dst"

	"github.com/toejough/golem/golemgen/run"
	load "github.com/toejough/golem/golemgen/run/2_load"
)

func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader by parsing source with dst.
type realPackageLoader struct{}

// Load parses the package at importPath.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, error) {
	files, err := load.Package(importPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, nil
}
