// Package output names, reorders, and writes generated stub files.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toejough/go-reorder"
)

// Writer is the file-writing part of the generator's file system.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Filename returns generated_<stubName>.go, or generated_<stubName>_test.go
// when the stub is generated for a test package or from a test file, so it is
// only compiled with the tests that use it.
func Filename(stubName, pkgName, goFile string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(stubName, ".go"), "_test")

	if strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go") ||
		strings.HasSuffix(strings.TrimSuffix(stubName, ".go"), "_test") {
		return "generated_" + base + "_test.go"
	}

	return "generated_" + base + ".go"
}

// Write reorders the declarations of code into the project's conventional
// order and writes it to filename, reporting progress on out. A reorder
// failure is reported and the code is written as generated.
func Write(code, filename string, fileWriter Writer, out io.Writer) error {
	const generatedFilePermissions = 0o600

	reordered, err := reorder.Source(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	err = fileWriter.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}
