// Package run implements the golemgen tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
	"gopkg.in/yaml.v3"

	astutil "github.com/toejough/golem/golemgen/run/0_util"
	detect "github.com/toejough/golem/golemgen/run/3_detect"
	generate "github.com/toejough/golem/golemgen/run/5_generate"
	output "github.com/toejough/golem/golemgen/run/6_output"
)

// FileSystem is the file access the generator needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader parses the Go files of a package. "." is the package that
// invoked the generator, test files included.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, error)
}

// Run executes golemgen. args are the command line, getEnv reads the
// GOPACKAGE and GOFILE variables go generate sets, and progress goes to out.
// For each requested interface it writes one generated stub file into the
// calling package.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	requests, err := stubRequests(parsed, fileSys)
	if err != nil {
		return err
	}

	pkgName := getEnv("GOPACKAGE")
	if pkgName == "" {
		return errGOPACKAGENotSet
	}

	for _, request := range requests {
		err = generateStub(request, pkgName, getEnv("GOFILE"), fileSys, pkgLoader, out)
		if err != nil {
			return fmt.Errorf("%s: %w", request.Interface, err)
		}
	}

	return nil
}

// batchConfig is the --config file format:
//
//	stubs:
//	  - interface: calc.Calculator
//	    name: CalculatorStub
type batchConfig struct {
	Stubs []stubRequest `yaml:"stubs"`
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Interface string `arg:"positional" help:"interface to stub (e.g. Store or pkg.Store)"`
	Name      string `arg:"--name"     help:"name for the generated stub (defaults to <Interface>Stub)"`
	Config    string `arg:"--config"   help:"yaml file listing several stubs to generate"`
}

type stubRequest struct {
	Interface string `yaml:"interface"`
	Name      string `yaml:"name"`
}

// unexported variables.
var (
	errGOPACKAGENotSet = errors.New("GOPACKAGE environment variable not set; run golemgen through go generate")
	errNoInterface     = errors.New("no interface given: pass one, or --config with a stubs list")
)

func generateStub(
	request stubRequest, pkgName, goFile string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer,
) error {
	localFiles, err := pkgLoader.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load current package: %w", err)
	}

	files := localFiles
	qualify := astutil.Qualifier(astutil.Keep)
	interfaceRef := request.Interface
	pkgAlias, localName, qualified := strings.Cut(request.Interface, ".")

	var imports []detect.Import

	if qualified {
		imp, err := detect.FindImport(localFiles, pkgAlias)
		if err != nil {
			return err
		}

		files, err = pkgLoader.Load(imp.Path)
		if err != nil {
			return fmt.Errorf("failed to load package %q: %w", imp.Path, err)
		}

		qualify = astutil.QualifyExported(pkgAlias)
		imports = append(imports, imp)
	} else {
		localName = request.Interface
	}

	iface, err := detect.FindInterface(files, localName, qualify)
	if err != nil {
		return err
	}

	for _, imp := range iface.Imports {
		if !slices.Contains(imports, imp) {
			imports = append(imports, imp)
		}
	}

	stubName := request.Name
	if stubName == "" {
		stubName = localName + "Stub"
	}

	stubName = strings.TrimSuffix(strings.TrimSuffix(stubName, ".go"), "_test")

	code, err := generate.Source(generate.Stub{
		Package:   pkgName,
		Name:      stubName,
		Interface: interfaceRef,
		MockName:  localName,
		Imports:   imports,
		Methods:   iface.Methods,
	})
	if err != nil {
		return err
	}

	return output.Write(code, output.Filename(stubName, pkgName, goFile), fileSys, out)
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "golemgen"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// stubRequests lists the stubs to generate: the one named on the command
// line, then those in the --config file.
func stubRequests(parsed cliArgs, fileSys FileSystem) ([]stubRequest, error) {
	var requests []stubRequest

	if parsed.Interface != "" {
		requests = append(requests, stubRequest{Interface: parsed.Interface, Name: parsed.Name})
	}

	if parsed.Config != "" {
		data, err := fileSys.ReadFile(parsed.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		var config batchConfig

		err = yaml.Unmarshal(data, &config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", parsed.Config, err)
		}

		requests = append(requests, config.Stubs...)
	}

	if len(requests) == 0 {
		return nil, errNoInterface
	}

	for _, request := range requests {
		if request.Interface == "" {
			return nil, fmt.Errorf("%w: a config entry has no interface", errNoInterface)
		}
	}

	return requests, nil
}
