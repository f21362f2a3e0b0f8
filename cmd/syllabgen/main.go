// Syllabgen compiles TeX hyphenation pattern files into the language
// table of package syllab.
//
// It reads a YAML list of languages, compiles every pattern file into
// the flat automaton encoding, and writes one Go source file containing
// the language constants, the encoded automata as string constants, and
// the table binding them together:
//
//	syllabgen -config cmd/syllabgen/languages.yaml -out lang_gen.go
//
// The tool is wired into go:generate of the root package.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllab/automaton"
	"github.com/npillmayer/syllab/texpatterns"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'syllab.gen'
func tracer() tracing.Trace {
	return tracing.Select("syllab.gen")
}

type config struct {
	Languages []langSpec `yaml:"languages"`
}

type langSpec struct {
	Name     string `yaml:"name"`
	Tag      string `yaml:"tag"`
	File     string `yaml:"file"`
	LeftMin  int    `yaml:"leftmin"`
	RightMin int    `yaml:"rightmin"`
}

// compiledLang is one language ready for emission.
type compiledLang struct {
	langSpec
	Data       string // encoded automaton
	Patterns   int
	Identifier string // the \message of the pattern file
}

func main() {
	configPath := flag.String("config", "cmd/syllabgen/languages.yaml", "YAML file listing the languages to compile")
	outPath := flag.String("out", "lang_gen.go", "generated Go source file")
	pkgName := flag.String("pkg", "syllab", "package the generated file belongs to")
	flag.Parse()
	if err := run(*configPath, *outPath, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "syllabgen: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, outPath, pkgName string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	langs := make([]compiledLang, 0, len(cfg.Languages))
	for _, spec := range cfg.Languages {
		if err := spec.check(); err != nil {
			return err
		}
		lang, err := compile(spec, filepath.Dir(configPath))
		if err != nil {
			return fmt.Errorf("language %s: %w", spec.Name, err)
		}
		tracer().Infof("compiled %s (%s): %d patterns, %d automaton bytes",
			spec.Name, spec.Tag, lang.Patterns, len(lang.Data))
		langs = append(langs, lang)
	}
	f := emit(pkgName, langs)
	return f.Save(outPath)
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if len(cfg.Languages) == 0 {
		return cfg, fmt.Errorf("config %s: no languages listed", path)
	}
	return cfg, nil
}

func (spec langSpec) check() error {
	if !token.IsIdentifier(spec.Name) || spec.Name[0] < 'A' || spec.Name[0] > 'Z' {
		return fmt.Errorf("language name %q is not an exported Go identifier", spec.Name)
	}
	if _, err := language.Parse(spec.Tag); err != nil {
		return fmt.Errorf("language %s: tag %q: %w", spec.Name, spec.Tag, err)
	}
	if spec.LeftMin < 1 || spec.RightMin < 1 {
		return fmt.Errorf("language %s: margins must be at least 1", spec.Name)
	}
	if spec.File == "" {
		return fmt.Errorf("language %s: no pattern file", spec.Name)
	}
	return nil
}

// compile parses one TeX pattern file and encodes its automaton. Paths
// are resolved relative to the config file.
func compile(spec langSpec, baseDir string) (compiledLang, error) {
	f, err := os.Open(filepath.Join(baseDir, spec.File))
	if err != nil {
		return compiledLang{}, err
	}
	defer f.Close()
	lang, err := compileReader(spec, f)
	if err != nil {
		return compiledLang{}, fmt.Errorf("%s: %w", spec.File, err)
	}
	return lang, nil
}

func compileReader(spec langSpec, r io.Reader) (compiledLang, error) {
	patterns := texpatterns.NewPatternReader(r)
	builder := automaton.NewBuilder()
	for {
		seq, weights, err := patterns.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return compiledLang{}, err
		}
		if err := builder.Insert(automaton.Pattern{Sequence: seq, Weights: weights}); err != nil {
			return compiledLang{}, err
		}
	}
	data, err := builder.Encode()
	if err != nil {
		return compiledLang{}, err
	}
	return compiledLang{
		langSpec:   spec,
		Data:       data,
		Patterns:   builder.Len(),
		Identifier: patterns.Identifier(),
	}, nil
}
