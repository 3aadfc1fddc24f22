package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/scylladb/go-set/strset"
	"golang.org/x/tools/go/packages"
)

type GeneratorOptions struct {
	Args         []string
	BuildTags    string
	Dir          string
	GenerateFlag bool
	Type         string
}

type Generator struct {
	options GeneratorOptions
	pkgName string
	values  []Value
}

// Value is one constant of the enum type.
type Value struct {
	// Identifier of the constant.
	Name string
	// String form, from a `name=` annotation or the kebab-cased identifier.
	Text string
	// Exact constant value.
	Value string
}

func NewGenerator(options GeneratorOptions) *Generator {
	if options.Dir == "" {
		options.Dir = "."
	}

	return &Generator{options: options}
}

// Load type-checks the package in the configured directory and collects every
// constant declared with the enum type.
func (g *Generator) Load() error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  g.options.Dir,
	}

	if g.options.BuildTags != "" {
		tags := strings.Split(g.options.BuildTags, ",")
		cfg.BuildFlags = []string{"-tags=" + strings.Join(tags, " ")}
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("loading %s: %w", g.options.Dir, err)
	}

	if len(pkgs) != 1 {
		return fmt.Errorf("%d packages found in %s", len(pkgs), g.options.Dir)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return fmt.Errorf("loading %s: %v", pkg.PkgPath, pkg.Errors[0])
	}

	g.pkgName = pkg.Name

	for _, file := range pkg.Syntax {
		if err := g.collect(file, pkg.TypesInfo); err != nil {
			return err
		}
	}

	if len(g.values) == 0 {
		return fmt.Errorf("no constants of type %s found", g.options.Type)
	}

	return nil
}

func (g *Generator) collect(file *ast.File, info *types.Info) error {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}

		for _, spec := range gen.Specs {
			vspec := spec.(*ast.ValueSpec)

			for _, ident := range vspec.Names {
				if ident.Name == "_" {
					continue
				}

				// Relying on the type checker covers constants whose type
				// is carried over implicitly by iota.
				c, ok := info.Defs[ident].(*types.Const)
				if !ok {
					continue
				}

				named, ok := c.Type().(*types.Named)
				if !ok || named.Obj().Name() != g.options.Type {
					continue
				}

				basic, ok := named.Underlying().(*types.Basic)
				if !ok || basic.Info()&types.IsInteger == 0 {
					return fmt.Errorf("%s must have an integer underlying type", g.options.Type)
				}

				text, err := constText(ident.Name, vspec.Comment)
				if err != nil {
					return fmt.Errorf("%s: %w", ident.Name, err)
				}

				g.values = append(g.values, Value{
					Name:  ident.Name,
					Text:  text,
					Value: c.Val().ExactString(),
				})
			}
		}
	}

	return nil
}

// constText returns the string form of a constant. A trailing comment such as
// `// name="up-side", other=x` overrides the default.
func constText(ident string, comment *ast.CommentGroup) (string, error) {
	text := strings.ReplaceAll(strings.ToLower(ident), "_", "-")
	if comment == nil {
		return text, nil
	}

	var err error

	fields := strset.New(strings.Split(strings.TrimSpace(comment.Text()), ", ")...)
	fields.Each(func(field string) bool {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key != "name" {
			return true
		}

		if strings.HasPrefix(value, `"`) {
			value, err = strconv.Unquote(value)
			if err != nil {
				return false
			}
		}

		text = value
		return false
	})

	return text, err
}

// render executes the template against the collected values and formats the
// result.
func (g *Generator) render() ([]byte, error) {
	data := struct {
		Args         []string
		GenerateFlag bool
		PackageName  string
		Type         string
		Values       []Value
	}{
		Args:         g.options.Args,
		GenerateFlag: g.options.GenerateFlag,
		PackageName:  g.pkgName,
		Type:         g.options.Type,
		Values:       g.values,
	}

	var buf bytes.Buffer

	if err := _tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated code: %w", err)
	}

	return src, nil
}

// write stores src as <type>_enum.go next to the package sources.
func (g *Generator) write(src []byte) (string, error) {
	if len(src) == 0 {
		return "", errors.New("nothing to write")
	}

	path := filepath.Join(g.options.Dir, strings.ToLower(g.options.Type)+"_enum.go")

	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
