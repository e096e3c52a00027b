package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/lspgen/internal/target"
)

const (
	headerComment = "Code generated by lspgen. DO NOT EDIT."
	tagJson       = "json"
	tagOmitEmpty  = ",omitempty"
)

var scalars = map[string]func() *jen.Statement{
	"int32":   jen.Int32,
	"uint32":  jen.Uint32,
	"float64": jen.Float64,
	"string":  jen.String,
	"bool":    jen.Bool,
}

// GenerateCode renders `items` into a Go file of package `pkg`.
func GenerateCode(pkg string, items []target.Item) (*jen.File, error) {
	f := jen.NewFile(pkg)
	f.HeaderComment(headerComment)

	for _, item := range items {
		var err error

		switch item := item.(type) {
		case *target.Struct:
			err = genStruct(f, item)
		case *target.Enum:
			genEnum(f, item)
		case *target.TraitImpl:
			err = genTraitImpl(f, item)
		default:
			err = fmt.Errorf("unknown item %T", item)
		}

		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", item.ItemName(), err)
		}
	}

	return f, nil
}

func genStruct(f *jen.File, s *target.Struct) error {
	var err error

	genDoc(f.Group, s.Doc, s.Since, s.Deprecated)
	f.Type().Id(s.Name).StructFunc(func(g *jen.Group) {
		for _, base := range s.Extends {
			g.Id(base)
		}

		for _, field := range s.Fields {
			if err == nil {
				err = genField(g, field)
			}
		}
	})
	f.Empty()

	return err
}

func genField(g *jen.Group, field target.Field) error {
	ty, err := genType(field.Type)
	if err != nil {
		return fmt.Errorf("field %s: %w", field.Name, err)
	}

	tag := field.Name
	if field.Optional {
		tag += tagOmitEmpty

		if field.Type.Kind == target.TypeRefNamed {
			ty = jen.Op("*").Add(ty)
		}
	}

	genDoc(g, field.Doc, field.Since, field.Deprecated)

	stmt := g.Id(firstUpper(field.Name)).Add(ty).Tag(map[string]string{tagJson: tag})

	if keys := field.Type.Placeholders(); len(keys) > 0 {
		stmt.Comment(fmt.Sprintf("missing anon mapping: %s", strings.Join(keys, ", ")))
	}

	return nil
}

func genEnum(f *jen.File, e *target.Enum) {
	genDoc(f.Group, e.Doc, e.Since, e.Deprecated)
	f.Type().Id(e.Name).String()
	f.Empty()

	if len(e.Variants) == 0 {
		return
	}

	f.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range e.Variants {
			genDoc(g, v.Doc, v.Since, nil)
			g.Id(e.Name + firstUpper(v.Name)).Id(e.Name).Op("=").Lit(v.Value)
		}
	})
	f.Empty()
}

// genTraitImpl renders a marker struct for the implementor, a type alias for
// each associated type and a method for each associated constant.
func genTraitImpl(f *jen.File, t *target.TraitImpl) error {
	f.Commentf("%s implements %s.", t.Implementor, t.Interface)
	f.Type().Id(t.Implementor).Struct()
	f.Empty()

	for _, at := range t.AssocTypes {
		ty, err := genType(at.Type)
		if err != nil {
			return fmt.Errorf("associated type %s: %w", at.Name, err)
		}

		f.Type().Id(t.Implementor + at.Name).Op("=").Add(ty)
		f.Empty()
	}

	for _, ac := range t.AssocConsts {
		f.Func().Params(jen.Id(t.Implementor)).Id(constToMethod(ac.Name)).Params().String().Block(
			jen.Return(jen.Lit(ac.Value)),
		)
		f.Empty()
	}

	return nil
}

func genType(ref target.TypeRef) (*jen.Statement, error) {
	switch ref.Kind {
	case target.TypeRefNamed:
		if scalar, ok := scalars[ref.Name]; ok {
			return scalar(), nil
		}

		return jen.Id(ref.Name), nil
	case target.TypeRefPlaceholder:
		// Deliberately undefined so the output doesn't compile until a
		// mapping is added.
		return jen.Id(target.PlaceholderName), nil
	case target.TypeRefTuple:
		if ref.IsUnit() {
			return jen.Struct(), nil
		}

		return nil, fmt.Errorf("tuple %s has no Go form", ref.String())
	case target.TypeRefGeneric:
		return genGeneric(ref)
	}

	return nil, fmt.Errorf("unknown type reference %s", ref.String())
}

func genGeneric(ref target.TypeRef) (*jen.Statement, error) {
	args := make([]*jen.Statement, len(ref.Args))

	for i, a := range ref.Args {
		code, err := genType(a)
		if err != nil {
			return nil, err
		}

		args[i] = code
	}

	switch {
	case ref.Name == target.GenericOption && len(args) == 1:
		return jen.Op("*").Add(args[0]), nil
	case ref.Name == target.GenericList && len(args) == 1:
		return jen.Index().Add(args[0]), nil
	case ref.Name == target.GenericMapping && len(args) == 2:
		return jen.Map(args[0]).Add(args[1]), nil
	}

	return nil, fmt.Errorf("unknown generic type %s", ref.String())
}

// genDoc writes a doc comment built from the documentation, the version
// the item appeared in and its deprecation note.
func genDoc(g *jen.Group, doc *string, since target.Version, deprecated *string) {
	lines := make([]string, 0)

	if doc != nil {
		for _, line := range strings.Split(strings.TrimSpace(*doc), "\n") {
			lines = append(lines, strings.TrimRight(line, " \t"))
		}
	}

	if since != target.VersionUnknown {
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, fmt.Sprintf("@since %s", since))
	}

	if deprecated != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, fmt.Sprintf("Deprecated: %s", *deprecated))
	}

	for _, line := range lines {
		if line == "" {
			// jennifer would render "// " for an empty comment.
			g.Comment("//")
			continue
		}

		g.Comment(line)
	}
}

// Render formats `f` as Go source.
func Render(f *jen.File) ([]byte, error) {
	var buf bytes.Buffer

	if err := f.Render(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func WriteFile(f *jen.File, filePath string) error {
	data, err := Render(f)
	if err != nil {
		return fmt.Errorf(`failed to render "%s": %w`, filePath, err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0600)
}

func constToMethod(name string) string {
	return firstUpper(strings.ToLower(name))
}

func firstUpper(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[0:1]) + s[1:]
}
