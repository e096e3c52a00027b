package translate

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/koskimas/lspgen/internal/config"
	"github.com/koskimas/lspgen/internal/ptr"
	"github.com/koskimas/lspgen/internal/schema"
	"github.com/koskimas/lspgen/internal/target"
	"github.com/rs/zerolog"
	assert "github.com/stretchr/testify/require"
)

func structure(name string, props ...schema.Property) schema.Structure {
	return schema.Structure{
		Name:       name,
		Properties: props,
	}
}

func prop(name string, ty schema.Type) schema.Property {
	return schema.Property{
		Name: name,
		Type: ty,
	}
}

func generateAll(m *schema.MetaModel) *config.Config {
	cfg := config.New("3.17.0")

	for _, s := range m.Structures {
		cfg.Structs[s.Name] = config.Generate(true)
	}

	for _, e := range m.Enumerations {
		cfg.Enums[e.Name] = config.Generate(true)
	}

	return cfg
}

// translateField translates a structure with a single property of type `ty`.
func translateField(t *testing.T, ty schema.Type, cfg *config.Config) (*Result, error) {
	t.Helper()

	m := &schema.MetaModel{
		Structures: []schema.Structure{structure("Foo", prop("x", ty))},
	}

	if cfg == nil {
		cfg = generateAll(m)
	} else {
		cfg.Structs["Foo"] = config.Generate(true)
	}

	return Schema(m, cfg, zerolog.Nop())
}

func fieldType(t *testing.T, res *Result) *target.TypeRef {
	t.Helper()

	assert.Len(t, res.Items, 1)
	s, ok := res.Items[0].(*target.Struct)
	assert.True(t, ok)

	if len(s.Fields) == 0 {
		return nil
	}

	assert.Len(t, s.Fields, 1)
	return &s.Fields[0].Type
}

func TestOptionalReference(t *testing.T) {
	res, err := translateField(t, schema.Or(schema.Reference("Bar"), schema.Base(schema.BaseNull)), nil)
	assert.NoError(t, err)

	assert.Equal(t, []target.Item{
		&target.Struct{
			Name:    "Foo",
			Extends: []string{},
			Fields: []target.Field{
				{Name: "x", Type: target.NewGenerics(target.GenericOption, target.NewTypeRef("Bar"))},
			},
		},
	}, res.Items)

	assert.Equal(t, "Option<Bar>", fieldType(t, res).String())
	assert.True(t, res.Diagnostics.Empty())
}

func TestOptionalPatternIsOrderSensitive(t *testing.T) {
	// `null | T` is not treated as optional. It goes through the anon
	// mappings, where null has no reference form.
	_, err := translateField(t, schema.Or(schema.Base(schema.BaseNull), schema.Reference("Bar")), nil)

	var unsupported *UnsupportedError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "union", unsupported.Shape)
	assert.ErrorIs(t, err, config.ErrIrreducibleUnion)
	assert.ErrorContains(t, err, "translating structure Foo: translating property x")

	// Even when a mapping exists for the reversed key, it can't be built.
	cfg := config.New("3.17.0")
	cfg.AnonMappings["Bar"] = "Bar"
	_, err = translateField(t, schema.Or(schema.Base(schema.BaseNull), schema.Reference("Bar")), cfg)
	assert.Error(t, err)
}

func TestOptionalOfTypes(t *testing.T) {
	tests := []struct {
		name string
		ty   schema.Type
		want string
	}{
		{"string", schema.Base(schema.BaseString), "Option<string>"},
		{"array", schema.Array(schema.Reference("Location")), "Option<List<Location>>"},
		{"map", schema.Map(schema.Base(schema.BaseDocumentURI), schema.Base(schema.BaseDecimal)), "Option<Mapping<DocumentURI,float64>>"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := translateField(t, schema.Or(test.ty, schema.Base(schema.BaseNull)), nil)
			assert.NoError(t, err)
			assert.Equal(t, test.want, fieldType(t, res).String())
		})
	}
}

func TestUnionWithEmptyLiteralsCollapses(t *testing.T) {
	items := []schema.Type{
		schema.Base(schema.BaseBoolean),
		schema.Reference("SemanticTokensOptions"),
		schema.Array(schema.Base(schema.BaseString)),
		schema.Map(schema.Base(schema.BaseString), schema.Reference("A")),
		schema.Or(schema.Reference("A"), schema.Base(schema.BaseNull)),
	}

	for _, item := range items {
		direct, err := translateField(t, item, nil)
		assert.NoError(t, err)

		for _, union := range []schema.Type{
			schema.Or(schema.Literal(), item),
			schema.Or(item, schema.Literal()),
			schema.Or(schema.Literal(), item, schema.Literal()),
		} {
			collapsed, err := translateField(t, union, nil)
			assert.NoError(t, err)
			assert.Equal(t, direct.Items, collapsed.Items)
		}
	}

	// Empty literals are dropped before the optional check.
	res, err := translateField(t, schema.Or(schema.Reference("A"), schema.Literal(), schema.Base(schema.BaseNull)), nil)
	assert.NoError(t, err)
	assert.Equal(t, "Option<A>", fieldType(t, res).String())

	// A literal with properties is kept and has no reference form.
	_, err = translateField(t, schema.Or(schema.Literal(prop("a", schema.Base(schema.BaseString))), schema.Reference("A")), nil)
	assert.ErrorIs(t, err, config.ErrIrreducibleUnion)

	_, err = translateField(t, schema.Or(schema.Literal(), schema.Literal()), nil)
	assert.ErrorContains(t, err, "all items are empty literals")
}

func TestAnonMappings(t *testing.T) {
	cfg := config.New("3.17.0")
	cfg.AnonMappings["Location|List<Location>"] = "Definition"

	res, err := translateField(t, schema.Or(schema.Reference("Location"), schema.Array(schema.Reference("Location"))), cfg)
	assert.NoError(t, err)
	assert.Equal(t, "Definition", fieldType(t, res).String())
	assert.Empty(t, res.Diagnostics.AnonMissing)

	// Arms of an anon union may be nested inside other types.
	res, err = translateField(t, schema.Array(schema.Or(schema.Reference("Location"), schema.Array(schema.Reference("Location")))), cfg)
	assert.NoError(t, err)
	assert.Equal(t, "List<Definition>", fieldType(t, res).String())
}

func TestMissingAnonMappingEmitsPlaceholder(t *testing.T) {
	res, err := translateField(t, schema.Or(schema.Reference("A"), schema.Reference("B")), nil)
	assert.NoError(t, err)

	ty := fieldType(t, res)
	assert.NotNil(t, ty)
	assert.Equal(t, target.TypeRefPlaceholder, ty.Kind)
	assert.Equal(t, target.PlaceholderName, ty.String())
	assert.Equal(t, []string{"A|B"}, res.Diagnostics.AnonMissing)

	// The key follows declaration order.
	res, err = translateField(t, schema.Or(schema.Reference("B"), schema.Reference("A")), nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"B|A"}, res.Diagnostics.AnonMissing)
}

func TestAnonMissingIsDeduplicated(t *testing.T) {
	union := schema.Or(schema.Base(schema.BaseString), schema.Base(schema.BaseInteger))

	m := &schema.MetaModel{
		Structures: []schema.Structure{
			structure("A", prop("x", union), prop("y", union)),
			structure("B", prop("z", schema.Or(schema.Reference("A"), schema.Reference("B"))), prop("w", union)),
		},
	}

	res, err := Schema(m, generateAll(m), zerolog.Nop())
	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, []string{"A|B", "string|int32"}, res.Diagnostics.AnonMissing)
}

func TestStringLiteralPropertiesAreDropped(t *testing.T) {
	s := structure("CreateFile",
		prop("kind", schema.StringLiteral("create")),
		prop("uri", schema.Base(schema.BaseDocumentURI)),
		prop("options", schema.Or(schema.Reference("CreateFileOptions"), schema.Base(schema.BaseNull))),
		prop("tags", schema.Array(schema.StringLiteral("tag"))),
		prop("map", schema.Map(schema.Base(schema.BaseString), schema.StringLiteral("v"))),
		prop("maybe", schema.Or(schema.StringLiteral("x"), schema.Base(schema.BaseNull))),
	)

	m := &schema.MetaModel{Structures: []schema.Structure{s}}

	res, err := Schema(m, generateAll(m), zerolog.Nop())
	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)

	out := res.Items[0].(*target.Struct)
	assert.Len(t, out.Fields, 2)
	assert.Equal(t, "uri", out.Fields[0].Name)
	assert.Equal(t, "DocumentURI", out.Fields[0].Type.String())
	assert.Equal(t, "options", out.Fields[1].Name)
	assert.Equal(t, "Option<CreateFileOptions>", out.Fields[1].Type.String())
}

func TestStructureTranslation(t *testing.T) {
	s := schema.Structure{
		Name: "TextDocumentPositionParams",
		Properties: []schema.Property{
			{
				Name:          "textDocument",
				Type:          schema.Reference("TextDocumentIdentifier"),
				Documentation: ptr.V("The text document."),
			},
			{
				Name:       "position",
				Type:       schema.Reference("Position"),
				Optional:   true,
				Since:      ptr.V("3.16.0"),
				Deprecated: ptr.V("use range"),
			},
			{
				Name: "score",
				Type: schema.Base(schema.BaseDecimal),
			},
		},
		Extends:       []schema.Type{schema.Reference("Base")},
		Mixins:        []schema.Type{schema.Reference("WorkDoneProgressParams"), schema.Reference("Base")},
		Documentation: ptr.V("A parameter literal."),
		Since:         ptr.V("3.17.0"),
	}

	m := &schema.MetaModel{Structures: []schema.Structure{s}}

	res, err := Schema(m, generateAll(m), zerolog.Nop())
	assert.NoError(t, err)

	assert.Equal(t, []target.Item{
		&target.Struct{
			Name:    "TextDocumentPositionParams",
			Extends: []string{"Base", "WorkDoneProgressParams", "Base"},
			Fields: []target.Field{
				{Name: "textDocument", Type: target.NewTypeRef("TextDocumentIdentifier"), Doc: ptr.V("The text document.")},
				{Name: "position", Type: target.NewTypeRef("Position"), Optional: true, Since: target.Version3_16_0, Deprecated: ptr.V("use range")},
				{Name: "score", Type: target.NewTypeRef("float64")},
			},
			Doc:   ptr.V("A parameter literal."),
			Since: target.Version3_17_0,
		},
	}, res.Items)
}

func TestGenerateFalseStillTranslates(t *testing.T) {
	m := &schema.MetaModel{
		Structures: []schema.Structure{structure("Foo", prop("x", schema.Base(schema.BaseString)))},
	}

	cfg := config.New("3.17.0")
	cfg.Structs["Foo"] = config.Generate(false)

	res, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "Foo", res.Items[0].ItemName())
}

func TestFatalShapes(t *testing.T) {
	tests := []struct {
		name  string
		ty    schema.Type
		shape string
	}{
		{"tuple", schema.Tuple(schema.Base(schema.BaseUinteger), schema.Base(schema.BaseUinteger)), "tuple"},
		{"literal", schema.Literal(prop("a", schema.Base(schema.BaseString))), "literal type"},
		{"empty literal", schema.Literal(), "literal type"},
		{"integer literal", schema.IntegerLiteral(1), "integer literal type"},
		{"boolean literal", schema.BooleanLiteral(true), "boolean literal type"},
		{"regexp", schema.Base(schema.BaseRegExp), "base type"},
		{"null", schema.Base(schema.BaseNull), "base type"},
		{"array of tuple", schema.Array(schema.Tuple(schema.Base(schema.BaseString))), "tuple"},
		{"map of regexp", schema.Map(schema.Base(schema.BaseString), schema.Base(schema.BaseRegExp)), "base type"},
		{"optional tuple", schema.Or(schema.Tuple(schema.Base(schema.BaseString)), schema.Base(schema.BaseNull)), "tuple"},
		{"irreducible union", schema.Or(schema.Base(schema.BaseDecimal), schema.Base(schema.BaseString)), "union"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := translateField(t, test.ty, nil)
			assert.Nil(t, res)

			var unsupported *UnsupportedError
			assert.True(t, errors.As(err, &unsupported))
			assert.Equal(t, test.shape, unsupported.Shape)
			assert.ErrorContains(t, err, "translating structure Foo: translating property x: unsupported "+test.shape)
		})
	}
}

func TestFatalShapeInSkippedEntityIsIgnored(t *testing.T) {
	m := &schema.MetaModel{
		Structures: []schema.Structure{
			structure("Foo", prop("x", schema.Tuple(schema.Base(schema.BaseString)))),
		},
	}

	res, err := Schema(m, config.New("3.17.0"), zerolog.Nop())
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, []string{"Foo"}, res.Diagnostics.StructsMissing)
}

func TestInvalidBaseTypeInExtends(t *testing.T) {
	s := structure("Foo")
	s.Extends = []schema.Type{schema.Literal()}

	m := &schema.MetaModel{Structures: []schema.Structure{s}}

	_, err := Schema(m, generateAll(m), zerolog.Nop())
	assert.ErrorContains(t, err, "translating structure Foo: unsupported base type")
}

func TestInvalidVersion(t *testing.T) {
	p := prop("x", schema.Base(schema.BaseString))
	p.Since = ptr.V("next")

	m := &schema.MetaModel{Structures: []schema.Structure{structure("Foo", p)}}

	_, err := Schema(m, generateAll(m), zerolog.Nop())
	assert.ErrorContains(t, err, `translating structure Foo: translating property x: invalid version "next"`)
}

func TestEnumerationTranslation(t *testing.T) {
	e := schema.Enumeration{
		Name: "MarkupKind",
		Type: schema.EnumerationType{Kind: schema.KindBase, Name: schema.EnumerationString},
		Values: []schema.EnumerationEntry{
			{Name: "PlainText", Value: json.RawMessage(`"plaintext"`), Documentation: ptr.V("Plain text.")},
			{Name: "Markdown", Value: json.RawMessage(`"markdown"`), Since: ptr.V("3.16.0")},
			{Name: "Alpha", Value: json.RawMessage(`"alpha"`)},
		},
		Documentation: ptr.V("Describes the content type."),
		Deprecated:    ptr.V("never"),
	}

	m := &schema.MetaModel{Enumerations: []schema.Enumeration{e}}

	res, err := Schema(m, generateAll(m), zerolog.Nop())
	assert.NoError(t, err)

	assert.Equal(t, []target.Item{
		&target.Enum{
			Name: "MarkupKind",
			Variants: []target.Variant{
				{Name: "PlainText", Value: "plaintext", Doc: ptr.V("Plain text.")},
				{Name: "Markdown", Value: "markdown", Since: target.Version3_16_0},
				{Name: "Alpha", Value: "alpha"},
			},
			Doc:        ptr.V("Describes the content type."),
			Deprecated: ptr.V("never"),
		},
	}, res.Items)
}

func TestIntegerEnumerationIsFatal(t *testing.T) {
	for _, kind := range []schema.EnumerationTypeKind{schema.EnumerationInteger, schema.EnumerationUinteger} {
		m := &schema.MetaModel{
			Enumerations: []schema.Enumeration{
				{
					Name:   "SymbolKind",
					Type:   schema.EnumerationType{Kind: schema.KindBase, Name: kind},
					Values: []schema.EnumerationEntry{{Name: "File", Value: json.RawMessage(`1`)}},
				},
			},
		}

		_, err := Schema(m, generateAll(m), zerolog.Nop())

		var unsupported *UnsupportedError
		assert.True(t, errors.As(err, &unsupported))
		assert.ErrorContains(t, err, "translating enumeration SymbolKind: unsupported enumeration type")
	}
}

func TestOutputOrder(t *testing.T) {
	m := &schema.MetaModel{
		Structures: []schema.Structure{structure("Zeta"), structure("Alpha"), structure("Skipped"), structure("Mid")},
		Enumerations: []schema.Enumeration{
			{Name: "Omega", Type: schema.EnumerationType{Kind: schema.KindBase, Name: schema.EnumerationString}},
			{Name: "Beta", Type: schema.EnumerationType{Kind: schema.KindBase, Name: schema.EnumerationString}},
		},
	}

	cfg := generateAll(m)
	delete(cfg.Structs, "Skipped")

	res, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)

	names := make([]string, len(res.Items))
	for i, item := range res.Items {
		names[i] = item.ItemName()
	}

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid", "Omega", "Beta"}, names)
}

func TestMissingAndUnusedEntries(t *testing.T) {
	m := &schema.MetaModel{
		Structures: []schema.Structure{structure("B"), structure("A"), structure("C")},
		Enumerations: []schema.Enumeration{
			{Name: "E1", Type: schema.EnumerationType{Kind: schema.KindBase, Name: schema.EnumerationString}},
			{Name: "E2", Type: schema.EnumerationType{Kind: schema.KindBase, Name: schema.EnumerationString}},
		},
		Requests:      []schema.Request{{Method: "shutdown", TypeName: "ShutdownRequest", Result: schema.Base(schema.BaseNull)}},
		Notifications: []schema.Notification{{Method: "exit", TypeName: "ExitNotification"}},
	}

	cfg := config.New("3.17.0")
	cfg.Structs["C"] = config.Generate(true)
	cfg.Structs["Gone"] = config.Generate(true)
	cfg.Enums["E2"] = config.Generate(true)
	cfg.Enums["Removed"] = config.Checksum("00")
	cfg.Notifications["OldNotification"] = config.Generate(true)

	res, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)

	d := res.Diagnostics
	assert.Equal(t, []string{"A", "B"}, d.StructsMissing)
	assert.Equal(t, []string{"E1"}, d.EnumsMissing)
	assert.Equal(t, []string{"ShutdownRequest"}, d.RequestsMissing)
	assert.Equal(t, []string{"ExitNotification"}, d.NotificationsMissing)
	assert.Equal(t, []string{"Gone"}, d.StructsUnused)
	assert.Equal(t, []string{"Removed"}, d.EnumsUnused)
	assert.Empty(t, d.RequestsUnused)
	assert.Equal(t, []string{"OldNotification"}, d.NotificationsUnused)
	assert.False(t, d.Empty())
}

func TestConfigIsNotModified(t *testing.T) {
	m := &schema.MetaModel{
		Structures: []schema.Structure{structure("A", prop("x", schema.Or(schema.Reference("A"), schema.Reference("B"))))},
	}

	cfg := generateAll(m)
	cfg.Structs["Unused"] = config.Generate(true)

	_, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)

	assert.Len(t, cfg.Structs, 2)
	assert.Empty(t, cfg.AnonMappings)
}

func TestTranslationIsDeterministic(t *testing.T) {
	m := &schema.MetaModel{
		Structures: []schema.Structure{
			structure("A",
				prop("x", schema.Or(schema.Reference("C"), schema.Reference("D"))),
				prop("y", schema.Or(schema.Reference("A"), schema.Reference("B"))),
				prop("z", schema.Map(schema.Base(schema.BaseString), schema.Array(schema.Reference("A")))),
			),
			structure("Checked", prop("x", schema.Base(schema.BaseString))),
			structure("Missing"),
		},
	}

	cfg := config.New("3.17.0")
	cfg.Structs["A"] = config.Generate(true)
	cfg.Structs["Checked"] = config.Checksum("stale")

	first, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)

	second, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"A|B", "C|D"}, first.Diagnostics.AnonMissing)
	assert.Len(t, first.Diagnostics.Drift, 1)
}

func TestChecksum(t *testing.T) {
	s := structure("Frozen",
		prop("x", schema.Base(schema.BaseString)),
		prop("y", schema.Tuple(schema.Base(schema.BaseString))),
	)

	h0, err := Fingerprint(&s)
	assert.NoError(t, err)
	assert.Len(t, h0, 16)

	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	m := &schema.MetaModel{Structures: []schema.Structure{s}}
	cfg := config.New("3.17.0")
	cfg.Structs["Frozen"] = config.Checksum(h0)

	// Frozen entities are never translated, so the tuple is not an error.
	res, err := Schema(m, cfg, logger)
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Diagnostics.Drift)
	assert.True(t, res.Diagnostics.Empty())
	assert.Empty(t, logs.String())

	// Any change to a property changes the fingerprint.
	changed := structure("Frozen",
		prop("x", schema.Base(schema.BaseString)),
		prop("y", schema.Tuple(schema.Base(schema.BaseInteger))),
	)
	changed.Properties[0].Optional = true

	h1, err := Fingerprint(&changed)
	assert.NoError(t, err)
	assert.NotEqual(t, h0, h1)

	m.Structures[0] = changed

	res, err = Schema(m, cfg, logger)
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, []Drift{{Table: "structs", Name: "Frozen", Expected: h0, Actual: h1}}, res.Diagnostics.Drift)
	assert.Contains(t, logs.String(), "checksum mismatch")
	assert.Contains(t, logs.String(), `"name":"Frozen"`)
}

func TestEnumerationChecksum(t *testing.T) {
	e := schema.Enumeration{
		Name:   "TraceValues",
		Type:   schema.EnumerationType{Kind: schema.KindBase, Name: schema.EnumerationString},
		Values: []schema.EnumerationEntry{{Name: "Off", Value: json.RawMessage(`"off"`)}},
	}

	h0, err := Fingerprint(&e)
	assert.NoError(t, err)

	m := &schema.MetaModel{Enumerations: []schema.Enumeration{e}}
	cfg := config.New("3.17.0")
	cfg.Enums["TraceValues"] = config.Checksum(h0)

	res, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)
	assert.True(t, res.Diagnostics.Empty())

	m.Enumerations[0].Values = append(m.Enumerations[0].Values, schema.EnumerationEntry{Name: "Verbose", Value: json.RawMessage(`"verbose"`)})

	res, err = Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)
	assert.Len(t, res.Diagnostics.Drift, 1)
	assert.Equal(t, "enums", res.Diagnostics.Drift[0].Table)
}

func TestFingerprintIsStable(t *testing.T) {
	build := func() schema.Structure {
		return structure("S",
			prop("a", schema.Map(schema.Base(schema.BaseString), schema.Or(schema.Reference("A"), schema.Base(schema.BaseNull)))),
			prop("b", schema.Literal(prop("c", schema.StringLiteral("d")))),
		)
	}

	s1, s2 := build(), build()

	h1, err := Fingerprint(&s1)
	assert.NoError(t, err)

	h2, err := Fingerprint(s2)
	assert.NoError(t, err)

	assert.Equal(t, h1, h2)

	s2.Documentation = ptr.V("docs")
	h3, err := Fingerprint(&s2)
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestRequestsAndNotifications(t *testing.T) {
	m := &schema.MetaModel{
		Requests: []schema.Request{
			{
				Method:   "textDocument/hover",
				TypeName: "HoverRequest",
				Params:   ptr.V(schema.Reference("HoverParams")),
				Result:   schema.Or(schema.Reference("Hover"), schema.Base(schema.BaseNull)),
			},
			{
				Method:   "shutdown",
				TypeName: "ShutdownRequest",
				Result:   schema.Base(schema.BaseNull),
			},
		},
		Notifications: []schema.Notification{
			{Method: "exit", TypeName: "ExitNotification"},
			{Method: "$/cancelRequest", TypeName: "CancelNotification", Params: ptr.V(schema.Reference("CancelParams"))},
		},
	}

	cfg := config.New("3.17.0")
	cfg.Requests["HoverRequest"] = config.Generate(true)
	cfg.Requests["ShutdownRequest"] = config.Generate(true)
	cfg.Notifications["ExitNotification"] = config.Generate(true)
	cfg.Notifications["CancelNotification"] = config.Generate(true)

	res, err := Schema(m, cfg, zerolog.Nop())
	assert.NoError(t, err)

	assert.Equal(t, []target.Item{
		&target.TraitImpl{
			Interface:   "Request",
			Implementor: "HoverRequest",
			AssocTypes: []target.AssocType{
				{Name: "Params", Type: target.NewTypeRef("HoverParams")},
				{Name: "Result", Type: target.NewGenerics(target.GenericOption, target.NewTypeRef("Hover"))},
			},
			AssocConsts: []target.AssocConst{{Name: "METHOD", Value: "textDocument/hover"}},
		},
		&target.TraitImpl{
			Interface:   "Request",
			Implementor: "ShutdownRequest",
			AssocTypes: []target.AssocType{
				{Name: "Params", Type: target.NewUnit()},
				{Name: "Result", Type: target.NewUnit()},
			},
			AssocConsts: []target.AssocConst{{Name: "METHOD", Value: "shutdown"}},
		},
		&target.TraitImpl{
			Interface:   "Notification",
			Implementor: "ExitNotification",
			AssocTypes:  []target.AssocType{{Name: "Params", Type: target.NewUnit()}},
			AssocConsts: []target.AssocConst{{Name: "METHOD", Value: "exit"}},
		},
		&target.TraitImpl{
			Interface:   "Notification",
			Implementor: "CancelNotification",
			AssocTypes:  []target.AssocType{{Name: "Params", Type: target.NewTypeRef("CancelParams")}},
			AssocConsts: []target.AssocConst{{Name: "METHOD", Value: "$/cancelRequest"}},
		},
	}, res.Items)
}

func TestRequestErrors(t *testing.T) {
	m := &schema.MetaModel{
		Requests: []schema.Request{
			{Method: "x", TypeName: "XRequest", Result: schema.Tuple(schema.Base(schema.BaseString))},
		},
	}

	cfg := config.New("3.17.0")
	cfg.Requests["XRequest"] = config.Generate(true)

	_, err := Schema(m, cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "translating request XRequest: translating result: unsupported tuple")
}

func TestWriteHints(t *testing.T) {
	d := Diagnostics{
		StructsMissing: []string{"A", "B"},
		AnonMissing:    []string{"Location|List<Location>"},
		EnumsUnused:    []string{"Old"},
	}

	var out bytes.Buffer
	assert.NoError(t, d.WriteHints(&out))

	hints := out.String()
	assert.Contains(t, hints, "These structs are missing. Add them.\n```toml\n[structs]\nA = true\nB = true\n```\n")
	assert.Contains(t, hints, "These anon-mappings are missing. Add them.\n```toml\n[anon-mappings]\n\"Location|List<Location>\" = \"todo\"\n```\n")
	assert.Contains(t, hints, "These enums are not in the meta-model. Remove them.\nenums.Old\n")
	assert.NotContains(t, hints, "[enums]")

	var empty bytes.Buffer
	assert.NoError(t, (&Diagnostics{}).WriteHints(&empty))
	assert.Empty(t, empty.String())
}
