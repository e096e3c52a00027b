package translate

import (
	"encoding/json"
	"errors"

	"github.com/koskimas/lspgen/internal/config"
	"github.com/koskimas/lspgen/internal/schema"
	"github.com/koskimas/lspgen/internal/target"
)

// translateType resolves `ty` into a TypeRef. The bool is false when the
// type has no representation and whatever uses it should be dropped.
func (t *translator) translateType(ty schema.Type) (target.TypeRef, bool, error) {
	switch ty.Kind {
	case schema.KindBase:
		return t.translateBase(schema.BaseType(ty.Name))
	case schema.KindReference:
		return target.NewTypeRef(ty.Name), true, nil
	case schema.KindArray:
		elem, ok, err := t.translateType(*ty.Element)
		if !ok || err != nil {
			return target.TypeRef{}, false, err
		}

		return target.NewGenerics(target.GenericList, elem), true, nil
	case schema.KindMap:
		key, ok, err := t.translateType(*ty.Key)
		if !ok || err != nil {
			return target.TypeRef{}, false, err
		}

		value, ok, err := t.translateType(*ty.Value)
		if !ok || err != nil {
			return target.TypeRef{}, false, err
		}

		return target.NewGenerics(target.GenericMapping, key, value), true, nil
	case schema.KindOr:
		return t.translateOr(ty.Items)
	case schema.KindStringLiteral:
		// String literals are discriminants like `kind: "create"`. Fields
		// typed with them are dropped rather than given a marker type.
		return target.TypeRef{}, false, nil
	case schema.KindTuple:
		return target.TypeRef{}, false, unsupportedf("tuple", "%s", describe(ty))
	case schema.KindLiteral:
		return target.TypeRef{}, false, unsupportedf("literal type", "%s", describe(ty))
	case schema.KindIntegerLiteral:
		return target.TypeRef{}, false, unsupportedf("integer literal type", "%s", describe(ty))
	case schema.KindBooleanLiteral:
		return target.TypeRef{}, false, unsupportedf("boolean literal type", "%s", describe(ty))
	}

	return target.TypeRef{}, false, unsupportedf("type kind", `"%s"`, ty.Kind)
}

func (t *translator) translateBase(b schema.BaseType) (target.TypeRef, bool, error) {
	switch b {
	case schema.BaseRegExp:
		return target.TypeRef{}, false, unsupportedf("base type", "RegExp is documented by the protocol but has no meta-model definition")
	case schema.BaseNull:
		return target.TypeRef{}, false, unsupportedf("base type", "null outside of an optional union")
	}

	name, ok := b.ScalarName()
	if !ok {
		return target.TypeRef{}, false, unsupportedf("base type", `"%s"`, b)
	}

	return target.NewTypeRef(name), true, nil
}

func (t *translator) translateOr(items []schema.Type) (target.TypeRef, bool, error) {
	// `{}` arms carry no data.
	filtered := make([]schema.Type, 0, len(items))
	for _, item := range items {
		if !item.IsEmptyLiteral() {
			filtered = append(filtered, item)
		}
	}

	switch {
	case len(filtered) == 0:
		return target.TypeRef{}, false, unsupportedf("union", "all items are empty literals")
	case len(filtered) == 1:
		return t.translateType(filtered[0])
	case len(filtered) == 2 && filtered[1].IsBase(schema.BaseNull):
		// Only `T | null` is optional. `null | T` falls through to the
		// anon mappings like any other union.
		inner, ok, err := t.translateType(filtered[0])
		if !ok || err != nil {
			return target.TypeRef{}, false, err
		}

		return target.NewGenerics(target.GenericOption, inner), true, nil
	}

	ref, err := t.config.LookupAnon(filtered)
	if err == nil {
		return ref, true, nil
	}

	var missing *config.MissingAnonError
	if errors.As(err, &missing) {
		t.anonMissing[missing.Key] = struct{}{}
		return target.NewPlaceholder(missing.Key), true, nil
	}

	return target.TypeRef{}, false, &UnsupportedError{
		Shape:  "union",
		Detail: describe(schema.Or(filtered...)),
		Err:    err,
	}
}

func describe(ty schema.Type) string {
	data, err := json.Marshal(ty)
	if err != nil {
		return string(ty.Kind)
	}

	return string(data)
}
