package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/koskimas/lspgen/internal/target"
)

type Kind string

const (
	KindBase           Kind = "base"
	KindReference      Kind = "reference"
	KindArray          Kind = "array"
	KindMap            Kind = "map"
	KindOr             Kind = "or"
	KindTuple          Kind = "tuple"
	KindLiteral        Kind = "literal"
	KindStringLiteral  Kind = "stringLiteral"
	KindIntegerLiteral Kind = "integerLiteral"
	KindBooleanLiteral Kind = "booleanLiteral"
)

type BaseType string

const (
	BaseURI         BaseType = "URI"
	BaseDocumentURI BaseType = "DocumentUri"
	BaseInteger     BaseType = "integer"
	BaseUinteger    BaseType = "uinteger"
	BaseDecimal     BaseType = "decimal"
	BaseRegExp      BaseType = "RegExp"
	BaseString      BaseType = "string"
	BaseBoolean     BaseType = "boolean"
	BaseNull        BaseType = "null"
)

var scalarNames = map[BaseType]string{
	BaseURI:         "URI",
	BaseDocumentURI: "DocumentURI",
	BaseInteger:     "int32",
	BaseUinteger:    "uint32",
	BaseDecimal:     "float64",
	BaseString:      "string",
	BaseBoolean:     "bool",
}

// ScalarName returns the name of the target scalar `b` maps to. RegExp and
// null have no scalar.
func (b BaseType) ScalarName() (string, bool) {
	name, ok := scalarNames[b]
	return name, ok
}

func (b BaseType) valid() bool {
	_, ok := scalarNames[b]
	return ok || b == BaseRegExp || b == BaseNull
}

// Type is the recursive type expression of the meta-model. Which fields are
// set depends on Kind:
//
//	base, reference     Name
//	array               Element
//	map                 Key, Value
//	or, tuple           Items
//	literal             Literal
//	*Literal            StringValue, IntegerValue or BooleanValue
type Type struct {
	Kind Kind
	Name string

	Element *Type
	Key     *Type
	Value   *Type
	Items   []Type

	Literal      *StructureLiteral
	StringValue  string
	IntegerValue int64
	BooleanValue bool
}

func Base(b BaseType) Type {
	return Type{Kind: KindBase, Name: string(b)}
}

func Reference(name string) Type {
	return Type{Kind: KindReference, Name: name}
}

func Array(element Type) Type {
	return Type{Kind: KindArray, Element: &element}
}

func Map(key Type, value Type) Type {
	return Type{Kind: KindMap, Key: &key, Value: &value}
}

func Or(items ...Type) Type {
	return Type{Kind: KindOr, Items: items}
}

func Tuple(items ...Type) Type {
	return Type{Kind: KindTuple, Items: items}
}

func Literal(properties ...Property) Type {
	return Type{Kind: KindLiteral, Literal: &StructureLiteral{Properties: properties}}
}

func StringLiteral(v string) Type {
	return Type{Kind: KindStringLiteral, StringValue: v}
}

func IntegerLiteral(v int64) Type {
	return Type{Kind: KindIntegerLiteral, IntegerValue: v}
}

func BooleanLiteral(v bool) Type {
	return Type{Kind: KindBooleanLiteral, BooleanValue: v}
}

func (t Type) IsBase(b BaseType) bool {
	return t.Kind == KindBase && BaseType(t.Name) == b
}

// IsEmptyLiteral reports whether `t` is the `{}` literal with no properties.
func (t Type) IsEmptyLiteral() bool {
	return t.Kind == KindLiteral && (t.Literal == nil || len(t.Literal.Properties) == 0)
}

// IntoReference collapses `t` into a single TypeRef without running the
// translator. It only succeeds for references, the reducible base types and
// arrays and tuples of those. It's used to build anon mapping keys.
func (t Type) IntoReference() (target.TypeRef, bool) {
	switch t.Kind {
	case KindReference:
		return target.NewTypeRef(t.Name), true
	case KindBase:
		b := BaseType(t.Name)
		if b == BaseDecimal {
			return target.TypeRef{}, false
		}

		name, ok := b.ScalarName()
		if !ok {
			return target.TypeRef{}, false
		}

		return target.NewTypeRef(name), true
	case KindArray:
		inner, ok := t.Element.IntoReference()
		if !ok {
			return target.TypeRef{}, false
		}

		return target.NewGenerics(target.GenericList, inner), true
	case KindTuple:
		elems := make([]target.TypeRef, len(t.Items))

		for i, item := range t.Items {
			ref, ok := item.IntoReference()
			if !ok {
				return target.TypeRef{}, false
			}

			elems[i] = ref
		}

		return target.NewTuple(elems...), true
	}

	return target.TypeRef{}, false
}

// typeJSON is the wire form of Type. `value` is a type for maps and a
// literal value for the literal kinds.
type typeJSON struct {
	Kind    Kind            `json:"kind"`
	Name    string          `json:"name,omitempty"`
	Element *Type           `json:"element,omitempty"`
	Key     *Type           `json:"key,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	Items   []Type          `json:"items,omitempty"`
}

func (t *Type) UnmarshalJSON(data []byte) error {
	var raw typeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Type{
		Kind:    raw.Kind,
		Name:    raw.Name,
		Element: raw.Element,
		Key:     raw.Key,
		Items:   raw.Items,
	}

	switch raw.Kind {
	case KindBase:
		if !BaseType(raw.Name).valid() {
			return fmt.Errorf(`unknown base type "%s"`, raw.Name)
		}
	case KindReference:
		if raw.Name == "" {
			return errors.New("reference without a name")
		}
	case KindArray:
		if raw.Element == nil {
			return errors.New("array without an element type")
		}
	case KindMap:
		if raw.Key == nil || len(raw.Value) == 0 {
			return errors.New("map without a key or value type")
		}

		out.Value = &Type{}
		if err := json.Unmarshal(raw.Value, out.Value); err != nil {
			return fmt.Errorf("map value: %w", err)
		}
	case KindOr, KindTuple:
		if len(raw.Items) == 0 {
			return fmt.Errorf("%s without items", raw.Kind)
		}
	case KindLiteral:
		out.Literal = &StructureLiteral{}
		if err := unmarshalValue(raw, out.Literal); err != nil {
			return err
		}
	case KindStringLiteral:
		if err := unmarshalValue(raw, &out.StringValue); err != nil {
			return err
		}
	case KindIntegerLiteral:
		if err := unmarshalValue(raw, &out.IntegerValue); err != nil {
			return err
		}
	case KindBooleanLiteral:
		if err := unmarshalValue(raw, &out.BooleanValue); err != nil {
			return err
		}
	default:
		return fmt.Errorf(`unknown type kind "%s"`, raw.Kind)
	}

	*t = out
	return nil
}

func unmarshalValue(raw typeJSON, v any) error {
	if len(raw.Value) == 0 {
		return fmt.Errorf("%s without a value", raw.Kind)
	}

	if err := json.Unmarshal(raw.Value, v); err != nil {
		return fmt.Errorf("%s value: %w", raw.Kind, err)
	}

	return nil
}

func (t Type) MarshalJSON() ([]byte, error) {
	raw := typeJSON{
		Kind:    t.Kind,
		Name:    t.Name,
		Element: t.Element,
		Key:     t.Key,
		Items:   t.Items,
	}

	var value any

	switch t.Kind {
	case KindMap:
		value = t.Value
	case KindLiteral:
		value = t.Literal
	case KindStringLiteral:
		value = t.StringValue
	case KindIntegerLiteral:
		value = t.IntegerValue
	case KindBooleanLiteral:
		value = t.BooleanValue
	}

	if value != nil {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		raw.Value = data
	}

	return json.Marshal(raw)
}
