package translate

import (
	"encoding/json"
	"fmt"

	"github.com/koskimas/lspgen/internal/schema"
	"github.com/koskimas/lspgen/internal/target"
)

const (
	interfaceRequest      = "Request"
	interfaceNotification = "Notification"

	assocParams = "Params"
	assocResult = "Result"
	constMethod = "METHOD"
)

func (t *translator) translateStructure(s *schema.Structure) (*target.Struct, error) {
	baseTypes := s.BaseTypes()
	extends := make([]string, 0, len(baseTypes))

	for _, bt := range baseTypes {
		ref, ok := bt.IntoReference()
		if !ok {
			return nil, unsupportedf("base type", "%s", describe(bt))
		}

		extends = append(extends, ref.String())
	}

	fields := make([]target.Field, 0, len(s.Properties))

	for _, p := range s.Properties {
		field, ok, err := t.translateProperty(p)
		if err != nil {
			return nil, fmt.Errorf("translating property %s: %w", p.Name, err)
		}

		if ok {
			fields = append(fields, *field)
		}
	}

	since, err := target.ParseVersion(s.Since)
	if err != nil {
		return nil, err
	}

	return &target.Struct{
		Name:       s.Name,
		Extends:    extends,
		Fields:     fields,
		Doc:        s.Documentation,
		Deprecated: s.Deprecated,
		Since:      since,
	}, nil
}

func (t *translator) translateProperty(p schema.Property) (*target.Field, bool, error) {
	ty, ok, err := t.translateType(p.Type)
	if !ok || err != nil {
		return nil, false, err
	}

	since, err := target.ParseVersion(p.Since)
	if err != nil {
		return nil, false, err
	}

	return &target.Field{
		Name:       p.Name,
		Type:       ty,
		Optional:   p.Optional,
		Doc:        p.Documentation,
		Deprecated: p.Deprecated,
		Since:      since,
	}, true, nil
}

func (t *translator) translateEnumeration(e *schema.Enumeration) (*target.Enum, error) {
	if e.Type.Name != schema.EnumerationString {
		return nil, unsupportedf("enumeration type", `"%s"`, e.Type.Name)
	}

	variants := make([]target.Variant, 0, len(e.Values))

	for _, entry := range e.Values {
		var value string
		if err := json.Unmarshal(entry.Value, &value); err != nil {
			return nil, fmt.Errorf("translating entry %s: value is not a string: %w", entry.Name, err)
		}

		since, err := target.ParseVersion(entry.Since)
		if err != nil {
			return nil, fmt.Errorf("translating entry %s: %w", entry.Name, err)
		}

		variants = append(variants, target.Variant{
			Name:  entry.Name,
			Value: value,
			Doc:   entry.Documentation,
			Since: since,
		})
	}

	since, err := target.ParseVersion(e.Since)
	if err != nil {
		return nil, err
	}

	return &target.Enum{
		Name:       e.Name,
		Variants:   variants,
		Doc:        e.Documentation,
		Deprecated: e.Deprecated,
		Since:      since,
	}, nil
}

func (t *translator) translateRequest(r *schema.Request) (*target.TraitImpl, error) {
	params, err := t.translateAssoc(r.Params)
	if err != nil {
		return nil, fmt.Errorf("translating params: %w", err)
	}

	result, err := t.translateAssoc(&r.Result)
	if err != nil {
		return nil, fmt.Errorf("translating result: %w", err)
	}

	return &target.TraitImpl{
		Interface:   interfaceRequest,
		Implementor: r.TypeName,
		AssocTypes: []target.AssocType{
			{Name: assocParams, Type: params},
			{Name: assocResult, Type: result},
		},
		AssocConsts: []target.AssocConst{
			{Name: constMethod, Value: r.Method},
		},
	}, nil
}

func (t *translator) translateNotification(n *schema.Notification) (*target.TraitImpl, error) {
	params, err := t.translateAssoc(n.Params)
	if err != nil {
		return nil, fmt.Errorf("translating params: %w", err)
	}

	return &target.TraitImpl{
		Interface:   interfaceNotification,
		Implementor: n.TypeName,
		AssocTypes: []target.AssocType{
			{Name: assocParams, Type: params},
		},
		AssocConsts: []target.AssocConst{
			{Name: constMethod, Value: n.Method},
		},
	}, nil
}

// translateAssoc translates an associated type. Missing types, `null` and
// types without a representation become the unit type.
func (t *translator) translateAssoc(ty *schema.Type) (target.TypeRef, error) {
	if ty == nil || ty.Kind == "" || ty.IsBase(schema.BaseNull) {
		return target.NewUnit(), nil
	}

	ref, ok, err := t.translateType(*ty)
	if err != nil {
		return target.TypeRef{}, err
	}

	if !ok {
		return target.NewUnit(), nil
	}

	return ref, nil
}
