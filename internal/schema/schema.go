// Package schema is the in-memory form of the LSP meta-model
// (metaModel.json). Values are decoded once and never mutated afterwards.
package schema

import "encoding/json"

type MetaModel struct {
	MetaData      MetaData       `json:"metaData"`
	Requests      []Request      `json:"requests"`
	Notifications []Notification `json:"notifications"`
	Structures    []Structure    `json:"structures"`
	Enumerations  []Enumeration  `json:"enumerations"`
	TypeAliases   []TypeAlias    `json:"typeAliases"`
}

type MetaData struct {
	Version string `json:"version"`
}

type MessageDirection string

const (
	ClientToServer MessageDirection = "clientToServer"
	ServerToClient MessageDirection = "serverToClient"
	Both           MessageDirection = "both"
)

type Request struct {
	Method              string           `json:"method"`
	TypeName            string           `json:"typeName"`
	Result              Type             `json:"result"`
	MessageDirection    MessageDirection `json:"messageDirection"`
	ClientCapability    *string          `json:"clientCapability,omitempty"`
	ServerCapability    *string          `json:"serverCapability,omitempty"`
	Params              *Type            `json:"params,omitempty"`
	PartialResult       *Type            `json:"partialResult,omitempty"`
	RegistrationOptions *Type            `json:"registrationOptions,omitempty"`
	RegistrationMethod  *string          `json:"registrationMethod,omitempty"`
	ErrorData           *Type            `json:"errorData,omitempty"`
	Documentation       *string          `json:"documentation,omitempty"`
	Since               *string          `json:"since,omitempty"`
	Proposed            bool             `json:"proposed,omitempty"`
	Deprecated          *string          `json:"deprecated,omitempty"`
}

type Notification struct {
	Method              string           `json:"method"`
	TypeName            string           `json:"typeName"`
	MessageDirection    MessageDirection `json:"messageDirection"`
	ClientCapability    *string          `json:"clientCapability,omitempty"`
	ServerCapability    *string          `json:"serverCapability,omitempty"`
	Params              *Type            `json:"params,omitempty"`
	RegistrationOptions *Type            `json:"registrationOptions,omitempty"`
	RegistrationMethod  *string          `json:"registrationMethod,omitempty"`
	Documentation       *string          `json:"documentation,omitempty"`
	Since               *string          `json:"since,omitempty"`
	Proposed            bool             `json:"proposed,omitempty"`
	Deprecated          *string          `json:"deprecated,omitempty"`
}

type Structure struct {
	Name          string     `json:"name"`
	Properties    []Property `json:"properties"`
	Extends       []Type     `json:"extends,omitempty"`
	Mixins        []Type     `json:"mixins,omitempty"`
	Documentation *string    `json:"documentation,omitempty"`
	Since         *string    `json:"since,omitempty"`
	SinceTags     []string   `json:"sinceTags,omitempty"`
	Proposed      bool       `json:"proposed,omitempty"`
	Deprecated    *string    `json:"deprecated,omitempty"`
}

// BaseTypes returns extends followed by mixins. Both include the fields of
// the referenced structures.
func (s *Structure) BaseTypes() []Type {
	out := make([]Type, 0, len(s.Extends)+len(s.Mixins))
	out = append(out, s.Extends...)
	return append(out, s.Mixins...)
}

type Property struct {
	Name          string   `json:"name"`
	Type          Type     `json:"type"`
	Optional      bool     `json:"optional,omitempty"`
	Documentation *string  `json:"documentation,omitempty"`
	Since         *string  `json:"since,omitempty"`
	SinceTags     []string `json:"sinceTags,omitempty"`
	Proposed      bool     `json:"proposed,omitempty"`
	Deprecated    *string  `json:"deprecated,omitempty"`
}

// StructureLiteral is an anonymous structure used inline as a type.
type StructureLiteral struct {
	Properties    []Property `json:"properties"`
	Documentation *string    `json:"documentation,omitempty"`
	Since         *string    `json:"since,omitempty"`
	SinceTags     []string   `json:"sinceTags,omitempty"`
	Proposed      bool       `json:"proposed,omitempty"`
	Deprecated    *string    `json:"deprecated,omitempty"`
}

type EnumerationTypeKind string

const (
	EnumerationString   EnumerationTypeKind = "string"
	EnumerationInteger  EnumerationTypeKind = "integer"
	EnumerationUinteger EnumerationTypeKind = "uinteger"
)

type EnumerationType struct {
	Kind Kind                `json:"kind"`
	Name EnumerationTypeKind `json:"name"`
}

type Enumeration struct {
	Name                 string             `json:"name"`
	Type                 EnumerationType    `json:"type"`
	Values               []EnumerationEntry `json:"values"`
	SupportsCustomValues bool               `json:"supportsCustomValues,omitempty"`
	Documentation        *string            `json:"documentation,omitempty"`
	Since                *string            `json:"since,omitempty"`
	SinceTags            []string           `json:"sinceTags,omitempty"`
	Proposed             bool               `json:"proposed,omitempty"`
	Deprecated           *string            `json:"deprecated,omitempty"`
}

type EnumerationEntry struct {
	Name string `json:"name"`

	// Value is a JSON string or number depending on the enumeration type.
	Value         json.RawMessage `json:"value"`
	Documentation *string         `json:"documentation,omitempty"`
	Since         *string         `json:"since,omitempty"`
	SinceTags     []string        `json:"sinceTags,omitempty"`
	Proposed      bool            `json:"proposed,omitempty"`
	Deprecated    *string         `json:"deprecated,omitempty"`
}

type TypeAlias struct {
	Name          string   `json:"name"`
	Type          Type     `json:"type"`
	Documentation *string  `json:"documentation,omitempty"`
	Since         *string  `json:"since,omitempty"`
	SinceTags     []string `json:"sinceTags,omitempty"`
	Proposed      bool     `json:"proposed,omitempty"`
	Deprecated    *string  `json:"deprecated,omitempty"`
}
