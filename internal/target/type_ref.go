package target

import "strings"

type TypeRefKind int

const (
	TypeRefNamed TypeRefKind = iota
	TypeRefGeneric
	TypeRefTuple

	// TypeRefPlaceholder stands in for an anonymous union that has no
	// configured name. It is never valid in generated code.
	TypeRefPlaceholder
)

const (
	GenericOption  = "Option"
	GenericList    = "List"
	GenericMapping = "Mapping"

	PlaceholderName = "TODO"
)

// TypeRef is a reference to a type in the generated code. Rendering to text
// is deferred to String, which is injective: generics render as `Name<A,B>`
// and tuples as `(A,B)`.
type TypeRef struct {
	Kind TypeRefKind
	Name string
	Args []TypeRef

	// AnonKey holds the anon mapping key of a placeholder.
	AnonKey string
}

func NewTypeRef(name string) TypeRef {
	return TypeRef{
		Kind: TypeRefNamed,
		Name: name,
	}
}

func NewGenerics(name string, args ...TypeRef) TypeRef {
	return TypeRef{
		Kind: TypeRefGeneric,
		Name: name,
		Args: args,
	}
}

func NewTuple(elems ...TypeRef) TypeRef {
	return TypeRef{
		Kind: TypeRefTuple,
		Args: elems,
	}
}

// NewUnit returns the empty tuple `()`.
func NewUnit() TypeRef {
	return NewTuple()
}

func NewPlaceholder(anonKey string) TypeRef {
	return TypeRef{
		Kind:    TypeRefPlaceholder,
		Name:    PlaceholderName,
		AnonKey: anonKey,
	}
}

func (t TypeRef) IsUnit() bool {
	return t.Kind == TypeRefTuple && len(t.Args) == 0
}

// Placeholders returns the anon keys of all placeholders nested in `t`.
func (t TypeRef) Placeholders() []string {
	var keys []string

	if t.Kind == TypeRefPlaceholder {
		keys = append(keys, t.AnonKey)
	}

	for _, a := range t.Args {
		keys = append(keys, a.Placeholders()...)
	}

	return keys
}

func (t TypeRef) String() string {
	var s strings.Builder
	t.writeString(&s)
	return s.String()
}

func (t TypeRef) writeString(s *strings.Builder) {
	switch t.Kind {
	case TypeRefGeneric:
		s.WriteString(t.Name)
		s.WriteByte('<')
		writeArgs(s, t.Args)
		s.WriteByte('>')
	case TypeRefTuple:
		s.WriteByte('(')
		writeArgs(s, t.Args)
		s.WriteByte(')')
	default:
		s.WriteString(t.Name)
	}
}

func writeArgs(s *strings.Builder, args []TypeRef) {
	for i, a := range args {
		if i > 0 {
			s.WriteByte(',')
		}

		a.writeString(s)
	}
}
