// Package target holds the declarations produced by translating a meta-model.
// Items are plain data; turning them into source text happens in package gen.
package target

// Item is one of *Struct, *Enum or *TraitImpl.
type Item interface {
	ItemName() string
	isItem()
}

type Struct struct {
	Name string

	// Extends lists the base types in declaration order, extends first and
	// mixins after.
	Extends    []string
	Fields     []Field
	Doc        *string
	Deprecated *string
	Since      Version
}

type Field struct {
	Name       string
	Type       TypeRef
	Optional   bool
	Doc        *string
	Deprecated *string
	Since      Version
}

type Enum struct {
	Name       string
	Variants   []Variant
	Doc        *string
	Deprecated *string
	Since      Version
}

type Variant struct {
	Name  string
	Value string
	Doc   *string
	Since Version
}

// TraitImpl binds a message type to an interface such as Request or
// Notification through associated types and constants.
type TraitImpl struct {
	Interface   string
	Implementor string
	AssocTypes  []AssocType
	AssocConsts []AssocConst
}

type AssocType struct {
	Name string
	Type TypeRef
}

type AssocConst struct {
	Name  string
	Value string
}

func (s *Struct) ItemName() string    { return s.Name }
func (e *Enum) ItemName() string      { return e.Name }
func (t *TraitImpl) ItemName() string { return t.Implementor }

func (*Struct) isItem()    {}
func (*Enum) isItem()      {}
func (*TraitImpl) isItem() {}
