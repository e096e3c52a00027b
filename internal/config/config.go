package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/koskimas/lspgen/internal/schema"
	"github.com/koskimas/lspgen/internal/target"
)

// Config is the generation policy for a meta-model. Every table is keyed by
// the entity name (`typeName` for requests and notifications).
type Config struct {
	Version       string
	AnonMappings  map[string]string
	Structs       map[string]CodegenOption
	Enums         map[string]CodegenOption
	Requests      map[string]CodegenOption
	Notifications map[string]CodegenOption
}

func New(version string) *Config {
	return &Config{
		Version:       version,
		AnonMappings:  make(map[string]string),
		Structs:       make(map[string]CodegenOption),
		Enums:         make(map[string]CodegenOption),
		Requests:      make(map[string]CodegenOption),
		Notifications: make(map[string]CodegenOption),
	}
}

// CodegenOption is written as a bool (generate) or a string (checksum) in
// the config file.
type CodegenOption struct {
	Generate bool

	// Checksum is set when the entity is not generated. It holds the
	// fingerprint of the entity the last time a maintainer reviewed it.
	Checksum *string
}

func Generate(b bool) CodegenOption {
	return CodegenOption{Generate: b}
}

func Checksum(h string) CodegenOption {
	return CodegenOption{Checksum: &h}
}

func (o CodegenOption) IsChecksum() bool {
	return o.Checksum != nil
}

func (o CodegenOption) value() any {
	if o.Checksum != nil {
		return *o.Checksum
	}

	return o.Generate
}

func parseOption(v any) (CodegenOption, error) {
	switch v := v.(type) {
	case bool:
		return Generate(v), nil
	case string:
		return Checksum(v), nil
	}

	return CodegenOption{}, fmt.Errorf("expected a bool or a checksum string, got %T", v)
}

// ErrIrreducibleUnion is returned by LookupAnon when some item of a union
// has no reference form. Such a union can never be named by anon mappings.
var ErrIrreducibleUnion = errors.New("union item has no reference form")

// MissingAnonError is returned by LookupAnon when the union has a key but
// no entry in anon mappings.
type MissingAnonError struct {
	Key string
}

func (e *MissingAnonError) Error() string {
	return fmt.Sprintf(`no anon mapping for "%s"`, e.Key)
}

// AnonKey builds the anon mapping key of a union by joining the reference
// forms of its items with `|` in declaration order.
func AnonKey(items []schema.Type) (string, bool) {
	refs := make([]string, len(items))

	for i, item := range items {
		ref, ok := item.IntoReference()
		if !ok {
			return "", false
		}

		refs[i] = ref.String()
	}

	return strings.Join(refs, "|"), true
}

// LookupAnon returns the configured type for the union of `items`. It
// returns ErrIrreducibleUnion or a *MissingAnonError when there's none.
func (c *Config) LookupAnon(items []schema.Type) (target.TypeRef, error) {
	key, ok := AnonKey(items)
	if !ok {
		return target.TypeRef{}, ErrIrreducibleUnion
	}

	name, ok := c.AnonMappings[key]
	if !ok {
		return target.TypeRef{}, &MissingAnonError{Key: key}
	}

	return target.NewTypeRef(name), nil
}

// Table returns the option table called `name` in the config file, or nil
// for an unknown name.
func (c *Config) Table(name string) map[string]CodegenOption {
	switch name {
	case "structs":
		return c.Structs
	case "enums":
		return c.Enums
	case "requests":
		return c.Requests
	case "notifications":
		return c.Notifications
	default:
		return nil
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Version) == "" {
		return errors.New("config missing version")
	}

	for key, name := range c.AnonMappings {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf(`anon mapping "%s" has an empty type name`, key)
		}
	}

	return nil
}
