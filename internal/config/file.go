package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/koskimas/lspgen/internal/maps"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape shared by the TOML and YAML formats.
type file struct {
	Version       string            `toml:"version" yaml:"version"`
	AnonMappings  map[string]string `toml:"anon-mappings" yaml:"anon-mappings"`
	Structs       map[string]any    `toml:"structs" yaml:"structs"`
	Enums         map[string]any    `toml:"enums" yaml:"enums"`
	Requests      map[string]any    `toml:"requests,omitempty" yaml:"requests,omitempty"`
	Notifications map[string]any    `toml:"notifications,omitempty" yaml:"notifications,omitempty"`
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(configPath string) format {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return formatYAML
	}

	return formatTOML
}

// Read reads the config file at `configPath`. Files ending in .yaml or .yml
// are YAML, everything else is TOML.
func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config *Config
	if formatOf(configPath) == formatYAML {
		config, err = ParseYAML(fileData)
	} else {
		config, err = ParseTOML(fileData)
	}

	if err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	return config, nil
}

func ParseTOML(data []byte) (*Config, error) {
	var f file

	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf(`unknown key "%s"`, undecoded[0].String())
	}

	return fromFile(f)
}

func ParseYAML(data []byte) (*Config, error) {
	var f file

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, err
	}

	return fromFile(f)
}

func fromFile(f file) (*Config, error) {
	config := New(f.Version)

	for k, v := range f.AnonMappings {
		config.AnonMappings[k] = v
	}

	tables := []struct {
		name string
		in   map[string]any
		out  map[string]CodegenOption
	}{
		{"structs", f.Structs, config.Structs},
		{"enums", f.Enums, config.Enums},
		{"requests", f.Requests, config.Requests},
		{"notifications", f.Notifications, config.Notifications},
	}

	for _, t := range tables {
		for _, name := range maps.Keys(t.in) {
			o, err := parseOption(t.in[name])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", t.name, name, err)
			}

			t.out[name] = o
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func toFile(c *Config) file {
	f := file{
		Version:       c.Version,
		AnonMappings:  c.AnonMappings,
		Structs:       optionValues(c.Structs),
		Enums:         optionValues(c.Enums),
		Requests:      optionValues(c.Requests),
		Notifications: optionValues(c.Notifications),
	}

	if f.AnonMappings == nil {
		f.AnonMappings = make(map[string]string)
	}

	return f
}

func optionValues(options map[string]CodegenOption) map[string]any {
	out := make(map[string]any, len(options))

	for name, o := range options {
		out[name] = o.value()
	}

	return out
}

// Marshal encodes the config in the format `configPath` implies.
func Marshal(configPath string, c *Config) ([]byte, error) {
	f := toFile(c)

	if formatOf(configPath) == formatYAML {
		return yaml.Marshal(f)
	}

	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""

	if err := enc.Encode(f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func Write(configPath string, c *Config) error {
	data, err := Marshal(configPath, c)
	if err != nil {
		return fmt.Errorf(`failed to marshal config file "%s": %w`, configPath, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf(`failed to write config file "%s": %w`, configPath, err)
	}

	return nil
}
