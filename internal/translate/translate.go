// Package translate turns a meta-model into target declarations.
//
// Every structure, enumeration, request and notification is looked up in the
// config. Entities configured with a bool are translated, entities configured
// with a checksum are only fingerprinted and compared, and entities without an
// entry are skipped and reported. Gaps in the config never stop the pass; they
// are collected into Diagnostics so a maintainer can fix all of them at once.
// Shapes the translator doesn't support abort the pass with an
// *UnsupportedError.
package translate

import (
	"fmt"

	"github.com/koskimas/lspgen/internal/config"
	"github.com/koskimas/lspgen/internal/maps"
	"github.com/koskimas/lspgen/internal/schema"
	"github.com/koskimas/lspgen/internal/target"
	"github.com/rs/zerolog"
)

type Result struct {
	Items       []target.Item
	Diagnostics Diagnostics
}

type translator struct {
	config      *config.Config
	logger      zerolog.Logger
	anonMissing map[string]struct{}
	drift       []Drift
}

// Schema translates `m` according to `cfg`. `cfg` is not modified.
func Schema(m *schema.MetaModel, cfg *config.Config, logger zerolog.Logger) (*Result, error) {
	t := &translator{
		config:      cfg,
		logger:      logger,
		anonMissing: make(map[string]struct{}),
	}

	items := make([]target.Item, 0)

	for i := range m.Structures {
		s := &m.Structures[i]

		gen, err := t.decide(tableStructs, cfg.Structs, s.Name, s)
		if err != nil {
			return nil, err
		}

		if !gen {
			continue
		}

		item, err := t.translateStructure(s)
		if err != nil {
			return nil, fmt.Errorf("translating structure %s: %w", s.Name, err)
		}

		items = append(items, item)
	}

	for i := range m.Enumerations {
		e := &m.Enumerations[i]

		gen, err := t.decide(tableEnums, cfg.Enums, e.Name, e)
		if err != nil {
			return nil, err
		}

		if !gen {
			continue
		}

		item, err := t.translateEnumeration(e)
		if err != nil {
			return nil, fmt.Errorf("translating enumeration %s: %w", e.Name, err)
		}

		items = append(items, item)
	}

	for i := range m.Requests {
		r := &m.Requests[i]

		gen, err := t.decide(tableRequests, cfg.Requests, r.TypeName, r)
		if err != nil {
			return nil, err
		}

		if !gen {
			continue
		}

		item, err := t.translateRequest(r)
		if err != nil {
			return nil, fmt.Errorf("translating request %s: %w", r.TypeName, err)
		}

		items = append(items, item)
	}

	for i := range m.Notifications {
		n := &m.Notifications[i]

		gen, err := t.decide(tableNotifications, cfg.Notifications, n.TypeName, n)
		if err != nil {
			return nil, err
		}

		if !gen {
			continue
		}

		item, err := t.translateNotification(n)
		if err != nil {
			return nil, fmt.Errorf("translating notification %s: %w", n.TypeName, err)
		}

		items = append(items, item)
	}

	return &Result{
		Items:       items,
		Diagnostics: t.diagnostics(m),
	}, nil
}

// decide applies the config entry of an entity. It returns true if the
// entity should be translated. Checksum entries are verified here and a
// mismatch is logged and recorded as drift.
func (t *translator) decide(table string, options map[string]config.CodegenOption, name string, entity any) (bool, error) {
	o, ok := options[name]
	if !ok {
		return false, nil
	}

	if !o.IsChecksum() {
		// TODO: Generate(false) should make the structure mixin-only
		// instead of emitting it.
		return true, nil
	}

	hash, err := Fingerprint(entity)
	if err != nil {
		return false, fmt.Errorf("fingerprinting %s %s: %w", table, name, err)
	}

	if hash != *o.Checksum {
		t.logger.Warn().
			Str("table", table).
			Str("name", name).
			Str("expected", *o.Checksum).
			Str("got", hash).
			Msg("checksum mismatch, the entity changed since it was reviewed")

		t.drift = append(t.drift, Drift{
			Table:    table,
			Name:     name,
			Expected: *o.Checksum,
			Actual:   hash,
		})
	}

	return false, nil
}

func (t *translator) diagnostics(m *schema.MetaModel) Diagnostics {
	structs := make(map[string]struct{}, len(m.Structures))
	for _, s := range m.Structures {
		structs[s.Name] = struct{}{}
	}

	enums := make(map[string]struct{}, len(m.Enumerations))
	for _, e := range m.Enumerations {
		enums[e.Name] = struct{}{}
	}

	requests := make(map[string]struct{}, len(m.Requests))
	for _, r := range m.Requests {
		requests[r.TypeName] = struct{}{}
	}

	notifications := make(map[string]struct{}, len(m.Notifications))
	for _, n := range m.Notifications {
		notifications[n.TypeName] = struct{}{}
	}

	return Diagnostics{
		StructsMissing:       maps.Difference(structs, t.config.Structs),
		EnumsMissing:         maps.Difference(enums, t.config.Enums),
		RequestsMissing:      maps.Difference(requests, t.config.Requests),
		NotificationsMissing: maps.Difference(notifications, t.config.Notifications),
		AnonMissing:          maps.Keys(t.anonMissing),

		StructsUnused:       maps.Difference(t.config.Structs, structs),
		EnumsUnused:         maps.Difference(t.config.Enums, enums),
		RequestsUnused:      maps.Difference(t.config.Requests, requests),
		NotificationsUnused: maps.Difference(t.config.Notifications, notifications),

		Drift: t.drift,
	}
}
