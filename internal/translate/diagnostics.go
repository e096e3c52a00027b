package translate

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

const (
	tableStructs       = "structs"
	tableEnums         = "enums"
	tableRequests      = "requests"
	tableNotifications = "notifications"
	tableAnonMappings  = "anon-mappings"

	anonMappingTodo = "todo"
)

// Diagnostics lists the gaps between the meta-model and the config found
// during a pass. All name lists are sorted and free of duplicates.
type Diagnostics struct {
	StructsMissing       []string
	EnumsMissing         []string
	RequestsMissing      []string
	NotificationsMissing []string
	AnonMissing          []string

	// The *Unused lists hold config entries naming entities that are not in
	// the meta-model.
	StructsUnused       []string
	EnumsUnused         []string
	RequestsUnused      []string
	NotificationsUnused []string

	Drift []Drift
}

// Drift is a checksum entry that doesn't match the current fingerprint of
// its entity.
type Drift struct {
	Table    string
	Name     string
	Expected string
	Actual   string
}

func (d *Diagnostics) Empty() bool {
	return len(d.StructsMissing) == 0 &&
		len(d.EnumsMissing) == 0 &&
		len(d.RequestsMissing) == 0 &&
		len(d.NotificationsMissing) == 0 &&
		len(d.AnonMissing) == 0 &&
		len(d.StructsUnused) == 0 &&
		len(d.EnumsUnused) == 0 &&
		len(d.RequestsUnused) == 0 &&
		len(d.NotificationsUnused) == 0 &&
		len(d.Drift) == 0
}

// WriteHints writes the missing entries as TOML fragments that can be
// pasted into the config, followed by the unused entries.
func (d *Diagnostics) WriteHints(w io.Writer) error {
	missing := []struct {
		table string
		names []string
		value any
	}{
		{tableStructs, d.StructsMissing, true},
		{tableEnums, d.EnumsMissing, true},
		{tableRequests, d.RequestsMissing, true},
		{tableNotifications, d.NotificationsMissing, true},
		{tableAnonMappings, d.AnonMissing, anonMappingTodo},
	}

	for _, m := range missing {
		if len(m.names) == 0 {
			continue
		}

		entries := make(map[string]any, len(m.names))
		for _, n := range m.names {
			entries[n] = m.value
		}

		if _, err := fmt.Fprintf(w, "These %s are missing. Add them.\n```toml\n", m.table); err != nil {
			return err
		}

		enc := toml.NewEncoder(w)
		enc.Indent = ""

		if err := enc.Encode(map[string]any{m.table: entries}); err != nil {
			return err
		}

		if _, err := fmt.Fprint(w, "```\n"); err != nil {
			return err
		}
	}

	unused := []struct {
		table string
		names []string
	}{
		{tableStructs, d.StructsUnused},
		{tableEnums, d.EnumsUnused},
		{tableRequests, d.RequestsUnused},
		{tableNotifications, d.NotificationsUnused},
	}

	for _, u := range unused {
		if len(u.names) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "These %s are not in the meta-model. Remove them.\n", u.table); err != nil {
			return err
		}

		for _, n := range u.names {
			if _, err := fmt.Fprintf(w, "%s.%s\n", u.table, n); err != nil {
				return err
			}
		}
	}

	return nil
}
