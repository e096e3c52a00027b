package target

import (
	"fmt"
	"strings"
)

// Version is the protocol version an item or field first appeared in.
type Version int

const (
	VersionUnknown Version = iota
	Version3_2_0
	Version3_6_0
	Version3_8_0
	Version3_10_0
	Version3_12_0
	Version3_13_0
	Version3_14_0
	Version3_15_0
	Version3_16_0
	Version3_17_0
	Version3_18_0
)

var versionsByName = map[string]Version{
	"3.2.0":  Version3_2_0,
	"3.6.0":  Version3_6_0,
	"3.8.0":  Version3_8_0,
	"3.10.0": Version3_10_0,
	"3.12.0": Version3_12_0,
	"3.13.0": Version3_13_0,
	"3.14.0": Version3_14_0,
	"3.15.0": Version3_15_0,
	"3.16.0": Version3_16_0,
	"3.17.0": Version3_17_0,
	"3.18.0": Version3_18_0,

	// The meta-model spells a handful of 3.17 additions this way.
	"3.16": Version3_17_0,
	"3.17": Version3_17_0,
}

// ParseVersion parses a `since` annotation like "3.17.0", "version 3.17.0"
// or "3.17.0 - proposed". A nil annotation is VersionUnknown.
func ParseVersion(since *string) (Version, error) {
	if since == nil {
		return VersionUnknown, nil
	}

	s := strings.TrimPrefix(*since, "version ")

	if before, _, found := strings.Cut(s, " "); found {
		s = before
	}

	s = strings.TrimSuffix(s, ".")

	v, ok := versionsByName[s]
	if !ok {
		return VersionUnknown, fmt.Errorf(`invalid version "%s"`, *since)
	}

	return v, nil
}

func (v Version) String() string {
	switch v {
	case Version3_2_0:
		return "3.2.0"
	case Version3_6_0:
		return "3.6.0"
	case Version3_8_0:
		return "3.8.0"
	case Version3_10_0:
		return "3.10.0"
	case Version3_12_0:
		return "3.12.0"
	case Version3_13_0:
		return "3.13.0"
	case Version3_14_0:
		return "3.14.0"
	case Version3_15_0:
		return "3.15.0"
	case Version3_16_0:
		return "3.16.0"
	case Version3_17_0:
		return "3.17.0"
	case Version3_18_0:
		return "3.18.0"
	}

	return "unknown"
}
