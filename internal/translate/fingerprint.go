package translate

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the meta-model JSON encoding of a schema entity. Any
// change to the entity, including its documentation, changes the result.
func Fingerprint(entity any) (string, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return "", fmt.Errorf("failed to encode entity for fingerprinting: %w", err)
	}

	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
