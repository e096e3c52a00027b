package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// Read reads and decodes the meta-model file at `filePath`.
func Read(filePath string) (*MetaModel, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read meta-model file "%s": %w`, filePath, err)
	}

	m, err := Parse(fileData)
	if err != nil {
		return nil, fmt.Errorf(`failed to unmarshal meta-model file "%s": %w`, filePath, err)
	}

	return m, nil
}

func Parse(data []byte) (*MetaModel, error) {
	var m MetaModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return &m, nil
}
