package standards

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrStandardsNotFound = errors.New("standards file not found")
	ErrStandardsParsing  = errors.New("standards parsing failed")
)

// LoadFile reads a {language: document} file. Files ending in .yml or .yaml
// are decoded as YAML, everything else as JSON.
func LoadFile(path string) (map[string]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStandardsNotFound, path)
		}
		return nil, fmt.Errorf("failed to read standards file %s: %w", path, err)
	}

	standards := make(map[string]Document)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &standards)
	default:
		err = json.Unmarshal(data, &standards)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStandardsParsing, err)
	}
	return standards, nil
}
