package section

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// LoadFromFile loads a section definition from a JSON or YAML file,
// picked by extension
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section Section
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &section)
	default:
		err = yaml.UnmarshalStrict(data, &section)
	}
	if err != nil {
		return nil, err
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}
