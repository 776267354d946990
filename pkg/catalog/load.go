package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape shared by the YAML and TOML formats:
//
//	records:
//	  - id: 1
//	    title: Kind of Blue
//	    ...
type file struct {
	Records []Record `yaml:"records" toml:"records"`
}

// LoadFile reads a collection from path. The format is chosen by extension:
// .yaml/.yml or .toml. The result is validated before it is returned.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var records []Record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		records, err = ParseYAML(data)
	case ".toml":
		records, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("catalog: unsupported file type %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseYAML decodes a YAML collection. Unknown fields are rejected.
func ParseYAML(data []byte) ([]Record, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("catalog: parse YAML: %w", err)
	}
	return f.Records, nil
}

// ParseTOML decodes a TOML collection using [[records]] tables.
func ParseTOML(data []byte) ([]Record, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("catalog: unknown TOML keys: %v", undecoded)
	}
	return f.Records, nil
}
