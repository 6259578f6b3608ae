package api

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a schema document from JSON bytes.
func DecodeJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	return &d, nil
}

// DecodeYAML parses a schema document from YAML bytes.
func DecodeYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode yaml document: %w", err)
	}
	return &d, nil
}

// ReadFile loads a schema document from fsys, picking the codec by file
// extension. Supported: .json, .yaml, .yml, .hcl. The filesystem is
// abstract so callers can hand in an OS-backed or in-memory tree.
func ReadFile(fsys billy.Filesystem, path string) (*Document, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read schema document %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".hcl":
		return DecodeHCL(path, data)
	default:
		return nil, fmt.Errorf("unsupported schema document extension %q", ext)
	}
}
