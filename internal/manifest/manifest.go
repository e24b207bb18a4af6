package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/calebzulawski/relver/internal/core"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Reader extracts version strings from manifest files in multiple formats.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// ReadVersion reads the raw version string from a manifest.
//
// For structured formats, a missing field (including missing intermediate
// keys) or a non-string value yields an empty string rather than an error;
// deciding whether an empty version is acceptable is left to the caller.
// File access errors are returned as-is. Syntax errors are reported with
// the file path for context.
func (r *Reader) ReadVersion(ctx context.Context, src Source) (string, error) {
	if src.Path == "" {
		return "", fmt.Errorf("manifest path is required")
	}

	if !src.Format.IsValid() {
		return "", fmt.Errorf("invalid format: %s", src.Format)
	}

	data, err := r.fs.ReadFile(ctx, src.Path)
	if err != nil {
		return "", err
	}

	switch src.Format {
	case FormatTOML:
		return r.readTOML(data, src.Path, src.Field)
	case FormatJSON:
		return r.readJSON(data, src.Path, src.Field)
	case FormatYAML:
		return r.readYAML(data, src.Path, src.Field)
	case FormatRaw:
		return strings.TrimSpace(string(data)), nil
	case FormatRegex:
		return r.readRegex(data, src.Path, src.Pattern)
	default:
		return "", fmt.Errorf("unsupported format: %s", src.Format)
	}
}

// readTOML extracts a version from TOML data using dot notation for the field path.
func (r *Reader) readTOML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for TOML format")
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	return lookupString(obj, field), nil
}

// readJSON extracts a version from JSON data using dot notation for the field path.
func (r *Reader) readJSON(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for JSON format")
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse JSON in %q: %w", path, err)
	}

	return lookupString(obj, field), nil
}

// readYAML extracts a version from YAML data using dot notation for the field path.
func (r *Reader) readYAML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for YAML format")
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}

	return lookupString(obj, field), nil
}

// readRegex extracts a version using a regex pattern with a capturing group.
// A pattern that matches nothing yields an empty string.
func (r *Reader) readRegex(data []byte, path, pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("pattern is required for regex format")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}

	if re.NumSubexp() < 1 {
		return "", fmt.Errorf("pattern %q must have a capturing group", pattern)
	}

	matches := re.FindSubmatch(data)
	if len(matches) < 2 {
		return "", nil
	}

	return string(matches[1]), nil
}

// lookupString retrieves a string value from a nested map using dot notation.
// Example: "package.version" accesses obj["package"]["version"].
// Missing keys, missing intermediate maps, and non-string leaves all
// resolve to the empty string.
func lookupString(obj map[string]any, field string) string {
	current := any(obj)

	for _, part := range strings.Split(field, ".") {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = currentMap[part]
		if !ok {
			return ""
		}
	}

	s, ok := current.(string)
	if !ok {
		return ""
	}
	return s
}
