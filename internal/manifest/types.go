package manifest

import "strings"

// Format represents the supported manifest file formats.
type Format string

const (
	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatJSON is for JSON files (package.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, etc.).
	FormatYAML Format = "yaml"

	// FormatRaw is for plain text files where the entire content is the version.
	FormatRaw Format = "raw"

	// FormatRegex is for files requiring regex extraction.
	FormatRegex Format = "regex"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatJSON, FormatYAML, FormatRaw, FormatRegex:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format, returning false when the
// string does not name a known format.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	return f, f.IsValid()
}

// Source describes where and how to read a version from a manifest file.
type Source struct {
	// Path is the manifest path (absolute or relative).
	Path string

	// Format specifies the file format.
	Format Format

	// Field is the dot-notation path to the version field (for structured
	// formats). Example: "version", "package.version", "tool.poetry.version"
	Field string

	// Pattern is the regex pattern for regex format.
	// Must contain a capturing group for the version.
	Pattern string
}

// FormatForFile detects the format based on file extension or name.
func FormatForFile(filename string) Format {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	default:
		return FormatRaw
	}
}

// FieldForFile returns the conventional version field path for common
// manifest file names, falling back to "version".
func FieldForFile(filename string) string {
	fields := map[string]string{
		"cargo.toml":     "package.version",
		"pyproject.toml": "project.version",
		"package.json":   "version",
		"composer.json":  "version",
		"chart.yaml":     "version",
		"pubspec.yaml":   "version",
	}

	base := strings.ToLower(filename)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if field, ok := fields[base]; ok {
		return field
	}

	return "version"
}
