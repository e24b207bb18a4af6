package release

import "fmt"

// VersionNotFoundError reports a manifest that parsed successfully but
// holds no usable version: the field is absent, not a string, or empty
// after trimming surrounding whitespace.
type VersionNotFoundError struct {
	// Path is the manifest file the version was expected in.
	Path string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version not found in %s", e.Path)
}
