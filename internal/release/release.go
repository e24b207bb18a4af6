// Package release derives release version metadata from a package manifest.
// A raw version string is normalized into a pair: the bare version and the
// "v"-prefixed tag used for source-control release tags.
package release

import (
	"context"
	"strings"

	"github.com/calebzulawski/relver/internal/core"
	"github.com/calebzulawski/relver/internal/manifest"
)

// Metadata is the normalized (version, tag) pair derived from a manifest.
type Metadata struct {
	// Version is the raw value with a single leading "v" removed if present.
	Version string

	// Tag is the raw value with a single leading "v" prepended if not
	// already present. It is never double-prefixed.
	Tag string
}

// Normalize derives Metadata from a whitespace-trimmed raw version string.
// Exactly one of Version/Tag equals the input; the other differs only by
// one leading "v". A raw value of exactly "v" yields an empty Version,
// matching the reference pipeline behavior.
func Normalize(raw string) Metadata {
	if strings.HasPrefix(raw, "v") {
		return Metadata{Version: raw[1:], Tag: raw}
	}
	return Metadata{Version: raw, Tag: "v" + raw}
}

// Read extracts and normalizes the version from the given manifest source.
//
// It fails with *VersionNotFoundError when the manifest parses but the
// version field is absent or empty after trimming. File access errors
// propagate unchanged from the filesystem; syntax errors propagate from
// the manifest reader.
func Read(ctx context.Context, fs core.FileSystem, src manifest.Source) (Metadata, error) {
	raw, err := manifest.NewReader(fs).ReadVersion(ctx, src)
	if err != nil {
		return Metadata{}, err
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Metadata{}, &VersionNotFoundError{Path: src.Path}
	}

	return Normalize(trimmed), nil
}
