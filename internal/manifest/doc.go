// Package manifest provides a unified interface for extracting a version
// string from package manifests in various formats, including TOML
// (Cargo.toml, pyproject.toml), JSON (package.json), YAML (Chart.yaml),
// raw text, and regex patterns.
package manifest
