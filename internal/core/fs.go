// Package core provides the filesystem abstraction shared by the manifest
// reading layer. The interface is deliberately read-only: relver never
// writes to the manifests it inspects.
package core

import (
	"context"
	"os"
)

// FileSystem abstracts the file operations needed to read a manifest.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Stat(ctx context.Context, path string) (os.FileInfo, error)
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem that reads from the real filesystem.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (f *osFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (f *osFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}
