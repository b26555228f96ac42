// Package settings patches the host-owned settings.json non-destructively.
// Only the hooks section and the outputStyle key are ever touched; every
// other entry is round-tripped untouched.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccsounds/ccsounds/internal/paths"
)

// ExternalDocumentError reports a failed read or write of the host
// settings document. Multi-step flows report it per step instead of
// aborting siblings.
type ExternalDocumentError struct {
	Op   string
	Path string
	Err  error
}

func (e *ExternalDocumentError) Error() string {
	return fmt.Sprintf("failed to %s host settings %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExternalDocumentError) Unwrap() error { return e.Err }

// File is a handle on the host settings document.
type File struct {
	path string
}

// NewFile creates a handle for the given installation.
func NewFile(p paths.Paths) *File {
	return &File{path: p.SettingsFile()}
}

// Path returns the document location.
func (f *File) Path() string { return f.path }

// Load parses the document into a generic map. A missing file yields an
// empty document, not an error.
func (f *File) Load() (map[string]any, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, &ExternalDocumentError{Op: "read", Path: f.path, Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ExternalDocumentError{Op: "parse", Path: f.path, Err: err}
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

// Save writes the document back as a whole.
func (f *File) Save(doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &ExternalDocumentError{Op: "marshal", Path: f.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPermission); err != nil {
		return &ExternalDocumentError{Op: "write", Path: f.path, Err: err}
	}
	if err := os.WriteFile(f.path, data, paths.FilePermission); err != nil {
		return &ExternalDocumentError{Op: "write", Path: f.path, Err: err}
	}
	return nil
}
