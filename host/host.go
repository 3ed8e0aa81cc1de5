// Package host is the filesystem engine's only point of contact with the
// surrounding operating system: reading a host file fully into memory for
// import, and writing a memory buffer out to a host path for export.
// Modeled on the backend.Storage split between wrapping an existing
// handle and opening a path, adapted down to the two directions
// import/export actually need.
package host

import (
	"fmt"
	"io"
	"os"
)

// ReadAll opens path and reads its entire contents into memory. Errors
// from a missing, unreadable, or otherwise inaccessible file are wrapped
// so callers can inspect them with errors.Is/errors.As.
func ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("host: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("host: read %s: %w", path, err)
	}
	return data, nil
}

// WriteAll creates (or truncates) path and writes data to it in full. A
// short write, a permission failure, or a full host filesystem all
// surface here as a wrapped error.
func WriteAll(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("host: create %s: %w", path, err)
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return fmt.Errorf("host: write %s: %w", path, err)
	}
	if n != len(data) {
		return fmt.Errorf("host: short write to %s: wrote %d of %d bytes", path, n, len(data))
	}
	return nil
}
