//go:build !windows

// Package open creates files which only the current user can read and write.
package open

import "os"

// NewSafeFile creates a new empty file with permission 0600.
//
// If the file already exists, it is truncated.
func NewSafeFile(filepath string) (*os.File, error) {
	f, err := os.OpenFile(filepath, os.O_TRUNC|os.O_CREATE|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	// O_CREATE does not change permission of existing files.
	if err := f.Chmod(os.FileMode(0600)); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
