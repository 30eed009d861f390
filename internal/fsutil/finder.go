// Package fsutil provides file system helpers used when locating declaration units.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
)

// IsFile reports whether path names an existing regular file. A missing path
// is not an error.
func IsFile(path string) (bool, error) {
	info, err := stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// IsDir reports whether path names an existing directory. A missing path is
// not an error.
func IsDir(path string) (bool, error) {
	info, err := stat(path)
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// FirstFile returns the first candidate that is an existing regular file.
func FirstFile(candidates ...string) (string, bool, error) {
	for _, candidate := range candidates {
		ok, err := IsFile(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func stat(path string) (fs.FileInfo, error) {
	if path == "" {
		panic("path must not be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}
