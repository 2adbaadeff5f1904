package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// PathAbs expands a leading "~/" and makes the path absolute.
func PathAbs(path string) (string, error) {
	if strings.HasPrefix(filepath.ToSlash(path), "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		path = filepath.Join(home, path[2:])
	}

	return filepath.Abs(path)
}
