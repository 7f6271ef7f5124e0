// Package generator mints output file names.
package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// OutputName returns path unchanged when it is free to write, or a
// uuid-suffixed sibling when a file already exists there and overwriting
// was not requested.
func OutputName(path string, overwrite bool) string {
	if overwrite {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return path
	}
	ext := filepath.Ext(path)
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}
