package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load reads and unmarshals a JSON file from the embedded catalogs.
func Load[T any](filename string) (T, error) {
	return LoadFS[T](dataFS, filename)
}

// LoadFS reads and unmarshals a JSON file from fsys. Tests and modding tools
// use it to feed catalogs that are not compiled into the binary.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read catalog %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse catalog %s: %w", filename, err)
	}

	return result, nil
}
