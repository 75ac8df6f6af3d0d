// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed public
var embedded embed.FS

// Assets returns the front-end file system: dir when set, otherwise the
// embedded copy.
func Assets(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "public")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("public dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("public dir: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
