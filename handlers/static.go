// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io/fs"
	"net/http"
)

type StaticHandler struct {
	files http.Handler
}

func NewStaticHandler(assets fs.FS) *StaticHandler {
	return &StaticHandler{files: http.FileServerFS(assets)}
}

// ServeAssets handles GET / and the front-end assets
func (h *StaticHandler) ServeAssets(w http.ResponseWriter, r *http.Request) {
	h.files.ServeHTTP(w, r)
}
