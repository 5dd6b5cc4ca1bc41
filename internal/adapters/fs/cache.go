// Package fs provides filesystem-backed adapters: the artifact cache and
// the file hasher.
package fs

import (
	"os"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCache = (*Cache)(nil)

// Cache implements ports.ArtifactCache over plain filesystem metadata.
// Existence is the whole check: content is never validated.
type Cache struct {
	layout domain.Layout
}

// NewCache creates a Cache over the given layout.
func NewCache(layout domain.Layout) *Cache {
	return &Cache{layout: layout}
}

// Has reports whether the marker path for kind exists.
func (c *Cache) Has(kind domain.ArtifactKind) (bool, error) {
	path := c.layout.ArtifactPath(kind)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrIO, "failed to stat artifact"), "path", path)
	}
	return true, nil
}
